package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tidwall/gjson"

	"github.com/gyaneshwarpardhi/payhook/internal/config"
	"github.com/gyaneshwarpardhi/payhook/internal/deadletter"
	"github.com/gyaneshwarpardhi/payhook/internal/engine"
	"github.com/gyaneshwarpardhi/payhook/internal/metrics"
	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

const defaultDeadLetterLimit = 50

// Handler holds all HTTP handler dependencies.
type Handler struct {
	eng    *engine.Engine
	loader *config.Loader
	sink   deadletter.Sink
	logger *slog.Logger
	now    func() time.Time
}

// New creates an HTTP handler and registers all routes.
func New(eng *engine.Engine, loader *config.Loader, sink deadletter.Sink, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{eng: eng, loader: loader, sink: sink, logger: logger, now: time.Now}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(h.requestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", h.healthz)
	r.Get("/readyz", h.readyz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/webhooks", h.receiveWebhook)
		r.Post("/webhooks/batch", h.receiveBatch)
		r.Get("/event-types", h.listEventTypes)
		r.Get("/routes", h.listRoutes)
		r.Post("/routes/reload", h.reloadRoutes)
		r.Get("/dead-letters", h.listDeadLetters)
	})
	return r
}

// POST /v1/webhooks: decode one envelope and route it synchronously.
func (h *Handler) receiveWebhook(w http.ResponseWriter, r *http.Request) {
	metrics.WebhooksReceived.WithLabelValues("single").Inc()
	conf := h.loader.Config().Receiver

	body, ok := h.readBody(w, r, conf.MaxBodyBytes)
	if !ok {
		return
	}

	d, err := h.decode(r.Context(), uuid.NewString(), body, conf.Strict)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	res, err := h.eng.ProcessSync(r.Context(), d)
	if err != nil {
		writeError(w, http.StatusTooManyRequests, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /v1/webhooks/batch: a JSON array of envelopes, routed in the background.
func (h *Handler) receiveBatch(w http.ResponseWriter, r *http.Request) {
	metrics.WebhooksReceived.WithLabelValues("batch").Inc()
	conf := h.loader.Config().Receiver

	body, ok := h.readBody(w, r, conf.MaxBodyBytes)
	if !ok {
		return
	}
	if !gjson.ValidBytes(body) {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	batch := gjson.ParseBytes(body)
	if !batch.IsArray() {
		writeError(w, http.StatusBadRequest, "batch must be a JSON array of events")
		return
	}
	items := batch.Array()
	if len(items) == 0 {
		writeError(w, http.StatusBadRequest, "batch must contain at least one event")
		return
	}
	if len(items) > conf.MaxBatch {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("batch size %d exceeds max %d", len(items), conf.MaxBatch))
		return
	}

	jobID := uuid.NewString()
	queued, rejected, invalid := 0, 0, 0
	for i, item := range items {
		d, err := h.decode(r.Context(), fmt.Sprintf("%s-%d", jobID, i), []byte(item.Raw), conf.Strict)
		if err != nil {
			invalid++
			continue
		}
		if h.eng.ProcessAsync(d) {
			queued++
		} else {
			rejected++
		}
	}

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"job_id":   jobID,
		"total":    len(items),
		"queued":   queued,
		"rejected": rejected,
		"invalid":  invalid,
	})
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("body exceeds %d bytes", limit))
			return nil, false
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return body, true
}

// decode parses body into a delivery. Rejected and partially decoded
// deliveries are parked in the dead-letter sink.
func (h *Handler) decode(ctx context.Context, deliveryID string, body []byte, strict bool) (*engine.Delivery, error) {
	var (
		ev  *event.Event
		err error
	)
	if strict {
		ev, err = event.ParseStrict(body)
	} else {
		ev, err = event.Parse(body, event.WithLogger(h.logger))
	}

	if err != nil {
		kind := event.KindOf(err)
		entry := deadletter.Entry{DeliveryID: deliveryID, Reason: kind.String(), Detail: err.Error(), Body: string(body)}
		var de *event.DecodeError
		if errors.As(err, &de) {
			entry.EventID = de.EventID
			entry.EventType = string(de.Type)
		}
		metrics.EventsDecoded.WithLabelValues(kind.String(), familyLabel(event.Type(entry.EventType))).Inc()
		h.park(ctx, entry)
		return nil, err
	}

	family := familyLabel(ev.Type)
	switch p := ev.Payload.(type) {
	case nil:
		metrics.EventsDecoded.WithLabelValues(event.KindSchemaMismatch.String(), family).Inc()
		h.park(ctx, deadletter.Entry{
			DeliveryID: deliveryID,
			EventID:    ev.ID,
			EventType:  string(ev.Type),
			Reason:     deadletter.ReasonSchemaMismatch,
			Detail:     "payload does not match its type",
			Body:       string(body),
		})
	case *event.Unknown:
		metrics.EventsDecoded.WithLabelValues(event.KindUnknownType.String(), family).Inc()
	default:
		metrics.EventsDecoded.WithLabelValues("ok", family).Inc()
		if p.Resource() == nil {
			metrics.UnknownObjects.WithLabelValues(string(ev.Type)).Inc()
		}
	}
	return &engine.Delivery{ID: deliveryID, Event: ev, Body: body}, nil
}

func (h *Handler) park(ctx context.Context, e deadletter.Entry) {
	e.ReceivedAt = h.now().UTC()
	if err := h.sink.Put(ctx, e); err != nil {
		h.logger.Warn("dead letter write failed", "delivery_id", e.DeliveryID, "reason", e.Reason, "err", err)
		return
	}
	metrics.DeadLetters.WithLabelValues(e.Reason).Inc()
}

func statusFor(err error) int {
	switch event.KindOf(err) {
	case event.KindSchemaMismatch, event.KindUnknownType:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func familyLabel(t event.Type) string {
	if f, ok := event.FamilyOf(t); ok {
		return string(f)
	}
	return "unknown"
}

// GET /v1/event-types: compiled-in event types, optionally for one family.
func (h *Handler) listEventTypes(w http.ResponseWriter, r *http.Request) {
	family := r.URL.Query().Get("family")
	if family != "" && !event.IsFamily(family) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown family %q", family))
		return
	}

	types := make([]event.Descriptor, 0, 256)
	for _, t := range event.KnownTypes() {
		d, _ := event.Describe(t)
		if family != "" && string(d.Family) != family {
			continue
		}
		types = append(types, d)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"families":    event.Families(),
		"count":       len(types),
		"event_types": types,
	})
}

// GET /v1/routes: the routes currently in use.
func (h *Handler) listRoutes(w http.ResponseWriter, r *http.Request) {
	routes := h.eng.Router().Routes()
	out := make([]config.Route, 0, len(routes))
	for _, rt := range routes {
		out = append(out, rt.Config())
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version": h.loader.Config().Version,
		"routes":  out,
	})
}

// POST /v1/routes/reload: re-read the config from disk. A config that fails
// validation or route compilation is rejected and nothing changes.
func (h *Handler) reloadRoutes(w http.ResponseWriter, r *http.Request) {
	if _, err := h.loader.Reload(); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, config.ErrRejected) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded":     true,
		"routes_count": len(h.eng.Router().Routes()),
	})
}

// GET /v1/dead-letters: newest parked deliveries first.
func (h *Handler) listDeadLetters(w http.ResponseWriter, r *http.Request) {
	limit := defaultDeadLetterLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	entries, err := h.sink.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":        len(entries),
		"dead_letters": entries,
	})
}

// GET /healthz: always 200 while the process is up.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /readyz: 503 if the event queue is more than 80% full.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	util := h.eng.QueueUtilization()
	metrics.QueueUtilization.Set(util)
	if util > 0.8 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":            "overloaded",
			"queue_utilization": util,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ready",
		"queue_utilization": util,
	})
}
