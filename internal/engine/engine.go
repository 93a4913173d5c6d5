package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gyaneshwarpardhi/payhook/internal/action"
	"github.com/gyaneshwarpardhi/payhook/internal/config"
	"github.com/gyaneshwarpardhi/payhook/internal/metrics"
	"github.com/gyaneshwarpardhi/payhook/internal/router"
	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

// Delivery is one decoded webhook waiting to be routed.
type Delivery struct {
	ID    string
	Event *event.Event
	Body  []byte
}

// Result is the outcome of routing a single delivery.
type Result struct {
	DeliveryID      string           `json:"delivery_id"`
	EventID         string           `json:"event_id"`
	Type            event.Type       `json:"type"`
	Payload         string           `json:"payload"`
	DurationMs      int64            `json:"duration_ms"`
	RoutesMatched   []string         `json:"routes_matched"`
	ActionsExecuted []*action.Result `json:"actions_executed"`
	Error           string           `json:"error,omitempty"`
}

// Engine routes deliveries and runs the matched actions on a bounded worker pool.
type Engine struct {
	router   atomic.Pointer[router.Router]
	registry *action.Registry
	pool     *workerPool[*work]
	conf     config.ReceiverConf
	logger   *slog.Logger
}

type work struct {
	d       *Delivery
	resultC chan *Result
}

// New creates an Engine using conf and starts its workers. Workers stop when
// ctx is canceled or Shutdown is called.
func New(ctx context.Context, r *router.Router, reg *action.Registry, conf config.ReceiverConf) *Engine {
	e := &Engine{
		registry: reg,
		conf:     conf,
		logger:   slog.Default(),
	}
	e.router.Store(r)

	e.pool = newWorkerPool[*work](ctx, conf.EventWorkers, conf.QueueDepth,
		func(ctx context.Context, w *work) {
			res := e.process(ctx, w.d)
			if w.resultC != nil {
				w.resultC <- res
			}
		},
	)
	return e
}

// SwapRouter atomically replaces the routes (used on hot-reload).
func (e *Engine) SwapRouter(r *router.Router) {
	e.router.Store(r)
}

// Follow keeps the engine's routes in step with loader. A reloaded config is
// published only when it validates and its routes compile against the
// engine's registry; the compiled routes are swapped in on publish.
func (e *Engine) Follow(loader *config.Loader) {
	var staged *router.Router
	loader.Check(config.Validate)
	loader.Check(func(cfg *config.Config) error {
		rt, err := router.Build(cfg, e.registry)
		if err != nil {
			return err
		}
		staged = rt
		return nil
	})
	loader.OnChange(func(*config.Config) {
		e.SwapRouter(staged)
		e.logger.Info("routes reloaded", "routes", len(staged.Routes()))
	})
}

// Router returns the routes currently in use.
func (e *Engine) Router() *router.Router {
	return e.router.Load()
}

// ProcessSync routes a delivery and waits for the result.
func (e *Engine) ProcessSync(ctx context.Context, d *Delivery) (*Result, error) {
	resultC := make(chan *Result, 1)
	if !e.submit(&work{d: d, resultC: resultC}) {
		return nil, fmt.Errorf("event queue full (capacity %d)", e.conf.QueueDepth)
	}

	timeout := time.Duration(e.conf.EventTimeoutMs) * time.Millisecond
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-resultC:
		return res, nil
	case <-timer.C:
		return nil, fmt.Errorf("event processing timeout after %v", timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ProcessAsync enqueues a delivery for background routing. Returns false if the queue is full.
func (e *Engine) ProcessAsync(d *Delivery) bool {
	return e.submit(&work{d: d})
}

func (e *Engine) submit(w *work) bool {
	ok := e.pool.Submit(w)
	if ok {
		metrics.EventsEnqueued.Inc()
	} else {
		metrics.EventsDropped.Inc()
	}
	metrics.QueueUtilization.Set(e.QueueUtilization())
	return ok
}

// QueueUtilization returns queue used / capacity (0–1).
func (e *Engine) QueueUtilization() float64 {
	if e.pool.QueueCap() == 0 {
		return 0
	}
	return float64(e.pool.QueueLen()) / float64(e.pool.QueueCap())
}

func (e *Engine) process(ctx context.Context, d *Delivery) *Result {
	start := time.Now()
	ev := d.Event

	matches, routesMatched, err := e.router.Load().Match(ev)
	result := &Result{
		DeliveryID:      d.ID,
		EventID:         ev.ID,
		Type:            ev.Type,
		Payload:         event.PayloadName(ev.Payload),
		RoutesMatched:   routesMatched,
		ActionsExecuted: make([]*action.Result, 0, len(matches)),
	}
	if err != nil {
		e.logger.Warn("route evaluation failed", "delivery_id", d.ID, "type", ev.Type, "err", err)
		result.Error = err.Error()
	}

	// Actions run in order within the event worker.
	for _, m := range matches {
		in := &action.Input{DeliveryID: d.ID, RouteID: m.RouteID, Event: ev, Body: d.Body}
		result.ActionsExecuted = append(result.ActionsExecuted, e.runAction(ctx, m, in))
	}

	elapsed := time.Since(start)
	result.DurationMs = elapsed.Milliseconds()

	metrics.EventsProcessed.Inc()
	metrics.EventProcessingDuration.Observe(float64(elapsed.Microseconds()) / 1000)
	for _, id := range routesMatched {
		metrics.RoutesMatched.WithLabelValues(id).Inc()
	}
	return result
}

func (e *Engine) runAction(ctx context.Context, m router.Match, in *action.Input) *action.Result {
	exec, err := e.registry.Get(m.Action.Type)
	if err != nil {
		metrics.ActionsExecuted.WithLabelValues(m.Action.Type, "error").Inc()
		return &action.Result{
			ActionID: m.Action.ID,
			RouteID:  m.RouteID,
			Type:     m.Action.Type,
			Success:  false,
			Message:  err.Error(),
		}
	}
	res, err := exec.Execute(ctx, m.Action.ID, m.Action.Params, in)
	if err != nil {
		metrics.ActionsExecuted.WithLabelValues(m.Action.Type, "error").Inc()
		e.logger.Warn("action failed", "delivery_id", in.DeliveryID, "action_id", m.Action.ID, "err", err)
		if res == nil {
			res = &action.Result{
				ActionID: m.Action.ID,
				RouteID:  m.RouteID,
				Type:     m.Action.Type,
				Success:  false,
				Message:  err.Error(),
			}
		}
		return res
	}
	status := "success"
	if !res.Success {
		status = "error"
	}
	metrics.ActionsExecuted.WithLabelValues(m.Action.Type, status).Inc()
	return res
}

// Shutdown drains the worker pool gracefully.
func (e *Engine) Shutdown() {
	e.pool.Drain()
}
