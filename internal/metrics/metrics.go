package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhooksReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payhook_webhooks_received_total",
		Help: "Total number of webhook deliveries received, labelled by endpoint.",
	}, []string{"endpoint"})

	EventsDecoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payhook_events_decoded_total",
		Help: "Total number of envelopes decoded, labelled by outcome and family.",
	}, []string{"outcome", "family"})

	UnknownObjects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payhook_unknown_objects_total",
		Help: "Total number of payloads whose nested object kind was not recognized, labelled by event type.",
	}, []string{"type"})

	EventsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payhook_events_enqueued_total",
		Help: "Total number of events placed on the processing queue.",
	})

	EventsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payhook_events_processed_total",
		Help: "Total number of events fully processed by the engine.",
	})

	EventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payhook_events_dropped_total",
		Help: "Total number of events rejected due to a full queue.",
	})

	RoutesMatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payhook_routes_matched_total",
		Help: "Total number of route matches, labelled by route ID.",
	}, []string{"route_id"})

	ActionsExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payhook_actions_executed_total",
		Help: "Total number of actions executed, labelled by type and status.",
	}, []string{"action_type", "status"})

	RoutedEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payhook_routed_events_total",
		Help: "Events counted by count actions, labelled by route, action and family.",
	}, []string{"route_id", "action_id", "family"})

	DeadLetters = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payhook_dead_letters_total",
		Help: "Total number of deliveries written to the dead-letter sink, labelled by reason.",
	}, []string{"reason"})

	EventProcessingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "payhook_event_processing_duration_ms",
		Help:    "Routing and action latency per event in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})

	QueueUtilization = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "payhook_queue_utilization_ratio",
		Help: "Current event queue utilization (0–1).",
	})
)
