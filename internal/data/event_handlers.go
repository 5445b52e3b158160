package data

import (
	"tinylink/internal/domain/event"
	"tinylink/pkg/metrics"

	"github.com/go-kratos/kratos/v2/log"
)

// LoggingEventHandler logs all domain events.
type LoggingEventHandler struct {
	log *log.Helper
}

// NewLoggingEventHandler creates a new logging event handler.
func NewLoggingEventHandler(logger log.Logger) *LoggingEventHandler {
	return &LoggingEventHandler{
		log: log.NewHelper(logger),
	}
}

// Handle logs the event details.
func (h *LoggingEventHandler) Handle(e event.Event) error {
	switch evt := e.(type) {
	case event.LinkCreated:
		h.log.Infof("[Event] link created: %s -> %s (generated: %t)", evt.Code, evt.TargetURL, evt.Generated)
	case event.LinkClicked:
		h.log.Debugf("[Event] link clicked: %s (total: %d)", evt.Code, evt.TotalClicks)
	case event.LinkDeleted:
		h.log.Infof("[Event] link deleted: %s after %d clicks", evt.Code, evt.TotalClicks)
	default:
		h.log.Infof("[Event] %s: %s", e.EventName(), e.AggregateID())
	}
	return nil
}

// MetricsEventHandler turns domain events into Prometheus counters.
type MetricsEventHandler struct {
	metrics *metrics.Metrics
}

// NewMetricsEventHandler creates a new metrics event handler.
func NewMetricsEventHandler(m *metrics.Metrics) *MetricsEventHandler {
	return &MetricsEventHandler{metrics: m}
}

// Handle increments the counter matching the event.
func (h *MetricsEventHandler) Handle(e event.Event) error {
	switch evt := e.(type) {
	case event.LinkCreated:
		origin := "custom"
		if evt.Generated {
			origin = "generated"
		}
		h.metrics.LinksCreated.WithLabelValues(origin).Inc()
	case event.LinkClicked:
		h.metrics.Redirects.Inc()
	case event.LinkDeleted:
		h.metrics.LinksDeleted.Inc()
	}
	return nil
}

// NewEventDispatcher creates and configures an event dispatcher with handlers.
func NewEventDispatcher(m *metrics.Metrics, logger log.Logger) *event.Dispatcher {
	dispatcher := event.NewDispatcher()
	loggingHandler := NewLoggingEventHandler(logger)
	metricsHandler := NewMetricsEventHandler(m)

	for _, name := range event.Names {
		dispatcher.Register(name, loggingHandler)
		dispatcher.Register(name, metricsHandler)
	}

	return dispatcher
}
