package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the service's Prometheus collectors. A nil *Manager is valid and records nothing.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Assistant
	commands           *prometheus.CounterVec
	interpreterLatency prometheus.Histogram
	interpreterErrors  prometheus.Counter
	commandsRejected   *prometheus.CounterVec

	// LLM providers
	llmRequests *prometheus.CounterVec
	llmTokens   *prometheus.CounterVec

	// Calendar
	eventsStored prometheus.Gauge

	// Reminders
	remindersSurfaced    prometheus.Counter
	notificationsPending prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager creates a metrics manager on its own registry unless WithRegistry is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "dashboard",
		subsystem:        "",
		histogramBuckets: prometheus.DefBuckets,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.commands = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "assistant_commands_total",
			Help:      "Assistant commands reconciled, by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	m.interpreterLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "interpreter_latency_seconds",
		Help:      "Round-trip latency of the command interpreter",
		Buckets:   m.histogramBuckets,
	})

	m.interpreterErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "interpreter_errors_total",
		Help:      "Interpreter round-trips that failed or returned an unusable payload",
	})

	m.commandsRejected = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "assistant_commands_rejected_total",
			Help:      "Submissions rejected before reaching the interpreter, by reason",
		},
		[]string{"reason"},
	)

	m.llmRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "llm_requests_total",
			Help:      "LLM provider calls by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	m.llmTokens = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "llm_tokens_total",
			Help:      "Tokens consumed by provider and direction",
		},
		[]string{"provider", "direction"},
	)

	m.eventsStored = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "calendar_events",
		Help:      "Number of events in the calendar store",
	})

	m.remindersSurfaced = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reminders_surfaced_total",
		Help:      "Reminder notifications surfaced by the scanner",
	})

	m.notificationsPending = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notifications_pending",
		Help:      "Reminder notifications waiting to be dismissed",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordCommand counts a reconciled command. outcome is "ok" or an error kind.
func (m *Manager) RecordCommand(action, outcome string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(action, outcome).Inc()
}

// RecordCommandRejected counts a submission refused before interpretation.
func (m *Manager) RecordCommandRejected(reason string) {
	if m == nil {
		return
	}
	m.commandsRejected.WithLabelValues(reason).Inc()
}

// ObserveInterpreter records one interpreter round-trip.
func (m *Manager) ObserveInterpreter(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.interpreterLatency.Observe(d.Seconds())
	if err != nil {
		m.interpreterErrors.Inc()
	}
}

// RecordLLMRequest counts one provider call after retries. outcome is "ok" or "error".
func (m *Manager) RecordLLMRequest(provider, outcome string, inputTokens, outputTokens int) {
	if m == nil {
		return
	}
	m.llmRequests.WithLabelValues(provider, outcome).Inc()
	if inputTokens > 0 {
		m.llmTokens.WithLabelValues(provider, "input").Add(float64(inputTokens))
	}
	if outputTokens > 0 {
		m.llmTokens.WithLabelValues(provider, "output").Add(float64(outputTokens))
	}
}

// SetEventsStored sets the current store size.
func (m *Manager) SetEventsStored(n int) {
	if m == nil {
		return
	}
	m.eventsStored.Set(float64(n))
}

// RecordRemindersSurfaced adds n newly surfaced reminders.
func (m *Manager) RecordRemindersSurfaced(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.remindersSurfaced.Add(float64(n))
}

// SetNotificationsPending sets the number of undismissed notifications.
func (m *Manager) SetNotificationsPending(n int) {
	if m == nil {
		return
	}
	m.notificationsPending.Set(float64(n))
}

// RecordHTTPRequest records a served HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(d.Seconds())
}

// Registry returns the registry the manager's collectors live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the manager's registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
