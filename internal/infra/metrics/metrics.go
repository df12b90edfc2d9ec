// Package metrics exposes engine counters through a dedicated Prometheus registry.
package metrics

import (
	"net/http"

	"eventpulse/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eventpulse"

// Registry owns the collectors of the engagement engine
type Registry struct {
	registry *prometheus.Registry

	notificationsSelected *prometheus.CounterVec
	sourceFailures        *prometheus.CounterVec
	proximityAlerts       prometheus.Counter
	remindersFired        prometheus.Counter
	remindersSuppressed   prometheus.Counter
	historyPruned         prometheus.Counter
}

// New builds a registry with the engine collectors plus the Go and process collectors
func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		notificationsSelected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_selected_total",
			Help:      "Notifications selected by the arbiter, by type",
		}, []string{"type"}),
		sourceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_failures_total",
			Help:      "Data source failures that degraded a candidate source",
		}, []string{"source"}),
		proximityAlerts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proximity_alerts_total",
			Help:      "Events that newly entered a watching session's radius",
		}),
		remindersFired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_fired_total",
			Help:      "Re-engagement reminders delivered to the candidate inbox",
		}),
		remindersSuppressed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_suppressed_total",
			Help:      "Re-engagement reminders dropped because the user already converted",
		}),
		historyPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_records_pruned_total",
			Help:      "Expired shown-notification records removed",
		}),
	}

	reg.MustRegister(
		r.notificationsSelected,
		r.sourceFailures,
		r.proximityAlerts,
		r.remindersFired,
		r.remindersSuppressed,
		r.historyPruned,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// NewEngagementMetrics exposes the registry as the domain metrics port
func NewEngagementMetrics(r *Registry) service.EngagementMetrics {
	return r
}

// Handler serves the registry in the Prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Registry) NotificationSelected(notificationType string) {
	r.notificationsSelected.WithLabelValues(notificationType).Inc()
}

func (r *Registry) SourceFailed(source string) {
	r.sourceFailures.WithLabelValues(source).Inc()
}

func (r *Registry) ProximityAlert() {
	r.proximityAlerts.Inc()
}

func (r *Registry) ReminderFired() {
	r.remindersFired.Inc()
}

func (r *Registry) ReminderSuppressed() {
	r.remindersSuppressed.Inc()
}

func (r *Registry) HistoryPruned(count int) {
	if count > 0 {
		r.historyPruned.Add(float64(count))
	}
}
