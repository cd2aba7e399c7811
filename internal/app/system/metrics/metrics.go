// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ApplicationsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "placementhub_applications_submitted_total",
		Help: "Internship applications stored successfully.",
	})

	ApplicationsRejectedInput = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "placementhub_applications_invalid_total",
		Help: "Application submissions refused before storage, by stage.",
	}, []string{"stage"})

	StatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "placementhub_application_status_changes_total",
		Help: "Application status updates, by resulting status.",
	}, []string{"status"})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "placementhub_notifications_sent_total",
		Help: "Emails delivered to the transport, by template.",
	}, []string{"template"})

	NotificationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "placementhub_notifications_failed_total",
		Help: "Emails that failed to send, by template.",
	}, []string{"template"})

	NotificationsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "placementhub_notifications_in_flight",
		Help: "Notification sends currently running.",
	})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
