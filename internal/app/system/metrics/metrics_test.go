package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNotificationCounters(t *testing.T) {
	before := promtest.ToFloat64(NotificationsSent.WithLabelValues("confirmation"))
	NotificationsSent.WithLabelValues("confirmation").Inc()
	if got := promtest.ToFloat64(NotificationsSent.WithLabelValues("confirmation")); got != before+1 {
		t.Errorf("notifications sent = %v, want %v", got, before+1)
	}
}

func TestHandler_ExposesCollectors(t *testing.T) {
	ApplicationsRejectedInput.WithLabelValues("validation").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{
		"placementhub_applications_submitted_total",
		`placementhub_applications_invalid_total{stage="validation"}`,
		"placementhub_notifications_in_flight",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}
