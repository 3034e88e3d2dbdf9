package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordsCounters(t *testing.T) {
	c := metrics.NewCollector(nil)

	c.RecordMovementPosted("DEPOSIT")
	c.RecordMovementPosted("DEPOSIT")
	c.RecordMovementRejected("insufficient_balance")
	c.RecordProvisioning("skipped")
	c.RecordStatementGenerated()
	c.RecordEventPublished(false)
	c.RecordHTTPRequest(http.MethodGet, "/api/v1/accounts/:accountID", http.StatusOK, 10*time.Millisecond)

	count, err := testutil.GatherAndCount(c.Registry(), "movements_posted_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one label set")

	rec := httptest.NewRecorder()
	c.GetHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `movements_posted_total{kind="DEPOSIT"} 2`)
	assert.Contains(t, body, `movements_rejected_total{reason="insufficient_balance"} 1`)
	assert.Contains(t, body, `accounts_provisioned_total{outcome="skipped"} 1`)
	assert.Contains(t, body, `statements_generated_total 1`)
	assert.Contains(t, body, `customer_events_published_total{outcome="failure"} 1`)
	assert.Contains(t, body, `http_requests_total{method="GET",route="/api/v1/accounts/:accountID",status="200"} 1`)
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *metrics.Collector
	assert.NotPanics(t, func() {
		c.RecordMovementPosted("DEPOSIT")
		c.RecordProvisioning("created")
		c.RecordHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
}
