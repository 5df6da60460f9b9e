package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/articles", "200"))
	RecordHTTPRequest("GET", "/api/articles", 200, 15*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/articles", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordHTTPRequest_UnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
	RecordHTTPRequest("GET", "", 404, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestSetDBUp(t *testing.T) {
	SetDBUp(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(DBUp))
	SetDBUp(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(DBUp))
}
