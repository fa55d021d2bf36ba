package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsUsesRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/metrics-test/:threadId", func(c *gin.Context) { c.Status(http.StatusOK) })

	threads := httpRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test/:threadId", "200")
	unmatched := httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	beforeThreads, beforeUnmatched := testutil.ToFloat64(threads), testutil.ToFloat64(unmatched)

	for _, id := range []string{"thread-1", "thread-2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics-test/"+id, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, beforeThreads+2, testutil.ToFloat64(threads))
	assert.Equal(t, beforeUnmatched+1, testutil.ToFloat64(unmatched))
	assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsInFlight))
}
