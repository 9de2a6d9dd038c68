package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/tenanthq/tenant-api/pkg/metrics"
)

func doRequest(r *gin.Engine, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_AllowsUnderLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(10, 2)) // generous rate
	r.GET("/ok", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	before := testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory"))

	// two quick requests should pass
	w := doRequest(r, "/ok", "10.1.0.1:1000")
	w2 := doRequest(r, "/ok", "10.1.0.1:1000")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, http.StatusOK, w2.Code)

	// verify metrics incremented for memory limiter
	after := testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory"))
	require.Equal(t, before+2, after)
}

func TestRateLimitMiddleware_BlocksWhenExceeded(t *testing.T) {
	r := gin.New()
	// very low rate to force rejections
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/limited", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// first request -> allowed
	w1 := doRequest(r, "/limited", "10.1.0.2:1000")
	require.Equal(t, http.StatusOK, w1.Code)

	// immediate second request -> should be rate-limited
	w2 := doRequest(r, "/limited", "10.1.0.2:1000")
	require.Equal(t, http.StatusTooManyRequests, w2.Code)

	// wait for half a second (0.5s) to replenish one token and it should be allowed
	time.Sleep(600 * time.Millisecond)
	w3 := doRequest(r, "/limited", "10.1.0.2:1000")
	require.Equal(t, http.StatusOK, w3.Code)
}

func TestRateLimitMiddleware_KeysClientsSeparately(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/c", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// exhaust the bucket for one client
	w1 := doRequest(r, "/c", "10.1.0.3:1000")
	require.Equal(t, http.StatusOK, w1.Code)
	w2 := doRequest(r, "/c", "10.1.0.3:1000")
	require.Equal(t, http.StatusTooManyRequests, w2.Code)

	// a different client is unaffected
	w3 := doRequest(r, "/c", "10.1.0.4:1000")
	require.Equal(t, http.StatusOK, w3.Code)
}
