package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3)
	now := time.Now()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.allow("10.0.0.1", now), "request %d", i)
	}
	assert.False(t, rl.allow("10.0.0.1", now))
	assert.True(t, rl.allow("10.0.0.2", now), "limits are per IP")

	// One token refills every 20s.
	assert.True(t, rl.allow("10.0.0.1", now.Add(21*time.Second)))
}

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(1)
	now := time.Now()

	rl.allow("10.0.0.1", now)
	rl.allow("10.0.0.2", now.Add(visitorTTL+time.Minute))

	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestRateLimiterMiddleware(t *testing.T) {
	r := gin.New()
	r.POST("/api/auth/login", NewRateLimiter(1).Middleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	send := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
		return w
	}

	assert.Equal(t, http.StatusNoContent, send().Code)
	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
