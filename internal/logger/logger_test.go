package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "info"},
		{http.StatusUnauthorized, "warn"},
		{http.StatusInternalServerError, "error"},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set(RequestIDKey, "req-1")
			c.Next()
		})
		r.Use(Middleware(New(&buf, "debug", "json")))
		r.GET("/api/admin/stats", func(c *gin.Context) {
			if tc.status >= 500 {
				_ = c.Error(errors.New("db down"))
			}
			c.Status(tc.status)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))

		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, tc.level, line["level"])
		assert.Equal(t, "http", line["component"])
		assert.Equal(t, "req-1", line["request_id"])
		assert.Equal(t, "/api/admin/stats", line["path"])
		assert.EqualValues(t, tc.status, line["status"])
		if tc.status >= 500 {
			assert.Contains(t, line["errors"], "db down")
		}
	}
}

func TestNewFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", "json")

	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
