package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottmc500/ScottLMS/internal/logger"
	"github.com/scottmc500/ScottLMS/internal/middleware"
)

func TestLogging(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	original := logger.GetLogger()
	logger.SetLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { logger.SetLogger(original) })

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging())
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	tests := []struct {
		path      string
		wantLevel string
		wantCode  float64
	}{
		{"/ok", "INFO", 200},
		{"/missing", "WARN", 404},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			buf.Reset()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(middleware.RequestIDHeader, "log-test")
			router.ServeHTTP(httptest.NewRecorder(), req)

			line := strings.TrimSpace(buf.String())
			var entry map[string]any
			require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "Request completed", entry["msg"])
			assert.Equal(t, tt.path, entry["path"])
			assert.Equal(t, tt.wantCode, entry["status"])
			assert.Equal(t, "log-test", entry["request_id"])
		})
	}
}
