package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func findEntry(entries []observer.LoggedEntry, msg string) *observer.LoggedEntry {
	for i := range entries {
		if entries[i].Message == msg {
			return &entries[i]
		}
	}
	return nil
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("request_id", "test-req-123")
		c.Next()
	})
	router.Use(GinMiddleware(zap.New(core)))
	router.GET("/labels", func(c *gin.Context) {
		// The request context carries the same scoped logger
		FromContext(c.Request.Context(), nil).Info("inside handler")
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/labels?x=1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	inside := findEntry(recorded.All(), "inside handler")
	require.NotNil(t, inside)
	assert.Equal(t, "test-req-123", inside.ContextMap()["request_id"])
	assert.Equal(t, "/labels", inside.ContextMap()["path"])

	httpLog := findEntry(recorded.All(), "HTTP Request")
	require.NotNil(t, httpLog)
	assert.Equal(t, zapcore.InfoLevel, httpLog.Level)
	assert.Equal(t, "x=1", httpLog.ContextMap()["query"])
	assert.EqualValues(t, http.StatusOK, httpLog.ContextMap()["status"])
}

func TestGinMiddleware_LevelByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		status int
		level  zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusBadRequest, zapcore.WarnLevel},
		{http.StatusInternalServerError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		core, recorded := observer.New(zapcore.DebugLevel)
		router := gin.New()
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/x", func(c *gin.Context) { c.Status(tt.status) })

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

		entry := findEntry(recorded.All(), "HTTP Request")
		require.NotNil(t, entry)
		assert.Equal(t, tt.level, entry.Level, "status %d", tt.status)
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.ErrorLevel)
	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotNil(t, findEntry(recorded.All(), "Panic recovered"))
}

func TestGetGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, GetGinLogger(c))

	l := zap.NewExample()
	c.Set("logger", l)
	assert.Same(t, l, GetGinLogger(c))
}
