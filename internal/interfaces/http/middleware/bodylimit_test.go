package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allows request within limit", func(t *testing.T) {
		router := gin.New()
		router.Use(BodyLimit(1024))
		router.POST("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader([]byte("small body")))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects request exceeding Content-Length limit", func(t *testing.T) {
		router := gin.New()
		router.Use(BodyLimit(100))
		router.POST("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(strings.Repeat("x", 200)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_REQUEST_TOO_LARGE")
	})

	t.Run("caps streaming bodies", func(t *testing.T) {
		router := gin.New()
		router.Use(BodyLimit(50))
		router.POST("/test", func(c *gin.Context) {
			var req struct {
				Data string `json:"data"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				HandleBindError(c, err)
				return
			}
			c.String(http.StatusOK, "ok")
		})

		body := strings.NewReader(`{"data":"` + strings.Repeat("x", 100) + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/test", body)
		req.ContentLength = -1
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
