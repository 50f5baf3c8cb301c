package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()

	labels := NewDomainGroup("/labels")
	labels.POST("/pdf", func(c *gin.Context) { c.String(http.StatusOK, "pdf") })
	system := NewDomainGroup("/system")
	system.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	NewRouter(engine).Register(labels, system).Setup()

	w := serve(engine, http.MethodPost, "/api/v1/labels/pdf")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pdf", w.Body.String())

	w = serve(engine, http.MethodGet, "/api/v1/system/ping")
	assert.Equal(t, "pong", w.Body.String())

	w = serve(engine, http.MethodGet, "/labels/pdf")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDomainGroup_RegisterRoutes(t *testing.T) {
	engine := gin.New()
	h := func(c *gin.Context) { c.String(http.StatusOK, c.Request.Method+" "+c.Param("name")) }

	group := NewDomainGroup("/workstations").
		GET("", h).
		PUT("", h).
		GET("/by-product-line/:name", h)
	NewRouter(engine, WithAPIVersion("v2")).Register(group).Setup()

	w := serve(engine, http.MethodPut, "/api/v2/workstations")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PUT ", w.Body.String())

	w = serve(engine, http.MethodGet, "/api/v2/workstations/by-product-line/Line%20A")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GET Line A", w.Body.String())

	w = serve(engine, http.MethodPost, "/api/v2/workstations")
	assert.NotEqual(t, http.StatusOK, w.Code)
}
