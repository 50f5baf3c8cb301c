package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	labelingapp "github.com/erp/labeler/internal/application/labeling"
	"github.com/erp/labeler/internal/domain/labeling"
	"github.com/erp/labeler/internal/infrastructure/floorstock"
	"github.com/erp/labeler/internal/infrastructure/persistence"
	"github.com/erp/labeler/internal/infrastructure/printing"
	"github.com/erp/labeler/internal/interfaces/http/dto"
	"github.com/erp/labeler/internal/interfaces/http/middleware"
	"github.com/erp/labeler/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// failingRenderer always fails with the given error
type failingRenderer struct {
	err error
}

func (r failingRenderer) Render(context.Context, labeling.Sheet) (*printing.RenderResult, error) {
	return nil, r.err
}

func (r failingRenderer) Close() error { return nil }

// newTestEngine wires the real stores, a static floor-stock table and the
// given renderer behind the API routes.
func newTestEngine(t *testing.T, renderer printing.SheetRenderer) *gin.Engine {
	t.Helper()

	if renderer == nil {
		renderer = printing.NewFPDFRenderer(nil)
	}
	dataDir := t.TempDir()
	svc := labelingapp.NewLabelService(
		persistence.NewProductLineStore(dataDir),
		persistence.NewWorkstationStore(dataDir),
		floorstock.NewStaticSource(map[string]string{"FS-PART": "R12"}),
		renderer,
	)

	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(middleware.RequestID())

	labels := NewLabelHandler(svc)
	catalog := NewCatalogHandler(svc)
	system := NewSystemHandler("labeler", "test", printing.EngineFPDF)

	router.NewRouter(engine).Register(
		LabelRoutes(labels),
		ProductLineRoutes(catalog),
		WorkstationRoutes(catalog),
		SystemRoutes(system),
	).Setup()
	engine.GET("/health", system.Health)
	engine.Handle(http.MethodPost, "/", labels.GeneratePDF)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) dto.Response {
	t.Helper()

	var raw struct {
		dto.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return raw.Response
}

var errBoom = errors.New("boom")
