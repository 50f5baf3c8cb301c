package printing

import (
	"bytes"
	"context"
	"time"

	"github.com/erp/labeler/internal/domain/labeling"
)

// RenderResult contains the output from PDF rendering
type RenderResult struct {
	// PDFData is the raw PDF file content
	PDFData []byte
	// PageCount is the number of pages in the PDF
	PageCount int
	// RenderDuration is how long the rendering took
	RenderDuration time.Duration
}

// SheetRenderer replays a laid-out label sheet onto a PDF document
type SheetRenderer interface {
	// Render draws every page and cell of the sheet and returns the PDF bytes.
	// An empty sheet yields a valid single blank page.
	Render(ctx context.Context, sheet labeling.Sheet) (*RenderResult, error)
	// Close releases any resources held by the renderer
	Close() error
}

// RenderError represents an error during PDF rendering
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Error codes for rendering failures
const (
	ErrCodeRenderTimeout = "RENDER_TIMEOUT"
	ErrCodeRenderFailed  = "RENDER_FAILED"
	ErrCodeUnknownEngine = "UNKNOWN_ENGINE"
)

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Engine names accepted by NewSheetRenderer
const (
	EngineFPDF     = "fpdf"
	EngineChromedp = "chromedp"
)

// NewSheetRenderer builds the renderer selected by engine
func NewSheetRenderer(engine string, fpdfCfg *FPDFConfig, chromeCfg *ChromedpConfig) (SheetRenderer, error) {
	switch engine {
	case "", EngineFPDF:
		return NewFPDFRenderer(fpdfCfg), nil
	case EngineChromedp:
		return NewChromedpRenderer(chromeCfg)
	default:
		return nil, NewRenderError(ErrCodeUnknownEngine, "unknown render engine: "+engine, nil)
	}
}

// countPages counts page objects in a PDF stream
func countPages(pdfData []byte) int {
	count := bytes.Count(pdfData, []byte("/Type /Page"))
	// "/Type /Page" also matches the parent "/Type /Pages" object
	parentCount := bytes.Count(pdfData, []byte("/Type /Pages"))
	count = count - parentCount
	return max(count, 1)
}
