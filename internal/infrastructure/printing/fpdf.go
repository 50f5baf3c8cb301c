package printing

import (
	"bytes"
	"context"
	"time"

	"github.com/erp/labeler/internal/domain/labeling"
	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

const outlineLineWidth = 1.0

// FPDFConfig contains configuration for the fpdf renderer
type FPDFConfig struct {
	// Title stored in the PDF document metadata
	Title string
	// Creator stored in the PDF document metadata
	Creator string
	// Compress enables stream compression
	Compress bool
	// Timestamp pins the creation and modification dates.
	// Zero means time.Now at render time.
	Timestamp time.Time
	// Logger for debug output
	Logger *zap.Logger
}

// FPDFRenderer draws label sheets directly with the core PDF fonts
type FPDFRenderer struct {
	config *FPDFConfig
	logger *zap.Logger
}

// NewFPDFRenderer creates a new fpdf-based sheet renderer
func NewFPDFRenderer(config *FPDFConfig) *FPDFRenderer {
	if config == nil {
		config = &FPDFConfig{Compress: true}
	}
	if config.Title == "" {
		config.Title = "Labels"
	}
	if config.Creator == "" {
		config.Creator = "labeler"
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FPDFRenderer{
		config: config,
		logger: logger,
	}
}

// Render draws the sheet page by page
func (r *FPDFRenderer) Render(ctx context.Context, sheet labeling.Sheet) (*RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewRenderError(ErrCodeRenderTimeout, "PDF rendering was cancelled", err)
	}

	startTime := time.Now()
	g := sheet.Geometry

	// The geometry is already landscape, so the page size is passed as-is
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetCompression(r.config.Compress)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetTitle(r.config.Title, true)
	pdf.SetCreator(r.config.Creator, true)

	stamp := r.config.Timestamp
	if stamp.IsZero() {
		stamp = startTime
	}
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range sheet.Pages {
		pdf.AddPage()
		for _, cell := range page.Cells {
			r.drawRect(pdf, g, cell.Outline)
			for _, fill := range cell.Fills {
				r.drawRect(pdf, g, fill)
			}
			for _, text := range cell.Texts {
				r.drawText(pdf, g, text, tr)
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, NewRenderError(ErrCodeRenderTimeout, "PDF rendering was cancelled", err)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.logger.Error("fpdf rendering failed", zap.Error(err))
		return nil, NewRenderError(ErrCodeRenderFailed, "fpdf output failed", err)
	}

	renderDuration := time.Since(startTime)
	r.logger.Debug("PDF rendered",
		zap.Int("bytes", buf.Len()),
		zap.Int("pages", pdf.PageCount()),
		zap.Int("labels", sheet.CellCount()),
		zap.Duration("duration", renderDuration))

	return &RenderResult{
		PDFData:        buf.Bytes(),
		PageCount:      pdf.PageCount(),
		RenderDuration: renderDuration,
	}, nil
}

// drawRect strokes or fills a rectangle; each call sets its own colour
func (r *FPDFRenderer) drawRect(pdf *fpdf.Fpdf, g labeling.Geometry, op labeling.RectOp) {
	top := g.PageHeight - (op.Y + op.Height)
	switch op.Mode {
	case labeling.RectFilled:
		pdf.SetFillColor(int(op.Color.R), int(op.Color.G), int(op.Color.B))
		pdf.Rect(op.X, top, op.Width, op.Height, "F")
	default:
		pdf.SetDrawColor(int(op.Color.R), int(op.Color.G), int(op.Color.B))
		pdf.SetLineWidth(outlineLineWidth)
		pdf.Rect(op.X, top, op.Width, op.Height, "D")
	}
}

// drawText writes one line at its baseline
func (r *FPDFRenderer) drawText(pdf *fpdf.Fpdf, g labeling.Geometry, op labeling.TextOp, tr func(string) string) {
	pdf.SetFont(op.Font.Family, string(op.Font.Style), op.Font.Size)
	pdf.SetTextColor(int(op.Color.R), int(op.Color.G), int(op.Color.B))
	pdf.Text(op.X, g.PageHeight-op.Y, tr(op.Text))
}

// Close releases resources held by the renderer
func (r *FPDFRenderer) Close() error {
	return nil
}

// Ensure FPDFRenderer implements SheetRenderer
var _ SheetRenderer = (*FPDFRenderer)(nil)
