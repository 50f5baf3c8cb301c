package labeling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/erp/labeler/internal/domain/labeling"
	"github.com/erp/labeler/internal/domain/shared"
	"github.com/erp/labeler/internal/infrastructure/logger"
	infra "github.com/erp/labeler/internal/infrastructure/printing"
	"go.uber.org/zap"
)

// LabelService handles label sheet rendering and the label catalog
type LabelService struct {
	productLines  labeling.ProductLineRepository
	workstations  labeling.WorkstationRepository
	floorStock    labeling.FloorStockSource
	renderer      infra.SheetRenderer
	geometry      labeling.Geometry
	renderTimeout time.Duration
	logger        *zap.Logger
}

// Option configures a LabelService
type Option func(*LabelService)

// WithRenderTimeout bounds each render call
func WithRenderTimeout(d time.Duration) Option {
	return func(s *LabelService) {
		s.renderTimeout = d
	}
}

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *LabelService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewLabelService creates a new LabelService. A nil floor-stock source means
// no part is ever floor stock.
func NewLabelService(
	productLines labeling.ProductLineRepository,
	workstations labeling.WorkstationRepository,
	floorStock labeling.FloorStockSource,
	renderer infra.SheetRenderer,
	opts ...Option,
) *LabelService {
	s := &LabelService{
		productLines: productLines,
		workstations: workstations,
		floorStock:   floorStock,
		renderer:     renderer,
		geometry:     labeling.StandardGeometry(),
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// =============================================================================
// Sheet Operations
// =============================================================================

// GenerateSheet lays out the eligible records and renders them to a PDF
func (s *LabelService) GenerateSheet(ctx context.Context, req GenerateSheetRequest) (*SheetResult, error) {
	table, err := s.floorStockTable(ctx)
	if err != nil {
		return nil, err
	}

	sheet := s.geometry.Layout(req.Labels, table)

	if s.renderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.renderTimeout)
		defer cancel()
	}

	result, err := s.renderer.Render(ctx, sheet)
	if err != nil {
		s.log(ctx).Error("label sheet render failed",
			zap.Int("records", len(req.Labels)),
			zap.Int("cells", sheet.CellCount()),
			zap.Error(err))
		return nil, err
	}

	s.log(ctx).Info("label sheet rendered",
		zap.Int("records", len(req.Labels)),
		zap.Int("labels", sheet.CellCount()),
		zap.Int("pages", result.PageCount),
		zap.Int("floor_stock_parts", table.Len()),
		zap.Int("bytes", len(result.PDFData)),
		zap.Duration("duration", result.RenderDuration))

	return &SheetResult{
		PDF:            result.PDFData,
		Filename:       SheetFilename,
		PageCount:      result.PageCount,
		LabelCount:     sheet.CellCount(),
		RenderDuration: result.RenderDuration,
	}, nil
}

// =============================================================================
// Lookup Operations
// =============================================================================

// CheckFloorStock reports the floor-stock status of one part number
func (s *LabelService) CheckFloorStock(ctx context.Context, partNumber string) (*FloorStockStatus, error) {
	pn := strings.TrimSpace(partNumber)
	if pn == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Part number is required")
	}

	table, err := s.floorStockTable(ctx)
	if err != nil {
		return nil, err
	}

	status := &FloorStockStatus{PartNumber: pn}
	if loc, ok := table.Lookup(pn); ok {
		status.IsFloorStock = true
		status.Location = loc
		status.Display = labeling.ResolveQuantity(labeling.LabelSide{PartNumber: pn}, table).Line()
	}
	return status, nil
}

// SearchPart finds every workstation label carrying the part number
func (s *LabelService) SearchPart(ctx context.Context, partNumber string) (*PartSearchResult, error) {
	pn := strings.TrimSpace(partNumber)
	if pn == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Part number is required")
	}

	workstations, err := s.workstations.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load workstations: %w", err)
	}

	hits := labeling.FindPart(workstations, pn)
	if len(hits) == 0 {
		return nil, shared.NewDomainError("NOT_FOUND", "Part number not found in any workstation")
	}
	return &PartSearchResult{PartNumber: pn, Locations: hits}, nil
}

// =============================================================================
// Catalog Operations
// =============================================================================

// SaveProductLines replaces the product line list
func (s *LabelService) SaveProductLines(ctx context.Context, req SaveProductLinesRequest) (*ProductLinesResponse, error) {
	lines := make([]labeling.ProductLine, 0, len(req.ProductLines))
	for _, name := range req.ProductLines {
		line, err := labeling.NewProductLine(name)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err := s.productLines.Save(ctx, lines); err != nil {
		return nil, fmt.Errorf("failed to save product lines: %w", err)
	}

	s.log(ctx).Info("product lines saved", zap.Int("count", len(lines)))
	return s.ListProductLines(ctx)
}

// ListProductLines returns the stored product line names
func (s *LabelService) ListProductLines(ctx context.Context) (*ProductLinesResponse, error) {
	lines, err := s.productLines.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load product lines: %w", err)
	}

	names := make([]string, len(lines))
	for i, l := range lines {
		names[i] = l.Name
	}
	return &ProductLinesResponse{ProductLines: names}, nil
}

// SaveWorkstations merges workstations into the store
func (s *LabelService) SaveWorkstations(ctx context.Context, req SaveWorkstationsRequest) (*WorkstationsResponse, error) {
	for _, ws := range req.Workstations {
		if err := ws.Validate(); err != nil {
			return nil, err
		}
	}

	if err := s.workstations.Save(ctx, req.Workstations); err != nil {
		return nil, fmt.Errorf("failed to save workstations: %w", err)
	}

	s.log(ctx).Info("workstations saved", zap.Int("count", len(req.Workstations)))
	return s.ListWorkstations(ctx)
}

// ListWorkstations returns every stored workstation
func (s *LabelService) ListWorkstations(ctx context.Context) (*WorkstationsResponse, error) {
	workstations, err := s.workstations.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load workstations: %w", err)
	}
	return &WorkstationsResponse{Workstations: workstations}, nil
}

// ListWorkstationsByProductLine returns the workstations of one product line
func (s *LabelService) ListWorkstationsByProductLine(ctx context.Context, productLine string) (*WorkstationsResponse, error) {
	if strings.TrimSpace(productLine) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product line is required")
	}

	workstations, err := s.workstations.LoadByProductLine(ctx, productLine)
	if err != nil {
		return nil, fmt.Errorf("failed to load workstations: %w", err)
	}
	return &WorkstationsResponse{Workstations: workstations}, nil
}

// log returns the request-scoped logger carried by ctx, if any
func (s *LabelService) log(ctx context.Context) *zap.Logger {
	return logger.FromContext(ctx, s.logger)
}

// floorStockTable loads the current table; without a source it is empty
func (s *LabelService) floorStockTable(ctx context.Context) (labeling.FloorStockTable, error) {
	if s.floorStock == nil {
		return labeling.FloorStockTable{}, nil
	}
	table, err := s.floorStock.Table(ctx)
	if err != nil {
		return labeling.FloorStockTable{}, fmt.Errorf("failed to load floor stock: %w", err)
	}
	return table, nil
}
