package labeling

import (
	"time"

	"github.com/erp/labeler/internal/domain/labeling"
)

// SheetFilename is the download name of a rendered sheet
const SheetFilename = "labels.pdf"

// =============================================================================
// Sheet DTOs
// =============================================================================

// GenerateSheetRequest carries the label records to render, in print order
type GenerateSheetRequest struct {
	Labels []labeling.LabelRecord `json:"labels_data"`
}

// SheetResult is a rendered label sheet
type SheetResult struct {
	PDF            []byte
	Filename       string
	PageCount      int
	LabelCount     int
	RenderDuration time.Duration
}

// =============================================================================
// Lookup DTOs
// =============================================================================

// PartNumberRequest identifies a single part
type PartNumberRequest struct {
	PartNumber string `json:"part_number" binding:"required,max=64"`
}

// FloorStockStatus reports whether a part is supplied from floor stock
type FloorStockStatus struct {
	PartNumber   string `json:"part_number"`
	IsFloorStock bool   `json:"is_floor_stock"`
	Location     string `json:"location,omitempty"`
	// Display is the quantity line a label would print, e.g. "FS-R12"
	Display string `json:"display,omitempty"`
}

// PartSearchResult lists where a part is labelled
type PartSearchResult struct {
	PartNumber string                  `json:"part_number"`
	Locations  []labeling.PartLocation `json:"locations"`
}

// =============================================================================
// Catalog DTOs
// =============================================================================

// SaveProductLinesRequest replaces the product line list
type SaveProductLinesRequest struct {
	ProductLines []string `json:"product_lines" binding:"dive,max=100"`
}

// ProductLinesResponse lists product line names in stored order
type ProductLinesResponse struct {
	ProductLines []string `json:"product_lines"`
}

// SaveWorkstationsRequest merges workstations into the store
type SaveWorkstationsRequest struct {
	Workstations []labeling.Workstation `json:"workstations" binding:"required"`
}

// WorkstationsResponse lists workstations
type WorkstationsResponse struct {
	Workstations []labeling.Workstation `json:"workstations"`
}
