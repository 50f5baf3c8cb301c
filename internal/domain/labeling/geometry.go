package labeling

import "math"

// PointsPerInch is the PDF user-space unit conversion
const PointsPerInch = 72.0

// Inches converts inches to points
func Inches(v float64) float64 {
	return v * PointsPerInch
}

// Geometry describes the fixed label sheet. All values are in points.
type Geometry struct {
	PageWidth         float64
	PageHeight        float64
	LabelWidth        float64
	LabelHeight       float64
	LeftMargin        float64
	TopMargin         float64
	HorizontalSpacing float64
	VerticalSpacing   float64
}

// StandardGeometry returns the only sheet the renderer produces:
// 3in x 1in labels on landscape US-Letter with 0.5in margins and 0.1in gaps.
func StandardGeometry() Geometry {
	return Geometry{
		PageWidth:         Inches(11),
		PageHeight:        Inches(8.5),
		LabelWidth:        Inches(3),
		LabelHeight:       Inches(1),
		LeftMargin:        Inches(0.5),
		TopMargin:         Inches(0.5),
		HorizontalSpacing: Inches(0.1),
		VerticalSpacing:   Inches(0.1),
	}
}

// LabelsPerRow is the number of cells that fit across the page
func (g Geometry) LabelsPerRow() int {
	return int(math.Floor((g.PageWidth - 2*g.LeftMargin + g.HorizontalSpacing) /
		(g.LabelWidth + g.HorizontalSpacing)))
}

// LabelsPerColumn is the number of cells that fit down the page
func (g Geometry) LabelsPerColumn() int {
	return int(math.Floor((g.PageHeight - 2*g.TopMargin + g.VerticalSpacing) /
		(g.LabelHeight + g.VerticalSpacing)))
}

// LabelsPerPage is LabelsPerRow * LabelsPerColumn
func (g Geometry) LabelsPerPage() int {
	return g.LabelsPerRow() * g.LabelsPerColumn()
}

// Slot is the position of the i-th eligible record on the sheet
type Slot struct {
	Index     int `json:"index"`
	Page      int `json:"page"`
	Row       int `json:"row"`
	Column    int `json:"column"`
	PosOnPage int `json:"pos_on_page"`
}

// StartsPage reports whether a page break precedes this slot
func (s Slot) StartsPage() bool {
	return s.PosOnPage == 0 && s.Index != 0
}

// SlotAt derives page, row and column from the record index alone
func (g Geometry) SlotAt(index int) Slot {
	perPage := g.LabelsPerPage()
	perRow := g.LabelsPerRow()
	pos := index % perPage
	return Slot{
		Index:     index,
		Page:      index / perPage,
		Row:       pos / perRow,
		Column:    pos % perRow,
		PosOnPage: pos,
	}
}

// CellOrigin returns the top-left corner of a cell, with y measured up from
// the bottom of the page.
func (g Geometry) CellOrigin(row, column int) (x, y float64) {
	x = g.LeftMargin + float64(column)*(g.LabelWidth+g.HorizontalSpacing)
	y = g.PageHeight - g.TopMargin - float64(row)*(g.LabelHeight+g.VerticalSpacing)
	return x, y
}
