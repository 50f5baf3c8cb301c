package labeling

import "unicode/utf8"

// Font families and sizes used on a label
const (
	FontFamily = "Helvetica"

	FontSizeLarge  = 13.0
	FontSizeMedium = 11.0
	FontSizeSmall  = 9.0
	FontSizeDetail = 10.0
)

// FontStyle selects regular or bold glyphs
type FontStyle string

const (
	FontRegular FontStyle = ""
	FontBold    FontStyle = "B"
)

// Font is the face a text op is drawn with
type Font struct {
	Family string    `json:"family"`
	Style  FontStyle `json:"style"`
	Size   float64   `json:"size"`
}

// RectMode selects outline or filled rectangles
type RectMode string

const (
	RectOutline RectMode = "outline"
	RectFilled  RectMode = "filled"
)

// TextOp draws a single left-aligned line. Y is the baseline, measured up
// from the bottom of the page.
type TextOp struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Text  string  `json:"text"`
	Font  Font    `json:"font"`
	Color Color   `json:"color"`
	Side  Side    `json:"side"`
}

// RectOp draws a rectangle whose lower-left corner is (X, Y)
type RectOp struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Mode   RectMode `json:"mode"`
	Color  Color    `json:"color"`
}

// Cell is one laid-out label
type Cell struct {
	Slot    Slot     `json:"slot"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Outline RectOp   `json:"outline"`
	Texts   []TextOp `json:"texts"`
	Fills   []RectOp `json:"fills"`
}

// Page holds the cells placed on one sheet of paper
type Page struct {
	Index int    `json:"index"`
	Cells []Cell `json:"cells"`
}

// Sheet is the complete, immutable layout of one render call
type Sheet struct {
	Geometry Geometry `json:"geometry"`
	Pages    []Page   `json:"pages"`
}

// PageCount returns the number of pages that carry at least one cell
func (s Sheet) PageCount() int {
	return len(s.Pages)
}

// CellCount returns the number of labels on the sheet
func (s Sheet) CellCount() int {
	n := 0
	for _, p := range s.Pages {
		n += len(p.Cells)
	}
	return n
}

// Offsets within a cell, in inches
const (
	leftSideOffset  = 0.2
	rightSideOffset = 1.6
	sideTopOffset   = 0.3
	anchorRaise     = 0.13

	altLineDrop   = 0.19
	qtyLineDrop   = 0.36
	frameLineDrop = 0.53
	wsLineDrop    = 0.71

	swatchWidth  = 0.6
	swatchHeight = 0.12
	swatchInset  = 0.06
)

// PartNumberFontSize picks the bold size for a part number by its length
func PartNumberFontSize(partNumber string) float64 {
	n := utf8.RuneCountInString(partNumber)
	switch {
	case n > 14:
		return FontSizeSmall
	case n > 12:
		return FontSizeMedium
	default:
		return FontSizeLarge
	}
}

// Layout places the eligible records on the standard geometry
func Layout(records []LabelRecord, floorStock FloorStockTable) Sheet {
	return StandardGeometry().Layout(records, floorStock)
}

// Layout places the eligible records in order, left to right and top to
// bottom, starting a new page every LabelsPerPage cells.
func (g Geometry) Layout(records []LabelRecord, floorStock FloorStockTable) Sheet {
	sheet := Sheet{Geometry: g, Pages: []Page{}}
	for i, rec := range EligibleRecords(records) {
		slot := g.SlotAt(i)
		if slot.PosOnPage == 0 {
			sheet.Pages = append(sheet.Pages, Page{Index: slot.Page})
		}
		page := &sheet.Pages[len(sheet.Pages)-1]
		page.Cells = append(page.Cells, g.layoutCell(slot, rec, floorStock))
	}
	return sheet
}

func (g Geometry) layoutCell(slot Slot, rec LabelRecord, floorStock FloorStockTable) Cell {
	x, y := g.CellOrigin(slot.Row, slot.Column)
	cell := Cell{
		Slot: slot,
		X:    x,
		Y:    y,
		Outline: RectOp{
			X:      x,
			Y:      y - g.LabelHeight,
			Width:  g.LabelWidth,
			Height: g.LabelHeight,
			Mode:   RectOutline,
			Color:  Black,
		},
	}

	sideY := y - Inches(sideTopOffset)
	g.layoutSide(&cell, SideLeft, rec.Left, x+Inches(leftSideOffset), sideY, floorStock)
	g.layoutSide(&cell, SideRight, rec.Right, x+Inches(rightSideOffset), sideY, floorStock)
	return cell
}

func (g Geometry) layoutSide(cell *Cell, which Side, side LabelSide, x, y float64, floorStock FloorStockTable) {
	if !side.HasPartNumber() {
		return
	}
	anchor := y + Inches(anchorRaise)
	line := func(text string, drop float64, font Font) {
		cell.Texts = append(cell.Texts, TextOp{
			X:     x,
			Y:     anchor - Inches(drop),
			Text:  text,
			Font:  font,
			Color: Black,
			Side:  which,
		})
	}

	line(side.PartNumber, 0, Font{FontFamily, FontBold, PartNumberFontSize(side.PartNumber)})

	if side.AltPartNumber != "" {
		line(side.AltPartNumber, altLineDrop, Font{FontFamily, FontBold, PartNumberFontSize(side.AltPartNumber)})
	}

	if qty := ResolveQuantity(side, floorStock).Line(); qty != "" {
		line(qty, qtyLineDrop, Font{FontFamily, FontRegular, FontSizeDetail})
	}

	if side.AFrameLocation != "" {
		line(side.AFrameLocation, frameLineDrop, Font{FontFamily, FontRegular, FontSizeDetail})
	}

	if which != SideLeft {
		return
	}

	if side.WorkstationName != "" {
		line("WS-"+side.WorkstationName, wsLineDrop, Font{FontFamily, FontBold, FontSizeDetail})
	}

	cell.Fills = append(cell.Fills, RectOp{
		X:      cell.X + (g.LabelWidth-Inches(swatchWidth))/2,
		Y:      cell.Y - g.LabelHeight + Inches(swatchInset),
		Width:  Inches(swatchWidth),
		Height: Inches(swatchHeight),
		Mode:   RectFilled,
		Color:  ParseColor(side.WorkstationColor),
	})
}
