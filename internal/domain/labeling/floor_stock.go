package labeling

import "strings"

// FloorStockPrefix is prepended to a location when it replaces a quantity
const FloorStockPrefix = "FS-"

// FloorStockEntry is one row of the floor-stock source
type FloorStockEntry struct {
	PartNumber string
	Location   string
}

// FloorStockTable maps part numbers to floor-stock locations.
// It is immutable once built; the zero value is an empty table.
type FloorStockTable struct {
	locations map[string]string
}

// NewFloorStockTable builds a table from entries in source order.
// Duplicate part numbers resolve to the last location seen.
func NewFloorStockTable(entries []FloorStockEntry) FloorStockTable {
	locations := make(map[string]string, len(entries))
	for _, e := range entries {
		pn := strings.TrimSpace(e.PartNumber)
		if pn == "" {
			continue
		}
		locations[pn] = strings.TrimSpace(e.Location)
	}
	return FloorStockTable{locations: locations}
}

// FloorStockTableFromMap copies m into a new table
func FloorStockTableFromMap(m map[string]string) FloorStockTable {
	entries := make([]FloorStockEntry, 0, len(m))
	for pn, loc := range m {
		entries = append(entries, FloorStockEntry{PartNumber: pn, Location: loc})
	}
	return NewFloorStockTable(entries)
}

// Lookup returns the floor-stock location for a part number
func (t FloorStockTable) Lookup(partNumber string) (string, bool) {
	pn := strings.TrimSpace(partNumber)
	if pn == "" || t.locations == nil {
		return "", false
	}
	loc, ok := t.locations[pn]
	return loc, ok
}

// Len returns the number of part numbers in the table
func (t FloorStockTable) Len() int {
	return len(t.locations)
}

// DisplayQuantity is the quantity text a side shows once floor stock is resolved
type DisplayQuantity struct {
	Value      string
	FloorStock bool
}

// Line returns the rendered quantity line, or "" when nothing is shown
func (q DisplayQuantity) Line() string {
	switch {
	case q.Value == "":
		return ""
	case q.FloorStock:
		return q.Value
	default:
		return "Qty: " + q.Value
	}
}

// ResolveQuantity derives what a side displays as its quantity.
// A floor-stock hit replaces the raw quantity with "FS-<location>"; the side
// itself is never modified. A quantity that already carries the "FS-" prefix
// (saved from an earlier lookup) is also shown verbatim.
func ResolveQuantity(side LabelSide, table FloorStockTable) DisplayQuantity {
	if loc, ok := table.Lookup(side.PartNumber); ok {
		return DisplayQuantity{Value: FloorStockPrefix + loc, FloorStock: true}
	}
	qty := strings.TrimSpace(side.Quantity)
	return DisplayQuantity{Value: qty, FloorStock: strings.HasPrefix(qty, FloorStockPrefix)}
}
