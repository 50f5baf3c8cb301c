package labeling

import "context"

// ProductLineRepository persists the product line list
type ProductLineRepository interface {
	// Save replaces the stored list. Names are unique; the last entry for a
	// name wins.
	Save(ctx context.Context, lines []ProductLine) error
	// Load returns the stored list, empty when nothing was saved yet
	Load(ctx context.Context) ([]ProductLine, error)
}

// WorkstationRepository persists workstations and their labels
type WorkstationRepository interface {
	// Save merges workstations into the store keyed by name. Labels are
	// de-duplicated by left part number before storing.
	Save(ctx context.Context, workstations []Workstation) error
	// Load returns every stored workstation
	Load(ctx context.Context) ([]Workstation, error)
	// LoadByProductLine returns workstations whose product line matches exactly
	LoadByProductLine(ctx context.Context, productLine string) ([]Workstation, error)
}

// FloorStockSource supplies the floor-stock table for a render call.
// An unavailable source yields an empty table rather than an error.
type FloorStockSource interface {
	Table(ctx context.Context) (FloorStockTable, error)
}
