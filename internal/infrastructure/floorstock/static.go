package floorstock

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/erp/labeler/internal/domain/labeling"
)

// StaticSource serves a fixed table
type StaticSource struct {
	table labeling.FloorStockTable
}

// NewStaticSource creates a source over a part number -> location map
func NewStaticSource(locations map[string]string) *StaticSource {
	return &StaticSource{table: labeling.FloorStockTableFromMap(locations)}
}

// LoadJSONSource reads a {"part": "location"} JSON object from disk
func LoadJSONSource(path string) (*StaticSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read floor stock file: %w", err)
	}
	var locations map[string]string
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("failed to parse floor stock file: %w", err)
	}
	return NewStaticSource(locations), nil
}

// Table returns the fixed table
func (s *StaticSource) Table(ctx context.Context) (labeling.FloorStockTable, error) {
	if err := ctx.Err(); err != nil {
		return labeling.FloorStockTable{}, err
	}
	return s.table, nil
}

// Ensure StaticSource implements FloorStockSource
var _ labeling.FloorStockSource = (*StaticSource)(nil)
