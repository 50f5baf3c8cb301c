package labeling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFloorStockTable_LastWriteWins(t *testing.T) {
	table := NewFloorStockTable([]FloorStockEntry{
		{PartNumber: "ABC123", Location: "A1"},
		{PartNumber: " XYZ ", Location: " B2 "},
		{PartNumber: "ABC123", Location: "C3"},
		{PartNumber: "", Location: "ignored"},
	})

	assert.Equal(t, 2, table.Len())

	loc, ok := table.Lookup("ABC123")
	assert.True(t, ok)
	assert.Equal(t, "C3", loc)

	loc, ok = table.Lookup("XYZ")
	assert.True(t, ok)
	assert.Equal(t, "B2", loc)

	_, ok = table.Lookup("")
	assert.False(t, ok)
}

func TestFloorStockTable_ZeroValue(t *testing.T) {
	var table FloorStockTable
	_, ok := table.Lookup("ABC123")
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
}

func TestResolveQuantity(t *testing.T) {
	table := FloorStockTableFromMap(map[string]string{"ABC123": "A1"})

	tests := []struct {
		name     string
		side     LabelSide
		wantLine string
		wantFS   bool
	}{
		{"floor stock overrides quantity", LabelSide{PartNumber: "ABC123", Quantity: "25"}, "FS-A1", true},
		{"floor stock without quantity", LabelSide{PartNumber: "ABC123"}, "FS-A1", true},
		{"plain quantity", LabelSide{PartNumber: "P-1", Quantity: "25"}, "Qty: 25", false},
		{"empty quantity", LabelSide{PartNumber: "P-1"}, "", false},
		{"previously saved floor stock value", LabelSide{PartNumber: "P-1", Quantity: "FS-B7"}, "FS-B7", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side := tt.side
			q := ResolveQuantity(side, table)
			assert.Equal(t, tt.wantLine, q.Line())
			assert.Equal(t, tt.wantFS, q.FloorStock)
			assert.Equal(t, tt.side, side)
		})
	}
}
