package floorstock

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/erp/labeler/internal/domain/labeling"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	DefaultPartNumberHeader = "Part Number"
	DefaultLocationHeader   = "Location"

	// headerSearchRows bounds how far down the header row may appear
	headerSearchRows = 10
)

// ErrColumnsNotFound indicates the sheet has no row carrying both headers
var ErrColumnsNotFound = errors.New("floor stock columns not found")

// integerFloat matches numbers exported from a numeric column, e.g. "12345.0"
var integerFloat = regexp.MustCompile(`^\d+\.0+$`)

// ExcelConfig contains configuration for the spreadsheet source
type ExcelConfig struct {
	// Path is the .xlsx workbook holding the floor-stock list
	Path string
	// Sheet to read; empty means the first sheet
	Sheet string
	// PartNumberHeader is the title of the part number column
	PartNumberHeader string
	// LocationHeader is the title of the location column
	LocationHeader string
	// Logger for warnings
	Logger *zap.Logger
}

// ExcelSource reads the floor-stock table from a workbook on every call
type ExcelSource struct {
	config *ExcelConfig
	logger *zap.Logger
}

// NewExcelSource creates a spreadsheet-backed floor-stock source
func NewExcelSource(config *ExcelConfig) *ExcelSource {
	if config == nil {
		config = &ExcelConfig{}
	}
	if config.PartNumberHeader == "" {
		config.PartNumberHeader = DefaultPartNumberHeader
	}
	if config.LocationHeader == "" {
		config.LocationHeader = DefaultLocationHeader
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ExcelSource{
		config: config,
		logger: logger,
	}
}

// Path returns the workbook path
func (s *ExcelSource) Path() string {
	return s.config.Path
}

// Table reads the workbook. An unreadable or malformed workbook resolves to
// an empty table; only context cancellation is returned as an error.
func (s *ExcelSource) Table(ctx context.Context) (labeling.FloorStockTable, error) {
	if err := ctx.Err(); err != nil {
		return labeling.FloorStockTable{}, err
	}

	entries, err := s.ReadEntries()
	if err != nil {
		s.logger.Warn("floor stock source unavailable, using empty table",
			zap.String("path", s.config.Path),
			zap.Error(err))
		return labeling.FloorStockTable{}, nil
	}

	table := labeling.NewFloorStockTable(entries)
	s.logger.Debug("floor stock table loaded",
		zap.String("path", s.config.Path),
		zap.Int("rows", len(entries)),
		zap.Int("parts", table.Len()))
	return table, nil
}

// ReadEntries returns the workbook rows in sheet order
func (s *ExcelSource) ReadEntries() ([]labeling.FloorStockEntry, error) {
	if s.config.Path == "" {
		return nil, errors.New("floor stock path not configured")
	}

	f, err := excelize.OpenFile(s.config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := s.config.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	headerRow, partCol, locCol := s.findColumns(rows)
	if headerRow < 0 {
		return nil, fmt.Errorf("%w in sheet %q (want %q and %q)",
			ErrColumnsNotFound, sheet, s.config.PartNumberHeader, s.config.LocationHeader)
	}

	var entries []labeling.FloorStockEntry
	for _, row := range rows[headerRow+1:] {
		pn := normalizePartNumber(cellAt(row, partCol))
		if pn == "" {
			continue
		}
		entries = append(entries, labeling.FloorStockEntry{
			PartNumber: pn,
			Location:   strings.TrimSpace(cellAt(row, locCol)),
		})
	}
	return entries, nil
}

// findColumns locates the header row and the two column indexes
func (s *ExcelSource) findColumns(rows [][]string) (row, partCol, locCol int) {
	wantPart := strings.ToLower(strings.TrimSpace(s.config.PartNumberHeader))
	wantLoc := strings.ToLower(strings.TrimSpace(s.config.LocationHeader))

	for r := 0; r < len(rows) && r < headerSearchRows; r++ {
		partCol, locCol = -1, -1
		for c, v := range rows[r] {
			switch strings.ToLower(strings.TrimSpace(v)) {
			case wantPart:
				if partCol < 0 {
					partCol = c
				}
			case wantLoc:
				if locCol < 0 {
					locCol = c
				}
			}
		}
		if partCol >= 0 && locCol >= 0 {
			return r, partCol, locCol
		}
	}
	return -1, -1, -1
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

// normalizePartNumber coerces a cell to the part-number string form
func normalizePartNumber(v string) string {
	v = strings.TrimSpace(v)
	if integerFloat.MatchString(v) {
		v = v[:strings.IndexByte(v, '.')]
	}
	return v
}

// Ensure ExcelSource implements FloorStockSource
var _ labeling.FloorStockSource = (*ExcelSource)(nil)
