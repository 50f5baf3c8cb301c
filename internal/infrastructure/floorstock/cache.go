package floorstock

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/erp/labeler/internal/domain/labeling"
	"go.uber.org/zap"
)

// CachedSource reuses the last table read from an ExcelSource until the
// workbook's modification time or size changes.
type CachedSource struct {
	inner  *ExcelSource
	logger *zap.Logger

	mu      sync.Mutex
	loaded  bool
	modTime time.Time
	size    int64
	table   labeling.FloorStockTable
}

// NewCachedSource wraps an ExcelSource with a file-stamp cache
func NewCachedSource(inner *ExcelSource, logger *zap.Logger) *CachedSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSource{
		inner:  inner,
		logger: logger,
	}
}

// Table returns the cached table, reloading when the workbook changed
func (c *CachedSource) Table(ctx context.Context) (labeling.FloorStockTable, error) {
	if err := ctx.Err(); err != nil {
		return labeling.FloorStockTable{}, err
	}

	info, err := os.Stat(c.inner.Path())
	if err != nil {
		// Missing workbook: drop the cache so a new file is picked up
		c.mu.Lock()
		c.loaded = false
		c.mu.Unlock()
		return c.inner.Table(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && info.ModTime().Equal(c.modTime) && info.Size() == c.size {
		return c.table, nil
	}

	table, err := c.inner.Table(ctx)
	if err != nil {
		return labeling.FloorStockTable{}, err
	}

	c.table = table
	c.modTime = info.ModTime()
	c.size = info.Size()
	c.loaded = true
	c.logger.Debug("floor stock cache refreshed", zap.Int("parts", table.Len()))
	return table, nil
}

// Ensure CachedSource implements FloorStockSource
var _ labeling.FloorStockSource = (*CachedSource)(nil)
