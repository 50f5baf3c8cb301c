package floorstock

import (
	"github.com/erp/labeler/internal/domain/labeling"
	infraconfig "github.com/erp/labeler/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewSource builds the configured floor-stock source. Without a workbook
// path it returns nil and no part is ever treated as floor stock.
func NewSource(cfg infraconfig.FloorStockConfig, logger *zap.Logger) labeling.FloorStockSource {
	if cfg.Path == "" {
		return nil
	}

	excel := NewExcelSource(&ExcelConfig{
		Path:             cfg.Path,
		Sheet:            cfg.Sheet,
		PartNumberHeader: cfg.PartNumberHeader,
		LocationHeader:   cfg.LocationHeader,
		Logger:           logger,
	})
	if !cfg.CacheEnabled {
		return excel
	}
	return NewCachedSource(excel, logger)
}
