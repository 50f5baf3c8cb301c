package printing

import (
	infraconfig "github.com/erp/labeler/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewSheetRendererFromConfig builds the renderer selected by render.engine
func NewSheetRendererFromConfig(cfg infraconfig.RenderConfig, logger *zap.Logger) (SheetRenderer, error) {
	return NewSheetRenderer(cfg.Engine,
		&FPDFConfig{
			Title:    cfg.Title,
			Creator:  cfg.Creator,
			Compress: cfg.Compress,
			Logger:   logger,
		},
		&ChromedpConfig{
			DefaultTimeout: cfg.Timeout,
			RemoteURL:      cfg.ChromeRemoteURL,
			NoSandbox:      cfg.ChromeNoSandbox,
			Title:          cfg.Title,
			Logger:         logger,
		},
	)
}
