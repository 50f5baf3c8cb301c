package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	labelingapp "github.com/erp/labeler/internal/application/labeling"
	"github.com/erp/labeler/internal/domain/labeling"
	"github.com/erp/labeler/internal/infrastructure/config"
	"github.com/erp/labeler/internal/infrastructure/floorstock"
	"github.com/erp/labeler/internal/infrastructure/logger"
	"github.com/erp/labeler/internal/infrastructure/persistence"
	"github.com/erp/labeler/internal/infrastructure/printing"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type renderOptions struct {
	configPath     string
	input          string
	workstation    string
	dataDir        string
	output         string
	floorStock     string
	floorStockJSON string
	engine         string
	verbose        bool
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "labelgen",
		Short:        "Render part label sheets to PDF",
		Long:         `labelgen lays out 3in x 1in part labels on landscape US-Letter pages and writes the sheet as a PDF.`,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newRenderCmd())
	return rootCmd
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render label records to a PDF sheet",
		Long: `Render reads label records either from a JSON file ({"labels_data": [...]} or a bare array,
"-" for stdin) or from a workstation saved in the data directory, and writes the PDF sheet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", `JSON file with label records ("-" reads stdin)`)
	f.StringVarP(&opts.workstation, "workstation", "w", "", "Render the labels saved for this workstation")
	f.StringVar(&opts.dataDir, "data-dir", "", "Catalog directory (default: storage.data_dir)")
	f.StringVarP(&opts.output, "output", "o", labelingapp.SheetFilename, "Output PDF path")
	f.StringVar(&opts.floorStock, "floor-stock", "", "Floor-stock workbook (.xlsx)")
	f.StringVar(&opts.floorStockJSON, "floor-stock-json", "", `Floor-stock table as a {"part": "location"} JSON object`)
	f.StringVar(&opts.engine, "engine", "", "Render engine: fpdf or chromedp (default: render.engine)")
	f.StringVarP(&opts.configPath, "config", "c", "", "Config file (default: ./config.toml if present)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	cmd.MarkFlagsMutuallyExclusive("input", "workstation")
	cmd.MarkFlagsOneRequired("input", "workstation")
	cmd.MarkFlagsMutuallyExclusive("floor-stock", "floor-stock-json")

	return cmd
}

func runRender(ctx context.Context, opts *renderOptions, stdin io.Reader, out io.Writer) error {
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return err
	}
	if opts.engine != "" {
		cfg.Render.Engine = opts.engine
	}
	if opts.dataDir != "" {
		cfg.Storage.DataDir = opts.dataDir
	}
	if opts.floorStock != "" {
		cfg.FloorStock.Path = opts.floorStock
	}
	// A single render never benefits from the modification-time cache
	cfg.FloorStock.CacheEnabled = false

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	log, err := logger.New(&logger.Config{Level: level, Format: "console", Output: "stderr"})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync(log)

	workstations := persistence.NewWorkstationStore(cfg.Storage.DataDir)

	records, err := loadRecords(ctx, opts, stdin, workstations)
	if err != nil {
		return err
	}

	var source labeling.FloorStockSource
	if opts.floorStockJSON != "" {
		static, err := floorstock.LoadJSONSource(opts.floorStockJSON)
		if err != nil {
			return err
		}
		source = static
	} else {
		source = floorstock.NewSource(cfg.FloorStock, log)
	}

	renderer, err := printing.NewSheetRendererFromConfig(cfg.Render, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Warn("failed to close renderer", zap.Error(err))
		}
	}()

	svc := labelingapp.NewLabelService(
		persistence.NewProductLineStore(cfg.Storage.DataDir),
		workstations,
		source,
		renderer,
		labelingapp.WithRenderTimeout(cfg.Render.Timeout),
		labelingapp.WithLogger(log),
	)

	result, err := svc.GenerateSheet(ctx, labelingapp.GenerateSheetRequest{Labels: records})
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.output, result.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	_, err = fmt.Fprintf(out, "wrote %s: %d labels on %d page(s) with %s in %s\n",
		opts.output, result.LabelCount, result.PageCount, cfg.Render.Engine, result.RenderDuration)
	return err
}

// loadRecords reads the records to print from the input file or a saved workstation
func loadRecords(ctx context.Context, opts *renderOptions, stdin io.Reader, store labeling.WorkstationRepository) ([]labeling.LabelRecord, error) {
	if opts.workstation != "" {
		saved, err := store.Load(ctx)
		if err != nil {
			return nil, err
		}
		for _, ws := range saved {
			if ws.Name == opts.workstation {
				return ws.Labels, nil
			}
		}
		return nil, fmt.Errorf("workstation %q not found", opts.workstation)
	}

	var (
		data []byte
		err  error
	)
	if opts.input == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(opts.input)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return decodeRecords(data)
}

var errEmptyInput = errors.New("input is empty")

// decodeRecords accepts the request body the HTTP API takes or a bare array
func decodeRecords(data []byte) ([]labeling.LabelRecord, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errEmptyInput
	}

	if data[0] == '[' {
		var records []labeling.LabelRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse input: %w", err)
		}
		return records, nil
	}

	var req labelingapp.GenerateSheetRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	return req.Labels, nil
}
