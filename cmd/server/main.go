package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	labelingapp "github.com/erp/labeler/internal/application/labeling"
	"github.com/erp/labeler/internal/infrastructure/config"
	"github.com/erp/labeler/internal/infrastructure/floorstock"
	"github.com/erp/labeler/internal/infrastructure/logger"
	"github.com/erp/labeler/internal/infrastructure/persistence"
	"github.com/erp/labeler/internal/infrastructure/printing"
	"github.com/erp/labeler/internal/interfaces/http/handler"
	"github.com/erp/labeler/internal/interfaces/http/middleware"
	"github.com/erp/labeler/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync(log)

	log.Info("Starting label service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		log.Fatal("Failed to create data directory",
			zap.String("data_dir", cfg.Storage.DataDir), zap.Error(err))
	}

	// Catalog stores
	productLineStore := persistence.NewProductLineStore(cfg.Storage.DataDir)
	workstationStore := persistence.NewWorkstationStore(cfg.Storage.DataDir)

	// Floor stock is optional; without a workbook every quantity prints as-is
	floorStock := floorstock.NewSource(cfg.FloorStock, log)
	if floorStock == nil {
		log.Warn("No floor-stock workbook configured, quantities will not be overridden")
	} else {
		log.Info("Floor-stock workbook configured",
			zap.String("path", cfg.FloorStock.Path),
			zap.Bool("cache", cfg.FloorStock.CacheEnabled),
		)
	}

	renderer, err := printing.NewSheetRendererFromConfig(cfg.Render, log)
	if err != nil {
		log.Fatal("Failed to initialize sheet renderer", zap.Error(err))
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Error("Error closing sheet renderer", zap.Error(err))
		}
	}()
	log.Info("Sheet renderer ready", zap.String("engine", cfg.Render.Engine))

	labelService := labelingapp.NewLabelService(
		productLineStore,
		workstationStore,
		floorStock,
		renderer,
		labelingapp.WithRenderTimeout(cfg.Render.Timeout),
		labelingapp.WithLogger(log),
	)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register custom validators and JSON field names for error messages
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	} else if err := engine.SetTrustedProxies(nil); err != nil {
		log.Fatal("Failed to disable trusted proxies", zap.Error(err))
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	// Middleware order matters: request ID first so every log line carries it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(corsCfg))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	labelHandler := handler.NewLabelHandler(labelService)
	catalogHandler := handler.NewCatalogHandler(labelService)
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version, cfg.Render.Engine).
		WithDataDir(cfg.Storage.DataDir)

	engine.GET("/health", systemHandler.Health)

	// The label page of the original tool posts its sheet to the site root
	engine.POST("/", labelHandler.GeneratePDF)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.LabelRoutes(labelHandler)).
		Register(handler.ProductLineRoutes(catalogHandler)).
		Register(handler.WorkstationRoutes(catalogHandler)).
		Register(handler.SystemRoutes(systemHandler))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}
