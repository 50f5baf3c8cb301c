package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig
	Log        LogConfig
	HTTP       HTTPConfig
	Storage    StorageConfig
	FloorStock FloorStockConfig
	Render     RenderConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	MaxBodySize      int64
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// StorageConfig holds the location of the JSON catalog files
type StorageConfig struct {
	DataDir string
}

// FloorStockConfig holds the floor-stock spreadsheet settings
type FloorStockConfig struct {
	Path             string // .xlsx workbook; empty disables floor-stock overrides
	Sheet            string // empty = first sheet
	PartNumberHeader string
	LocationHeader   string
	CacheEnabled     bool // reuse the parsed table until the file changes
}

// RenderConfig holds PDF rendering settings
type RenderConfig struct {
	Engine          string        // fpdf or chromedp
	Timeout         time.Duration // per render call
	Title           string        // PDF document title
	Creator         string
	Compress        bool
	ChromeRemoteURL string // chromedp only: connect to a running browser
	ChromeNoSandbox bool   // chromedp only: needed inside most containers
}

// Supported render engines
const (
	RenderEngineFPDF     = "fpdf"
	RenderEngineChromedp = "chromedp"
)

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with LABELER_ prefix (e.g., LABELER_STORAGE_DATA_DIR)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file path; an empty path searches
// the default locations.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("/app")
	}

	// Booleans whose default is true cannot use the zero-value fallback
	v.SetDefault("floor_stock.cache_enabled", true)
	v.SetDefault("render.compress", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("LABELER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			MaxBodySize:      v.GetInt64("http.max_body_size"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
		Storage: StorageConfig{
			DataDir: v.GetString("storage.data_dir"),
		},
		FloorStock: FloorStockConfig{
			Path:             v.GetString("floor_stock.path"),
			Sheet:            v.GetString("floor_stock.sheet"),
			PartNumberHeader: v.GetString("floor_stock.part_number_header"),
			LocationHeader:   v.GetString("floor_stock.location_header"),
			CacheEnabled:     v.GetBool("floor_stock.cache_enabled"),
		},
		Render: RenderConfig{
			Engine:          v.GetString("render.engine"),
			Timeout:         v.GetDuration("render.timeout"),
			Title:           v.GetString("render.title"),
			Creator:         v.GetString("render.creator"),
			Compress:        v.GetBool("render.compress"),
			ChromeRemoteURL: v.GetString("render.chrome_remote_url"),
			ChromeNoSandbox: v.GetBool("render.chrome_no_sandbox"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "labeler"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 60 * time.Second // PDF responses can be slow with chromedp
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 10 << 20 // 10MB
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "X-Request-ID"}
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data"
	}
	if cfg.FloorStock.PartNumberHeader == "" {
		cfg.FloorStock.PartNumberHeader = "Part Number"
	}
	if cfg.FloorStock.LocationHeader == "" {
		cfg.FloorStock.LocationHeader = "Location"
	}
	if cfg.Render.Engine == "" {
		cfg.Render.Engine = RenderEngineFPDF
	}
	cfg.Render.Engine = strings.ToLower(strings.TrimSpace(cfg.Render.Engine))
	if cfg.Render.Timeout == 0 {
		cfg.Render.Timeout = 30 * time.Second
	}
	if cfg.Render.Title == "" {
		cfg.Render.Title = "Labels"
	}
	if cfg.Render.Creator == "" {
		cfg.Render.Creator = cfg.App.Name
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Render.Engine {
	case RenderEngineFPDF, RenderEngineChromedp:
	default:
		return fmt.Errorf("render.engine must be %q or %q, got %q",
			RenderEngineFPDF, RenderEngineChromedp, c.Render.Engine)
	}
	if c.Render.Timeout < 0 {
		return fmt.Errorf("render.timeout must be positive")
	}
	if c.HTTP.MaxBodySize < 0 {
		return fmt.Errorf("http.max_body_size cannot be negative")
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}

	if c.App.Env == "production" {
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	return nil
}

// IsProduction reports whether the app runs with production settings
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
