package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"vtable/internal/eventbus"
	"vtable/internal/source"
	"vtable/internal/viewport"
)

// FileName is the config file looked up in the working directory
const FileName = ".vtable.toml"

// Backends a table can be drawn with
const (
	BackendBubbleTea = "bubbletea"
	BackendTcell     = "tcell"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	Version  int              `toml:"version"`
	Viewport ViewportSettings `toml:"viewport"`
	Input    InputSettings    `toml:"input"`
	Source   SourceSettings   `toml:"source"`
	UI       UISettings       `toml:"ui"`
}

// ViewportSettings feed the page-size calculator
type ViewportSettings struct {
	RowHeightPx      float64 `toml:"row_height_px"`
	FallbackPageSize int     `toml:"fallback_page_size"`
	CellHeightPx     float64 `toml:"cell_height_px"` // pixels per terminal line
}

// InputSettings tune how terminal input maps to scroll deltas
type InputSettings struct {
	WheelRows int `toml:"wheel_rows"` // rows per wheel notch
}

// SourceSettings select where rows come from
type SourceSettings struct {
	Rows  int    `toml:"rows"`  // generated row count when DB is empty
	DB    string `toml:"db"`    // SQLite file
	Query string `toml:"query"` // query run against DB
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title    string `toml:"title"`
	Color    string `toml:"color"`
	Backend  string `toml:"backend"`
	ShowHelp bool   `toml:"show_help"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for the given file
func NewConfigService(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

// Load loads the configuration from file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Missing keys keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate rejects values no surface can work with
func (c *Config) Validate() error {
	if c.Viewport.RowHeightPx <= 0 {
		return fmt.Errorf("viewport.row_height_px must be positive, got %v", c.Viewport.RowHeightPx)
	}
	if c.Viewport.CellHeightPx <= 0 {
		return fmt.Errorf("viewport.cell_height_px must be positive, got %v", c.Viewport.CellHeightPx)
	}
	if c.Viewport.FallbackPageSize < 0 {
		return fmt.Errorf("viewport.fallback_page_size must not be negative, got %d", c.Viewport.FallbackPageSize)
	}
	if c.Input.WheelRows < 1 {
		return fmt.Errorf("input.wheel_rows must be at least 1, got %d", c.Input.WheelRows)
	}
	if c.Source.Rows < 0 {
		return fmt.Errorf("source.rows must not be negative, got %d", c.Source.Rows)
	}
	switch c.UI.Backend {
	case BackendBubbleTea, BackendTcell:
	default:
		return fmt.Errorf("ui.backend must be %q or %q, got %q", BackendBubbleTea, BackendTcell, c.UI.Backend)
	}
	switch c.UI.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("ui.color must be auto, always or never, got %q", c.UI.Color)
	}
	return nil
}

// Calculator builds the page-size calculator described by the viewport settings
func (c *Config) Calculator() viewport.Calculator {
	return viewport.NewCalculator(c.Viewport.RowHeightPx, c.Viewport.FallbackPageSize)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Viewport: ViewportSettings{
			RowHeightPx:      viewport.DefaultRowHeightPx,
			FallbackPageSize: viewport.DefaultFallbackPageSize,
			CellHeightPx:     viewport.DefaultRowHeightPx,
		},
		Input: InputSettings{
			WheelRows: 3,
		},
		Source: SourceSettings{
			Rows:  10000,
			Query: source.DefaultQuery,
		},
		UI: UISettings{
			Title:    "vtable",
			Color:    ColorAuto,
			Backend:  BackendBubbleTea,
			ShowHelp: true,
		},
	}
}
