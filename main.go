package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"vtable/internal/config"
	"vtable/internal/eventbus"
	"vtable/internal/source"
	"vtable/internal/tcellui"
	"vtable/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		rows       int
		dbPath     string
		query      string
		backend    string
		color      string
		logPath    string
		exportPath string
	)
	flag.StringVar(&configPath, "config", config.FileName, "Path to the config file")
	flag.IntVar(&rows, "rows", 0, "Number of generated rows")
	flag.StringVar(&dbPath, "db", "", "SQLite file to read rows from")
	flag.StringVar(&query, "query", "", "Query run against -db")
	flag.StringVar(&backend, "backend", "", "Surface to draw with: bubbletea or tcell")
	flag.StringVar(&color, "color", "", "Color mode: auto, always or never")
	flag.StringVar(&logPath, "log", "vtable.log", "Log file")
	flag.StringVar(&exportPath, "export", "", "Write the rows to this SQLite file and exit")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()

	absConfig, err := filepath.Abs(configPath)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}
	configSvc := config.NewConfigServiceWithBus(absConfig, bus)

	// A first run writes the defaults; tell the user where they went
	var notice string
	stopNotice := bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			notice = "wrote default config to " + event.Path
			log.Printf("Config saved to %s", event.Path)
		}
	})
	cfg, err := loadOrCreateConfig(configSvc, absConfig)
	stopNotice()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the file, but only the ones actually given
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Source.Rows = rows
		case "db":
			cfg.Source.DB = dbPath
		case "query":
			cfg.Source.Query = query
		case "backend":
			cfg.UI.Backend = backend
		case "color":
			cfg.UI.Color = color
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid settings: %v\n", err)
		os.Exit(1)
	}
	applyColorMode(cfg.UI.Color)

	records, err := loadRecords(ctx, cfg)
	if err != nil {
		log.Printf("Failed to load rows: %v", err)
		fmt.Printf("Error loading rows: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Loaded %d rows with columns %v", records.Len(), records.Columns())

	if exportPath != "" {
		if err := source.ExportSQLite(ctx, exportPath, records); err != nil {
			fmt.Printf("Error exporting rows: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d rows to %s\n", records.Len(), exportPath)
		return
	}

	switch cfg.UI.Backend {
	case config.BackendTcell:
		err = runTcell(ctx, cfg, bus, records)
	default:
		err = runBubbleTea(ctx, cfg, bus, records, notice)
	}
	if err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the config file or writes the defaults when it does not exist yet
func loadOrCreateConfig(configSvc config.ConfigService, path string) (*config.Config, error) {
	_, statErr := os.Stat(path)
	cfg, err := configSvc.Load()
	if err != nil {
		return nil, err
	}
	if !errors.Is(statErr, os.ErrNotExist) {
		log.Printf("Loaded config from %s", path)
		return cfg, nil
	}

	log.Printf("Creating new config at %s", path)
	if err := configSvc.Save(cfg); err != nil {
		// Not fatal, the defaults still work
		log.Printf("Failed to save config: %v", err)
	}
	return cfg, nil
}

func applyColorMode(mode string) {
	switch mode {
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

func loadRecords(ctx context.Context, cfg *config.Config) (source.RowSource, error) {
	if cfg.Source.DB != "" {
		return source.LoadSQLite(ctx, cfg.Source.DB, cfg.Source.Query)
	}
	return source.Generate(cfg.Source.Rows, time.Now()), nil
}

func runBubbleTea(ctx context.Context, cfg *config.Config, bus eventbus.EventBus, records source.RowSource, notice string) error {
	// Size the first frame before the first WindowSizeMsg arrives
	lines := 0
	if _, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		lines = h
	}

	model := ui.NewModel(cfg, bus, records, lines)
	defer model.Close()
	model.SetNotice(notice)
	if os.Getenv("VTABLE_E2E_TEST") == "1" {
		model.SetReadyMarker(true)
	}

	log.Printf("Starting UI...")
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	model.SetProgram(p)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func runTcell(ctx context.Context, cfg *config.Config, bus eventbus.EventBus, records source.RowSource) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	log.Printf("Starting tcell surface...")
	return tcellui.New(screen, cfg, bus, records).Run(ctx)
}
