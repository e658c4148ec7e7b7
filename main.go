package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hnsearch/internal/config"
	"hnsearch/internal/eventbus"
	"hnsearch/internal/history"
	"hnsearch/internal/hn"
	"hnsearch/internal/ui"
)

func main() {
	// Parse command line arguments
	var initialTerm string
	var endpoint string
	var verbose bool
	flag.StringVar(&initialTerm, "q", "", "Initial search term (overrides the persisted one)")
	flag.StringVar(&endpoint, "endpoint", "", "Search endpoint (defaults to the public Algolia API)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if initialTerm == "" && flag.NArg() > 0 {
		initialTerm = strings.Join(flag.Args(), " ")
	}

	// The TUI owns the terminal, so logs go to a file
	logger := newLogger(verbose)
	defer func() { _ = logger.Sync() }()

	// Create event bus
	bus := eventbus.New(logger)
	defer bus.Close()

	// Load configuration; a broken or missing config file is not fatal
	store := config.NewStoreWithBus(bus)
	cfg, err := store.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", zap.Error(err))
		cfg = config.DefaultConfig()
	}
	if initialTerm != "" {
		cfg.SearchTerm = initialTerm
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}

	// Persistence is fire-and-forget: saves happen off the update loop,
	// debounced across keystrokes, and failures only log.
	var cfgMu sync.Mutex
	saveConfig := func() {
		cfgMu.Lock()
		defer cfgMu.Unlock()
		if err := store.Save(cfg); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		}
	}

	saver := ui.NewDebouncer(400 * time.Millisecond)
	persistTerm := func(term string) {
		saver.Debounce(func() {
			cfgMu.Lock()
			cfg.SearchTerm = term
			cfgMu.Unlock()
			saveConfig()
		})
	}

	// Track recent searches and persist them as they change
	hist := history.NewManager(bus, cfg.Recent, config.MaxRecentSearches)
	bus.Subscribe(eventbus.EventHistoryChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.HistoryChangedEvent); ok {
			cfgMu.Lock()
			cfg.Recent = event.Recent
			cfgMu.Unlock()
			saveConfig()
		}
	})

	bus.Subscribe(eventbus.EventFetchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FetchFailedEvent); ok {
			logger.Warn("fetch failed",
				zap.String("query", event.Query),
				zap.Error(event.Err))
		}
	})

	client := hn.NewClient(cfg.Endpoint, cfg.UISettings.HitsPerPage, logger)

	uiModel := ui.NewModel(bus, cfg, client, hist, persistTerm)

	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	// Forward history changes into the program so the footer repaints
	bus.Subscribe(eventbus.EventHistoryChanged, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		logger.Debug("config saved")
	})

	if _, err := p.Run(); err != nil {
		logger.Error("error running program", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	// Run any pending debounced save before exit so the last typed term lands
	saver.Flush()
}

// newLogger builds a file-backed zap logger. Logging failure is not worth
// refusing to start over; fall back to a nop logger.
func newLogger(verbose bool) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"hnsearch.log"}
	zcfg.ErrorOutputPaths = []string{"hnsearch.log"}
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
