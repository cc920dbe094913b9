package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tinyplayerss/hyteserve/internal/config"
	"github.com/tinyplayerss/hyteserve/internal/prefs"
	"github.com/tinyplayerss/hyteserve/internal/source"
	"github.com/tinyplayerss/hyteserve/internal/state"
	"github.com/tinyplayerss/hyteserve/internal/ui"
)

// Options configure the HyteServe application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/hyteserve/prefs.toml
	DataRoot   string // overrides the configured catalog root
	Source     string // catalog to open at startup; overrides the saved one
	Card       string // card slug to open at startup (permalink restore)
	AuxEvery   int    // seconds between auxiliary feed refreshes; zero uses default
}

// Run boots the HyteServe TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger := newLogger(cfg)
	defer logger.Sync() //nolint:errcheck

	root := cfg.DataRoot
	if strings.TrimSpace(opts.DataRoot) != "" {
		root = opts.DataRoot
	}
	client, err := source.NewClient(root)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	store := &state.Store{}

	startSource := source.Default()
	if src, ok := source.ByName(opts.Source); ok {
		startSource = src
	} else if src, ok := source.ByName(userPrefs.Source); ok && opts.Source == "" {
		startSource = src
	}

	// Populate the store before the UI starts so the first frame has data.
	items, loadErr := client.FetchCatalog(ctx, startSource)
	store.SetCatalog(startSource, items, loadErr)
	if loadErr != nil {
		logger.Warn("initial catalog load failed",
			zap.String("source", startSource.Name), zap.Error(loadErr))
	} else {
		logger.Info("catalog loaded",
			zap.String("source", startSource.Name), zap.Int("items", len(items)))
	}

	interval := defaultAuxInterval
	if opts.AuxEvery > 0 {
		interval = time.Duration(opts.AuxEvery) * time.Second
	}
	StartAuxRefresher(ctx, store, client, interval, logger)

	if client.Local() {
		if err := StartWatcher(ctx, store, client, logger); err != nil {
			logger.Warn("data directory watch unavailable", zap.Error(err))
		}
	}

	uiOpts := ui.Options{
		Context:     ctx,
		Client:      client,
		Store:       store,
		Config:      &cfg,
		Logger:      logger,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
		StartSource: startSource,
		StartCard:   opts.Card,
	}
	return ui.Run(uiOpts)
}
