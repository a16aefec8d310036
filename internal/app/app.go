package app

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/nexus/internal/config"
	"github.com/five82/nexus/internal/insight"
	"github.com/five82/nexus/internal/prefs"
	"github.com/five82/nexus/internal/source"
	"github.com/five82/nexus/internal/state"
	"github.com/five82/nexus/internal/ui"
)

// Options configure the Nexus application.
type Options struct {
	ConfigPath   string
	PrefsPath    string        // empty uses $XDG_CONFIG_HOME/nexus/prefs.toml
	Debug        bool          // write debug logs to the configured log file
	InsightDelay time.Duration // zero uses the configured delay
}

// Run boots the Nexus TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.InsightDelay > 0 {
		cfg.InsightDelay = opts.InsightDelay
	}

	logger, closeLog, err := newLogger(cfg.LogFile, opts.Debug)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	uiOpts := newUIOptions(ctx, cfg, time.Now())
	uiOpts.Logger = logger
	uiOpts.ThemeName = userPrefs.Theme
	uiOpts.PrefsPath = opts.PrefsPath

	logger.Info("starting nexus",
		"workspace", cfg.Workspace,
		"insight_delay", cfg.InsightDelay,
		"theme", userPrefs.Theme,
	)
	err = ui.Run(uiOpts)
	logger.Info("nexus stopped", "error", err)
	return err
}

// newUIOptions seeds the in-memory store and wires the mock services to it.
func newUIOptions(ctx context.Context, cfg config.Config, now time.Time) ui.Options {
	store := state.NewStore(source.SeedFiles(now), source.SeedConnections())
	ids := source.NewIDSequence(nil, store.MaxFileID())

	return ui.Options{
		Context:      ctx,
		Store:        store,
		Uploader:     source.NewMockUploader(ids, nil, uint64(now.UnixNano())),
		Connector:    source.NewMockConnector(ids),
		Insights:     insight.Mock{Delay: cfg.InsightDelay},
		Workspace:    cfg.Workspace,
		UserInitials: cfg.UserInitials,
	}
}
