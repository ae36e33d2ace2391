package app

import (
	"context"
	"fmt"

	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/internal/ctxlog"
	"github.com/vk/modforge/internal/fsutil"
	"github.com/vk/modforge/livesync"
)

// Run executes the full lifecycle against the reference engine: open
// every registry (committing all pending declarations), then run the
// data-generation pass into the configured output directory. When a dev
// server is configured the results are published afterwards; publish
// failures are logged and never fail the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.engine.OpenRegistries(ctx); err != nil {
		return fmt.Errorf("registration pass failed: %w", err)
	}
	for _, kind := range engine.StandardKinds() {
		if reg, ok := a.engine.Registry(kind); ok && reg.Len() > 0 {
			a.logger.Info("Registered entries.", "kind", kind, "count", reg.Len())
		}
	}

	if err := a.engine.GatherData(ctx, a.config.OutputDir); err != nil {
		return fmt.Errorf("data generation pass failed: %w", err)
	}
	a.logger.Info("Generated assets written.", "output_dir", a.config.OutputDir)

	if a.config.LivesyncURL != "" {
		a.publish(ctx)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// publish pushes the run's results to the configured dev server.
func (a *App) publish(ctx context.Context) {
	client, err := livesync.Connect(ctx, livesync.Config{
		URL:                a.config.LivesyncURL,
		InsecureSkipVerify: a.config.LivesyncInsecure,
	})
	if err != nil {
		a.logger.Warn("Livesync unavailable, skipping publish.", "error", err)
		return
	}
	defer client.Close()

	for _, kind := range engine.StandardKinds() {
		reg, ok := a.engine.Registry(kind)
		if !ok || reg.Len() == 0 {
			continue
		}
		if err := client.PublishCommit(ctx, kind, reg.IDs()); err != nil {
			a.logger.Warn("Failed to publish commit snapshot.", "kind", kind, "error", err)
		}
	}

	files, err := fsutil.FindFilesByExtension(a.config.OutputDir, ".json")
	if err != nil {
		a.logger.Warn("Failed to enumerate generated assets.", "error", err)
		return
	}
	if err := client.PublishGenerated(ctx, files); err != nil {
		a.logger.Warn("Failed to publish generated asset list.", "error", err)
	}
}
