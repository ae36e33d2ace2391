package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/internal/ctxlog"
	"github.com/vk/modforge/pack"
	"github.com/vk/modforge/registrar"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	pack      *pack.Pack
	registrar *registrar.Registrar
	engine    *engine.Engine
}

// NewApp is the constructor for the main application. It loads the
// content pack and captures every declaration, but fires no lifecycle
// signals yet; that happens in Run. A failure to load the pack is a
// fatal startup error and panics, to be recovered at the entrypoint.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	p, err := pack.NewLoader().Load(ctx, cfg.PackPath)
	if err != nil {
		panic(fmt.Errorf("failed to load content pack: %w", err))
	}

	bus := engine.NewBus()
	r := registrar.Create(p.Descriptor.Namespace, bus)
	if err := p.DeclareAll(ctx, r); err != nil {
		panic(fmt.Errorf("failed to declare pack content: %w", err))
	}
	logger.Debug("All pack declarations captured.", "objects", p.Len())

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		pack:      p,
		registrar: r,
		engine:    engine.NewEngine(bus),
	}
}

// Registrar returns the application's registrar. Primarily for testing.
func (a *App) Registrar() *registrar.Registrar {
	return a.registrar
}

// Engine returns the in-memory reference engine. Primarily for testing.
func (a *App) Engine() *engine.Engine {
	return a.engine
}
