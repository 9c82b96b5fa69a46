package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/km-arc/go-beans/framework/config"
	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/framework/inspect"
	"github.com/km-arc/go-beans/framework/providers"
)

// Version is reported in the startup log line.
const Version = "0.1.0"

const shutdownTimeout = 5 * time.Second

// Application ties configuration, logging and the provider registry together
// and owns the container they produce.
//
//	application := app.New(cfg, log)
//	application.Register(&UserModule{})
//	if err := application.Run(ctx); err != nil { ... }
type Application struct {
	Config    *config.Config
	Log       zerolog.Logger
	Providers *container.ProviderRegistry
}

// New creates an application whose container is built from the scanner
// catalog under cfg.Container.Scan, plus whatever providers are registered
// before Boot.
func New(cfg *config.Config, log zerolog.Logger) *Application {
	registry := container.NewProviderRegistry(containerOptions(cfg, log)...)

	// Framework providers go first so scanned components keep their order.
	_ = registry.Register(&providers.ScannerProvider{Prefixes: cfg.Container.Scan})
	_ = registry.Register(&providers.SummaryProvider{Log: log})

	return &Application{
		Config:    cfg,
		Log:       log,
		Providers: registry,
	}
}

func containerOptions(cfg *config.Config, log zerolog.Logger) []container.Option {
	opts := []container.Option{container.WithLogger(log.With().Str("component", "container").Logger())}
	if !cfg.Container.ImplicitWiring {
		opts = append(opts, container.WithInjectableFilter(container.InjectTag))
	}
	if cfg.Container.Strict {
		opts = append(opts, container.WithStrictResolution())
	}
	return opts
}

// Register adds a ServiceProvider. It fails once the application is booted.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot builds the container and boots every provider. Later calls return the
// same container.
func (a *Application) Boot() (*container.Container, error) {
	if a.Providers.Booted() {
		return a.Providers.Container(), nil
	}
	c, err := a.Providers.Boot()
	if err != nil {
		return nil, fmt.Errorf("boot %s: %w", a.Config.App.Name, err)
	}
	return c, nil
}

// Container returns the booted container, or nil before Boot.
func (a *Application) Container() *container.Container { return a.Providers.Container() }

// Handler returns the inspection API for the booted container.
func (a *Application) Handler() http.Handler {
	return inspect.NewHandler(a.Container(), a.Log.With().Str("component", "inspect").Logger())
}

// Run boots the application if needed and blocks until ctx is done. When the
// inspection API is enabled it is served on cfg.Inspect.Addr and shut down
// gracefully once ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if _, err := a.Boot(); err != nil {
		return err
	}

	a.Log.Info().
		Str("env", a.Config.App.Env).
		Str("version", Version).
		Bool("inspect", a.Config.Inspect.Enabled).
		Msg("application started")

	if !a.Config.Inspect.Enabled {
		<-ctx.Done()
		a.Log.Info().Msg("application stopped")
		return nil
	}

	ln, err := net.Listen("tcp", a.Config.Inspect.Addr)
	if err != nil {
		return fmt.Errorf("inspect listen %s: %w", a.Config.Inspect.Addr, err)
	}

	srv := &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info().Str("addr", ln.Addr().String()).Msg("inspect api listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("inspect serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	a.Log.Info().Err(err).Msg("application stopped")
	return err
}

// ── Environment ──────────────────────────────────────────────────────────────

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config.App.Debug }
