package app

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/dshills/piecewise/internal/config"
	"github.com/dshills/piecewise/internal/renderer/backend"
)

// Options configures the application. Non-zero fields override the
// loaded configuration.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// Files are files to open on startup.
	Files []string

	// LogLevel sets the logging verbosity.
	LogLevel string

	// LogFile is where logs are written.
	LogFile string

	// TabWidth overrides editor.tabWidth.
	TabWidth int
}

func (o Options) override(cfg *config.Config) {
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	if o.LogFile != "" {
		cfg.Logging.File = o.LogFile
	}
	if o.TabWidth > 0 {
		cfg.Editor.TabWidth = o.TabWidth
	}
}

type reload struct {
	cfg config.Config
	err error
}

// Application ties the session to a terminal backend and runs the
// event loop.
type Application struct {
	opts    Options
	cfg     config.Config
	log     *zap.Logger
	session *Session
	backend backend.Backend

	width, height int

	pasting bool
	paste   strings.Builder

	reloads chan reload
	running atomic.Bool
}

// New loads configuration, opens the requested files and returns an
// application ready for SetBackend and Run. A file that does not exist
// yet opens as an empty window.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, NewOperationError("load config", opts.ConfigPath, err)
	}
	opts.override(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, NewOperationError("validate config", opts.ConfigPath, err)
	}

	log, err := NewLogger(LoggerConfig{Level: cfg.Logging.Level, File: cfg.Logging.File})
	if err != nil {
		return nil, err
	}

	app := &Application{
		opts:    opts,
		cfg:     cfg,
		log:     log,
		session: NewSession(log),
		reloads: make(chan reload, 4),
	}

	for _, path := range opts.Files {
		_, err := app.session.OpenFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			_, err = app.session.OpenString(filepath.Base(path), "")
		}
		if err != nil {
			_ = log.Sync()
			return nil, err
		}
	}
	if app.session.Count() == 0 {
		if _, err := app.session.OpenString("[scratch]", ""); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Session returns the window registry.
func (app *Application) Session() *Session {
	return app.session
}

// Config returns the configuration in effect.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Logger returns the application logger.
func (app *Application) Logger() *zap.Logger {
	return app.log
}

// Run starts the application main loop. It returns ErrQuit when the user
// quits and nil when ctx is cancelled.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)
	defer func() { _ = app.log.Sync() }()

	if err := app.backend.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	defer app.backend.Shutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Wake PollEvent on cancellation.
	go func() {
		<-ctx.Done()
		app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}()

	if app.opts.ConfigPath != "" {
		if err := config.Watch(ctx, app.opts.ConfigPath, app.onReload); err != nil {
			app.log.Warn("config watch disabled", zap.Error(err))
		}
	}

	app.width, app.height = app.backend.Size()
	app.log.Info("editor started",
		zap.Int("windows", app.session.Count()),
		zap.Int("width", app.width),
		zap.Int("height", app.height),
	)

	for {
		app.draw()
		ev := app.backend.PollEvent()
		if ctx.Err() != nil {
			return nil
		}
		if err := app.handleEvent(ev); err != nil {
			app.log.Info("editor stopped", zap.Error(err))
			return err
		}
	}
}

// onReload runs on the config watcher goroutine. It queues the result and
// wakes the event loop, which applies it.
func (app *Application) onReload(cfg config.Config, err error) {
	select {
	case app.reloads <- reload{cfg: cfg, err: err}:
	default:
		app.log.Warn("config reload dropped")
	}
	app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
}

// applyReloads applies queued configuration changes. Logging settings
// are fixed at startup.
func (app *Application) applyReloads() {
	for {
		select {
		case r := <-app.reloads:
			if r.err != nil {
				app.log.Warn("config reload failed", zap.Error(r.err))
				continue
			}
			app.opts.override(&r.cfg)
			r.cfg.Logging = app.cfg.Logging
			if err := r.cfg.Validate(); err != nil {
				app.log.Warn("reloaded config invalid", zap.Error(err))
				continue
			}
			app.cfg = r.cfg
			app.log.Info("config reloaded",
				zap.Int("tabWidth", r.cfg.Editor.TabWidth),
				zap.Int("scrollOff", r.cfg.Editor.ScrollOff),
			)
		default:
			return
		}
	}
}
