package cardvalidation

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/alovak/cardvalidation/internal/card"
	"github.com/alovak/cardvalidation/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

// App is the main application, it wires the validator into the HTTP server
// and is responsible for starting and stopping it.
type App struct {
	srv       *http.Server
	wg        *sync.WaitGroup
	Addr      string
	logger    *slog.Logger
	config    *Config
	validator card.Checker
}

func NewApp(logger *slog.Logger, config *Config) *App {
	logger = logger.With(slog.String("app", "cardvalidation"))

	if config == nil {
		config = DefaultConfig()
	}

	return &App{
		wg:        &sync.WaitGroup{},
		logger:    logger,
		config:    config,
		validator: card.NewValidator(),
	}
}

// Router builds the HTTP handler with all routes mounted.
func (a *App) Router() chi.Router {
	router := chi.NewRouter()
	router.Use(chimw.Recoverer)
	router.Use(middleware.NewStructuredLogger(a.logger))

	api := NewAPI(a.validator)
	api.AppendRoutes(router)

	router.Get("/-/live", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	// nothing to wait for: the validator has no dependencies
	router.Get("/-/ready", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	if a.config.IsDevelopment() {
		appendDocsRoutes(router)
	}

	return router
}

func (a *App) Start() error {
	a.logger.Info("starting app...", slog.String("env", a.config.Env))

	l, err := net.Listen("tcp", a.config.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listening tcp port: %w", err)
	}

	a.Addr = l.Addr().String()

	a.srv = &http.Server{
		Handler:      a.Router(),
		ReadTimeout:  a.config.ReadTimeout,
		WriteTimeout: a.config.WriteTimeout,
		IdleTimeout:  a.config.IdleTimeout,
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		a.logger.Info("http server started", slog.String("addr", a.Addr))

		if err := a.srv.Serve(l); err != nil {
			if err != http.ErrServerClosed {
				a.logger.Error("starting http server", "err", err)
			}

			a.logger.Info("http server stopped")
		}
	}()

	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down app...")

	if a.srv == nil {
		return nil
	}

	err := a.srv.Shutdown(ctx)
	if err != nil {
		err = fmt.Errorf("shutting down http server: %w", err)
	}

	a.wg.Wait()

	a.logger.Info("app stopped")

	return err
}
