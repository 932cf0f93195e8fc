package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ibeloyar/bcproxy/internal/config"
	"github.com/ibeloyar/bcproxy/internal/model"
	"github.com/ibeloyar/bcproxy/internal/repository/bigcommerce"
	"github.com/ibeloyar/bcproxy/internal/repository/pg"
	"github.com/ibeloyar/bcproxy/internal/service"
	"github.com/ibeloyar/bcproxy/pgk/auth"
	"github.com/ibeloyar/bcproxy/pgk/logger"
	"github.com/ibeloyar/bcproxy/pgk/retryablehttp"
	"go.uber.org/zap"

	httpController "github.com/ibeloyar/bcproxy/internal/controller/http"
)

const shutdownTimeout = 5 * time.Second

// os.Interrupt == SIGINT
var shutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

type App struct {
	Router *chi.Mux

	service *service.Service
	journal *pg.Repository
	lg      *zap.SugaredLogger
}

// New - собирает зависимости и роутер. Журнал подключается только при заданном DatabaseURI.
func New(cfg config.Config, lg *zap.SugaredLogger) (*App, error) {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	client := retryablehttp.NewRetryableClient(retryablehttp.RetryConfig{
		MaxRetries: cfg.UpstreamMaxRetries,
		Timeout:    cfg.UpstreamTimeout,
	})
	upstream := bigcommerce.New(client, cfg.APIBaseURL, cfg.StoreHash, cfg.AdminToken)

	a := &App{lg: lg}

	var (
		journal service.JournalRepo
		pinger  httpController.Pinger
	)
	if cfg.DatabaseURI != "" {
		storage, err := pg.New(cfg.DatabaseURI)
		if err != nil {
			return nil, fmt.Errorf("init journal: %w", err)
		}

		a.journal = storage
		journal = storage
		pinger = storage
	}

	s := service.New(upstream, journal, cfg.MetafieldPermissionSet, lg)
	a.service = s
	handlers := httpController.New(s, pinger, lg, cfg.MetaCacheMaxAge)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)
	router.Use(httpController.Preflight)
	router.Use(httpController.CORS())

	var apiMiddlewares []func(http.Handler) http.Handler
	if cfg.JWTSecret != "" {
		apiMiddlewares = append(apiMiddlewares, auth.AuthBearerMiddlewareInit[model.TokenInfo](cfg.JWTSecret))
	}

	a.Router = httpController.InitRoutes(router, handlers, apiMiddlewares...)

	return a, nil
}

// Close - дожидается фоновых записей в журнал и закрывает БД
func (a *App) Close() error {
	if a.journal == nil {
		return nil
	}

	a.service.Wait()

	return a.journal.Shutdown()
}

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	a, err := New(cfg, lg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: a.Router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	lg.Infof("starting server on %s (store %s)", cfg.RunAddress, cfg.StoreHash)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-signalCtx.Done():
	case err := <-serverErr:
		a.Close()
		return fmt.Errorf("server ListenAndServe error: %w", err)
	}

	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	if err := a.Close(); err != nil {
		return fmt.Errorf("shutdown (journal) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
