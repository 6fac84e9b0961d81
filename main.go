package main

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
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/blogem/api-hits/config"
	"github.com/blogem/api-hits/controllers"
	"github.com/blogem/api-hits/database"
	"github.com/blogem/api-hits/events"
	"github.com/blogem/api-hits/middleware"
	"github.com/blogem/api-hits/repositories"
	"github.com/blogem/api-hits/services"
)

func main() {
	cfg := config.Load()
	cfg.BindFlags(pflag.CommandLine)
	pflag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, log, pflag.Arg(0))
	stop()

	if err != nil {
		log.Error("exiting", zap.Error(err))
	}
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run dispatches the command line verb; an empty verb means serve
func run(ctx context.Context, cfg *config.Config, log *zap.Logger, command string) error {
	switch command {
	case "", "serve":
		return serve(ctx, cfg, log)
	case "tail":
		return tail(ctx, cfg, log)
	default:
		return fmt.Errorf("unknown command %q (expected serve or tail)", command)
	}
}

// serve runs the HTTP API until ctx is cancelled
func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	// Database
	db, err := database.Initialize(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// Events
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RedisURL != "" {
		rdb, err := events.NewRedisClient(ctx, cfg.RedisURL, log)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer rdb.Close()
		publisher = events.NewRedisPublisher(rdb, log)
	}
	emitter := events.NewEmitter(publisher, cfg.EventsChannel, log)

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, db, emitter, log)
	ctrl := controllers.NewControllers(srvs, log)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           setupRouter(ctrl, srvs, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting API server",
			zap.String("addr", srv.Addr),
			zap.String("dialect", string(db.Dialect)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, srvs *services.Services, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.ObserveHits(srvs.Hits, log))

	r.NotFound(controllers.NotFound)
	r.MethodNotAllowed(controllers.MethodNotAllowed)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "api-hits"}`)
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/hits", func(r chi.Router) {
			r.Get("/stats", ctrl.Stats.Index)
			r.Get("/", ctrl.Hits.List)
			r.Post("/", ctrl.Hits.Create)
			r.Get("/{id:[0-9]+}", ctrl.Hits.Get)
			r.Put("/{id:[0-9]+}", ctrl.Hits.Update)
			r.Delete("/{id:[0-9]+}", ctrl.Hits.Delete)
		})

		r.Get("/audit_logs", ctrl.Audit.Index)
	})

	return r
}

// newLogger builds a production or development zap logger at the configured level
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
