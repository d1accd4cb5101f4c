package main

import (
	"context"
	"database/sql"
	"errors"
	"migros-delivery/internal/adapters/cache"
	"migros-delivery/internal/adapters/repositories"
	"migros-delivery/internal/api"
	"migros-delivery/internal/config"
	"migros-delivery/internal/platform/db"
	"migros-delivery/internal/platform/logging"
	"migros-delivery/internal/ports"
	"migros-delivery/internal/render"
	"migros-delivery/internal/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, optional Postgres and Redis) behind
// ports and starts the HTTP server.
func main() {
	loaded := config.LoadDotEnv()

	bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.FromEnv()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("init logger")
	}
	if !loaded {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	sqlite, err := db.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open sqlite")
	}
	defer sqlite.Close()

	// Initialize schema and seed points from the input file on startup.
	if err := initAndSeed(ctx, sqlite, cfg.InputPath); err != nil {
		log.Fatal().Err(err).Msg("init and seed")
	}

	var runs ports.RunStore = repositories.NewSqliteRunStore(sqlite)
	if cfg.DatabaseURL != "" {
		pg, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("open postgres")
		}
		defer pg.Close()

		if err := repositories.InitSQLSchema(ctx, pg); err != nil {
			log.Fatal().Err(err).Msg("init postgres schema")
		}
		runs = repositories.NewSQLRunStore(pg)
		log.Info().Msg("run history stored in postgres")
	}

	var planCache ports.PlanCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable; plan cache disabled")
		} else {
			planCache = cache.NewRedisPlanCache(client, cfg.CacheTTL)
		}
	}

	points := repositories.NewSqlitePointRepository(sqlite)
	planner := services.NewPlanner(points, planCache, runs)
	router := api.NewRouter(log, points, planner, runs, render.Options{Scale: cfg.Scale, Size: cfg.CanvasSize})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", srv.Addr).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("serve")
	}
}

func initAndSeed(ctx context.Context, db *sql.DB, inputPath string) error {
	if err := repositories.InitSchema(ctx, db); err != nil {
		return err
	}

	n, err := repositories.SeedFromFile(ctx, db, inputPath)
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Str("input", inputPath).Int("points", n).Msg("points seeded")
	return nil
}
