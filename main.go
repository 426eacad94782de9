package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pockets-budget/backend/internal/cache"
	"github.com/pockets-budget/backend/internal/config"
	v1 "github.com/pockets-budget/backend/internal/controllers/v1"
	"github.com/pockets-budget/backend/internal/models"
	"github.com/pockets-budget/backend/internal/router"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	path := config.DefaultPath
	if p, ok := os.LookupEnv("POCKETS_CONFIG"); ok {
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	err = cfg.Validate()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	url, err := cfg.URL()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = connectDatabase(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	cache.Store = setupCache(cfg)
	v1.AdviceRules = cfg.Rules

	r, teardown, err := router.Config(url, router.Options{
		AllowOrigins: cfg.AllowOrigins(),
		EnablePprof:  cfg.EnablePprof,
	})
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(r.Group("/"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("listen: %s\n", err)
		}
	}()
	log.Info().Int("port", cfg.Port).Msg("Backend startup complete")

	// Wait for interrupt signal to gracefully shut down the server with
	// a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Backend exited")
}

// connectDatabase connects to postgres if a database host is configured
// and to the sqlite database file otherwise.
func connectDatabase(cfg *config.Config) error {
	if cfg.UsePostgres() {
		log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("Database")
		return models.ConnectPostgres(cfg.PostgresDSN())
	}

	// Create the data directory
	err := os.MkdirAll(filepath.Dir(cfg.Database.Path), os.ModePerm)
	if err != nil {
		return err
	}

	log.Info().Str("path", cfg.Database.Path).Msg("Database")
	return models.Connect(cfg.Database.Path)
}

// setupCache uses redis when it is configured and reachable. Otherwise,
// results are cached in memory.
func setupCache(cfg *config.Config) cache.Cache {
	if cfg.Cache.RedisAddr == "" {
		log.Info().Dur("ttl", cfg.Cache.TTL).Msg("Using in-memory cache")
		return cache.NewMemory(cfg.Cache.TTL)
	}

	r := cache.NewRedis(&redis.Options{Addr: cfg.Cache.RedisAddr}, cfg.Cache.TTL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Cache.RedisAddr).Msg("Redis is not reachable, using in-memory cache")
		_ = r.Close()
		return cache.NewMemory(cfg.Cache.TTL)
	}

	log.Info().Str("addr", cfg.Cache.RedisAddr).Dur("ttl", cfg.Cache.TTL).Msg("Using redis cache")
	return r
}
