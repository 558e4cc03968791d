package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"aimlink-backend/internal/app"
	"aimlink-backend/internal/auth"
	"aimlink-backend/internal/config"
	"aimlink-backend/internal/database"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database open")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("database handle")
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatal().Err(err).Msg("database ping")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migrate")
	}
	log.Info().Msg("Database connected")

	// Admin provisioning is out-of-band: seeded from env, never via the API.
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		svc := &auth.Service{DB: db, JWTSecret: cfg.JWTSecret}
		if err := svc.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("admin seed")
		}
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("redis url")
		}
		rdb = redis.NewClient(opts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("redis ping")
		}
		log.Info().Msg("Redis connected")
	}

	fiberApp := app.CreateApp(cfg, db, rdb)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("Shutting down")
		_ = fiberApp.Shutdown()
	}()

	log.Info().Str("port", cfg.Port).Msg("Server running")
	if err := fiberApp.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server listen")
	}

	_ = sqlDB.Close()
	if rdb != nil {
		_ = rdb.Close()
	}
}
