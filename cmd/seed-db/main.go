package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"smarthome-data/internal/config"
	"smarthome-data/internal/database"
	"smarthome-data/internal/logger"
	"smarthome-data/internal/repository"
	"smarthome-data/internal/seed"
)

func main() {
	extend := flag.Bool("extend", false, "extend the existing hierarchy instead of creating a new one (not implemented yet)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format, "seed-db")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	store := repository.New(db, repository.WithLogger(zlog))

	zlog.Debug("running the DB seed command", zap.Bool("extend", *extend))
	if err := seed.Run(context.Background(), store, zlog, *extend); err != nil {
		zlog.Fatal("seeding failed", zap.Error(err))
	}
	zlog.Info("seeding completed")
}
