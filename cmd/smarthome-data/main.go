package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"smarthome-data/internal/config"
	"smarthome-data/internal/database"
	"smarthome-data/internal/graph"
	httpapi "smarthome-data/internal/http"
	"smarthome-data/internal/logger"
	"smarthome-data/internal/repository"
	"smarthome-data/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format, "smarthome-data")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	metrics := repository.NewMetrics(prometheus.DefaultRegisterer)
	store := repository.New(db,
		repository.WithMetrics(metrics),
		repository.WithLogger(zlog),
	)

	schema, err := graph.NewSchema(store, zlog)
	if err != nil {
		zlog.Fatal("failed to build schema", zap.Error(err))
	}

	router := httpapi.NewRouter(zlog)
	router.RegisterGraphQLRoutes(schema)
	router.RegisterOpsRoutes(db)

	srv := service.NewServer(cfg.HTTP.Addr, router, zlog)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zlog.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		zlog.Error("server exited", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Stop(shutdownCtx)
}
