package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"grain-api/internal/cache"
	"grain-api/internal/config"
	"grain-api/internal/database"
	"grain-api/internal/logger"
	"grain-api/internal/repository"
	"grain-api/internal/routes"
)

func main() {
	cfg := config.LoadConfig()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	for _, note := range cfg.Notes {
		log.Info(note)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *mongo.Database
	if cfg.StoreBackend == "mongo" || cfg.StoreBackend == "" {
		client, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("❌ MongoDB unavailable, running without database", zap.Error(err))
		} else {
			defer database.Disconnect(context.Background(), client)
			db = client.Database(cfg.DatabaseName)
		}
	}

	store, err := repository.New(cfg.StoreBackend, db)
	if err != nil {
		log.Fatal("invalid store backend", zap.Error(err))
	}

	listCache := cache.New(cfg.ListCacheTTL)
	go listCache.Run(ctx)

	router := routes.NewRouter(routes.Dependencies{
		Store:          store,
		Cache:          listCache,
		Logger:         log,
		DatabaseURLSet: cfg.DatabaseURLSet(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("🚀 Server running", zap.String("port", cfg.Port), zap.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
