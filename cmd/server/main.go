package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/iwantdrugsxd/evea-sub002/internal/auth"
	"github.com/iwantdrugsxd/evea-sub002/internal/server"
	"github.com/iwantdrugsxd/evea-sub002/internal/service"
	"github.com/iwantdrugsxd/evea-sub002/internal/storage/sqlite"
	"github.com/iwantdrugsxd/evea-sub002/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logging.Setup()

	dbPath := getEnv("DB_PATH", "./data/planner.db")
	port := getEnv("PORT", "8080")
	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage initialized", "database", dbPath)

	if err := store.Seed(context.Background()); err != nil {
		slog.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}

	planner := service.NewPlannerService(store)
	defer planner.FlushSnapshots()

	authn := auth.NewAuthenticator(store)
	jwtManager := auth.NewJWTManager(jwtSecret, 24*time.Hour)

	srv := server.New(planner, store, authn, jwtManager)

	addr := fmt.Sprintf(":%s", port)
	slog.Info("planner server starting", "address", addr)
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
