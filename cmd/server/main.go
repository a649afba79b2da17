package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fundforge/platform/internal/db"
	"fundforge/platform/internal/logging"
	"fundforge/platform/internal/routes"
	"fundforge/platform/internal/workers"
)

// @title Fundforge Platform API
// @version 1.0
// @description Account preferences, reward ordering, and reminder dispatch for the crowdfunding platform.
// @host localhost:8080
// @BasePath /
func main() {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("platform starting up", "environment", appEnv)

	// Connect to DB with sqlx
	if err := db.InitPostgres(); err != nil {
		logging.Fatal("failed to connect to postgres (sqlx)", "error", err.Error())
	}
	logging.Info("connected to postgres (sqlx)")

	// Connect to DB with GORM
	if _, err := db.InitPostgresORM(db.DSN()); err != nil {
		logging.Fatal("failed to connect to postgres (gorm)", "error", err.Error())
	}
	logging.Info("connected to postgres (gorm)")

	upSince := time.Now()

	router, deps, metricsReg := routes.RegisterRoutes(upSince)

	// Reminder dispatch runs alongside the HTTP server.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := workers.NewReminderDispatchWorker(
		deps.Repo.Reminders,
		deps.Services.MailQueue,
		metricsReg,
		time.Minute,
		500,
	)
	go worker.Start(ctx)

	// Metrics endpoint sits outside the chi router.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	logging.Info("server starting", "port", 8080, "environment", appEnv)
	log.Fatal(http.ListenAndServe(":8080", mux))
}
