package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/handlers"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/messaging"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/platform/bootstrap"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/platform/config"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/repositories/database/pgsql"
	"github.com/JoelOntuDeveloper/banco-microservicios/pkg/database"
)

// @title Customer Service API
// @version 1.0
// @description Customer registration and maintenance.

// @host localhost:8081
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig(config.CustomerService)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := bootstrap.NewLogger(cfg.LogLevel).With(slog.String("service", "customer"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	edge, closeEdge, err := bootstrap.NewEdge(cfg, logger)
	if err != nil {
		logger.Error("Failed to set up HTTP edge", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeEdge()

	var publisher portssvc.CustomerEventPublisher
	if cfg.HasKafka() {
		eventPublisher := messaging.NewCustomerEventPublisher(messaging.NewKafkaWriter(cfg.KafkaBrokers), cfg.KafkaCustomerTopic)
		defer func() {
			if err := eventPublisher.Close(); err != nil {
				logger.Error("Error closing kafka writer", slog.String("error", err.Error()))
			}
		}()
		publisher = eventPublisher
	} else {
		logger.Warn("Kafka not configured, customer created events will not be published")
	}

	container := services.NewCustomerServiceContainer(pgsql.NewRepositoryProvider(dbPool), publisher, edge.Metrics)

	r, err := bootstrap.NewEngine(cfg, logger)
	if err != nil {
		logger.Error("Failed to create HTTP engine", slog.String("error", err.Error()))
		os.Exit(1)
	}
	handlers.RegisterCustomerServiceRoutes(r, cfg, container, edge)

	if err := bootstrap.Serve(ctx, r, cfg.Port, logger); err != nil {
		logger.Error("Server error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Customer service stopped")
}
