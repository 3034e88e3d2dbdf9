package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/handlers"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/messaging"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/platform/bootstrap"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/platform/config"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/repositories/database/pgsql"
	"github.com/JoelOntuDeveloper/banco-microservicios/pkg/database"
)

// @title Account Service API
// @version 1.0
// @description Accounts, movements and statements.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig(config.AccountService)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := bootstrap.NewLogger(cfg.LogLevel).With(slog.String("service", "account"))

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

	container := services.NewAccountServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), edge.Metrics)

	var wg sync.WaitGroup
	if cfg.HasKafka() {
		reader := messaging.NewKafkaReader(cfg.KafkaBrokers, cfg.KafkaConsumerGroup, cfg.KafkaCustomerTopic)
		dlqWriter := messaging.NewKafkaWriter(cfg.KafkaBrokers)
		consumer := messaging.NewCustomerCreatedConsumer(reader, container.Provisioning, logger,
			messaging.WithDeadLetterQueue(dlqWriter, cfg.KafkaDLQTopic))

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Run(ctx); err != nil {
				logger.Error("Customer created consumer stopped with error", slog.String("error", err.Error()))
			}
		}()
		defer func() {
			wg.Wait()
			if err := consumer.Close(); err != nil {
				logger.Error("Error closing kafka reader", slog.String("error", err.Error()))
			}
			if err := dlqWriter.Close(); err != nil {
				logger.Error("Error closing kafka DLQ writer", slog.String("error", err.Error()))
			}
		}()
	} else {
		logger.Warn("Kafka not configured, default accounts will not be provisioned")
	}

	r, err := bootstrap.NewEngine(cfg, logger)
	if err != nil {
		logger.Error("Failed to create HTTP engine", slog.String("error", err.Error()))
		os.Exit(1)
	}
	handlers.RegisterAccountServiceRoutes(r, cfg, container, edge)

	if err := bootstrap.Serve(ctx, r, cfg.Port, logger); err != nil {
		logger.Error("Server error", slog.String("error", err.Error()))
		// the deferred wait needs the consumer unblocked
		stop()
		return
	}
	logger.Info("Account service stopped")
}
