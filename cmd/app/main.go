package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"pedidos/cmd"
	httpadapter "pedidos/internal/adapters/in/http"
	"pedidos/internal/adapters/out/broadcast"
	"pedidos/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer app.Close()

	jobManager := jobs.NewJobManager(app.Broadcaster(), configs.HeartbeatSchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	subscriberBuffer, err := strconv.Atoi(envOrDefault("SUBSCRIBER_BUFFER", strconv.Itoa(broadcast.DefaultBufferSize)))
	if err != nil {
		log.Fatalf("Invalid SUBSCRIBER_BUFFER: %v", err)
	}
	logLevel, err := cmd.ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("%v", err)
	}

	config := cmd.Config{
		HTTPPort:               envOrDefault("HTTP_PORT", "3000"),
		StorageDriver:          envOrDefault("STORAGE_DRIVER", cmd.StoragePostgres),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 envOrDefault("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              envOrDefault("DB_SSLMODE", "disable"),
		OrdersFile:             os.Getenv("ORDERS_FILE"),
		SubscriberBuffer:       subscriberBuffer,
		HeartbeatSchedule:      envOrDefault("HEARTBEAT_SCHEDULE", jobs.DefaultHeartbeatSchedule),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		CORSAllowedOrigins:     cmd.ParseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
		LogLevel:               logLevel,
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrdersStatusCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateListOrdersQueryHandler(),
		app.Registry(),
		logger,
	)

	e, err := httpadapter.NewRouter(server, httpadapter.RouterConfig{AllowedOrigins: configs.CORSAllowedOrigins}, logger)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		logger.Info("HTTP server listening", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	// Open event streams only end when their request context is cancelled.
	app.Registry().Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
