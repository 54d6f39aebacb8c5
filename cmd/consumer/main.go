// The consumer binary runs the store-appending event consumer on its own,
// for deployments where the API publishes to Redis Streams and ingestion is
// scaled separately. Start the server with --consume-events=false in that
// setup.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pagepulse/pagepulse/internal/container"
	"github.com/pagepulse/pagepulse/internal/messaging"
	"github.com/samber/do"
	"go.uber.org/zap"
)

func main() {
	opts := &container.Options{
		EventsTransport: "redis",
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		DataFile:        getEnv("DATA_FILE", "data/stats.json"),
		PostgresURL:     os.Getenv("POSTGRES_URL"),
		LogFormat:       getEnv("LOG_FORMAT", "console"),
	}

	injector := do.New()
	do.ProvideValue(injector, opts)
	container.LoggerPackage(injector)
	container.RedisPackage(injector)
	container.StorePackage(injector)
	container.MessagingPackage(injector)
	container.ConsumerGroupPackage(injector)

	logger := do.MustInvoke[*zap.Logger](injector)
	group := do.MustInvoke[*messaging.ConsumerGroup](injector)

	ctx, cancel := context.WithCancel(context.Background())

	if err := group.Start(ctx); err != nil {
		logger.Fatal("failed to start consumer group", zap.Error(err))
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")
	cancel()

	if err := injector.Shutdown(); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	logger.Info("shutdown complete")
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return defaultValue
}
