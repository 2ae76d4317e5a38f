package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	firebase "firebase.google.com/go/v4"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/watchstore-app/backend/internal/application/handler"
	"github.com/watchstore-app/backend/internal/application/notifier"
	"github.com/watchstore-app/backend/internal/auth"
	"github.com/watchstore-app/backend/internal/config"
	"github.com/watchstore-app/backend/internal/httpapi"
	postgres "github.com/watchstore-app/backend/internal/infrastructure/database"
	"github.com/watchstore-app/backend/internal/kafka"
	"github.com/watchstore-app/backend/internal/observability"
	"github.com/watchstore-app/backend/internal/payments"
	"github.com/watchstore-app/backend/internal/push"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool := postgres.Connect(ctx, cfg.DSN())
	defer pool.Close()
	users := postgres.NewUserRepository(pool)

	verifier := auth.NewJWTVerifier(cfg.Auth.Secret, cfg.Auth.Issuer)
	provider := payments.NewStripeProvider(cfg.Stripe.SecretKey)

	// Credentials come from GOOGLE_APPLICATION_CREDENTIALS.
	app, err := firebase.NewApp(ctx, nil)
	if err != nil {
		logger.Fatal("firebase init", zap.Error(err))
	}
	sender, err := push.NewFCMNotifier(ctx, app)
	if err != nil {
		logger.Fatal("fcm init", zap.Error(err))
	}

	metrics := observability.NewInmem(1000)

	svc := notifier.NewService(users, sender, logger, metrics)
	h := handler.NewHandler(svc, logger)

	if err := kafka.EnsureTopic(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic, 3, 1, logger); err != nil {
		logger.Fatal("ensure topic", zap.Error(err))
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		GroupID:  cfg.Kafka.Group,
		Topic:    cfg.Kafka.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	consumer := kafka.NewConsumer(h, reader, logger)
	go consumer.Start(ctx)

	server := httpapi.New(verifier, provider, logger, metrics)
	logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("http server", zap.Error(err))
	}

	logger.Info("server stopped")
}
