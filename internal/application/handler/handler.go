package handler

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/watchstore-app/backend/internal/domain"
)

//go:generate mockgen -source internal/application/handler/handler.go -destination=internal/application/handler/handler_mock_test.go -package=handler

type Notifier interface {
	OrderCreated(ctx context.Context, orderID string, order *domain.Order)
	OrderUpdated(ctx context.Context, orderID string, before, after *domain.Order)
}

// Handler decodes trigger events from the order topic and dispatches them
// to the notifier. It always returns nil: a message this service cannot
// decode, or a notification that cannot be delivered, must not hold back
// the partition offset.
type Handler struct {
	notifier Notifier
	logger   *zap.Logger
}

func NewHandler(notifier Notifier, logger *zap.Logger) *Handler {
	return &Handler{
		notifier: notifier,
		logger:   logger,
	}
}

// Handle — called by the consumer to process a single message.
// The consumer commits the offset itself after Handle returns nil.
func (h *Handler) Handle(ctx context.Context, message kafkago.Message) error {
	var event domain.OrderEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.logger.Error("bad event json, skipping",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return nil
	}
	if event.OrderID == "" {
		h.logger.Error("event without orderId, skipping",
			zap.String("type", event.Type),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return nil
	}

	switch event.Type {
	case domain.EventOrderCreated:
		if event.Order == nil {
			h.logger.Error("created event without order snapshot, skipping",
				zap.String("order_id", event.OrderID),
			)
			return nil
		}
		h.notifier.OrderCreated(ctx, event.OrderID, event.Order)

	case domain.EventOrderUpdated:
		if event.Before == nil || event.After == nil {
			h.logger.Error("updated event without before/after snapshots, skipping",
				zap.String("order_id", event.OrderID),
			)
			return nil
		}
		h.notifier.OrderUpdated(ctx, event.OrderID, event.Before, event.After)

	default:
		h.logger.Warn("unknown event type, skipping",
			zap.String("type", event.Type),
			zap.String("order_id", event.OrderID),
		)
	}

	return nil
}
