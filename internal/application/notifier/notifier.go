package notifier

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/watchstore-app/backend/internal/domain"
	"github.com/watchstore-app/backend/internal/observability"
	"github.com/watchstore-app/backend/internal/push"
)

//go:generate mockgen -source internal/application/notifier/notifier.go -destination=internal/application/notifier/notifier_mock_test.go -package=notifier

const (
	statusTitle       = "Order Status Update"
	confirmationTitle = "Order Confirmed! 🎉"

	kindStatus       = "status"
	kindConfirmation = "confirmation"
)

var statusMessages = map[string]string{
	domain.StatusProcessing: "Your order is being processed!",
	domain.StatusShipped:    "Exciting news! Your order has been shipped.",
	domain.StatusDelivered:  "Your watch has been delivered. Enjoy!",
	domain.StatusCancelled:  "Your order has been cancelled.",
}

type UserSource interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

type Sender interface {
	Send(ctx context.Context, n push.Notification) error
}

// Service reacts to order document changes with at most one push
// notification per event. Delivery is best effort: every failure on this
// path is logged and absorbed so the triggering write is never blocked.
type Service struct {
	users   UserSource
	sender  Sender
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewService(users UserSource, sender Sender, logger *zap.Logger, metrics observability.Metrics) *Service {
	return &Service{
		users:   users,
		sender:  sender,
		logger:  logger,
		metrics: metrics,
	}
}

// OrderUpdated handles an after-update trigger. Updates that do not change
// the status field are ignored.
func (s *Service) OrderUpdated(ctx context.Context, orderID string, before, after *domain.Order) {
	if after.Status == before.Status {
		return
	}
	s.notify(ctx, kindStatus, orderID, after.UserID, statusTitle, statusBody(after.Status))
}

// OrderCreated handles an after-create trigger with a confirmation push.
func (s *Service) OrderCreated(ctx context.Context, orderID string, order *domain.Order) {
	s.notify(ctx, kindConfirmation, orderID, order.UserID, confirmationTitle, confirmationBody(orderID))
}

func (s *Service) notify(ctx context.Context, kind, orderID, userID, title, body string) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debug("user not found, skipping notification",
				zap.String("order_id", orderID),
				zap.String("user_id", userID),
			)
			return
		}
		s.logger.Error("user lookup failed",
			zap.String("order_id", orderID),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		s.metrics.ObserveNotification(kind, false)
		return
	}
	if user.FCMToken == "" {
		s.logger.Debug("user has no push token, skipping notification",
			zap.String("order_id", orderID),
			zap.String("user_id", userID),
		)
		return
	}

	err = s.sender.Send(ctx, push.Notification{
		Token: user.FCMToken,
		Title: title,
		Body:  body,
		Data: map[string]string{
			"orderId":      orderID,
			"click_action": push.ClickAction,
		},
	})
	if err != nil {
		s.logger.Error("notification send failed",
			zap.String("order_id", orderID),
			zap.String("kind", kind),
			zap.Error(err),
		)
		s.metrics.ObserveNotification(kind, false)
		return
	}

	s.metrics.ObserveNotification(kind, true)
	s.logger.Info("notification sent",
		zap.String("order_id", orderID),
		zap.String("kind", kind),
	)
}

func statusBody(status string) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return fmt.Sprintf("Your order status is now %s", status)
}

func confirmationBody(orderID string) string {
	short := orderID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("Thank you for your purchase! Your order #%s is confirmed.", short)
}
