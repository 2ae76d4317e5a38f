// Seeder publishes synthetic order events to the trigger topic so the
// notifiers can be exercised against a local stack.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/watchstore-app/backend/internal/domain"
)

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma-separated kafka brokers")
	topic := flag.String("topic", "order-events", "order events topic")
	eventType := flag.String("event", domain.EventOrderCreated, "order.created or order.updated")
	orderID := flag.String("order", "", "order id (random when empty)")
	userID := flag.String("user", "", "user id (random when empty)")
	status := flag.String("status", domain.StatusProcessing, "order status after the change")
	prev := flag.String("prev", domain.StatusProcessing, "order status before the change (order.updated only)")
	flag.Parse()

	id := *orderID
	if id == "" {
		id = uuid.NewString()
	}
	uid := *userID
	if uid == "" {
		uid = uuid.NewString()
	}

	event := domain.OrderEvent{
		Type:    *eventType,
		OrderID: id,
	}
	switch *eventType {
	case domain.EventOrderCreated:
		event.Order = &domain.Order{Status: *status, UserID: uid}
	case domain.EventOrderUpdated:
		event.Before = &domain.Order{Status: *prev, UserID: uid}
		event.After = &domain.Order{Status: *status, UserID: uid}
	default:
		log.Fatalf("unknown event type %q", *eventType)
	}

	value, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("marshal event: %v", err)
	}

	w := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:    *topic,
		Balancer: &kafka.LeastBytes{},
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(id),
		Value: value,
	}); err != nil {
		log.Fatalf("write message: %v", err)
	}

	log.Printf("published %s order=%s user=%s status=%s", *eventType, id, uid, *status)
}
