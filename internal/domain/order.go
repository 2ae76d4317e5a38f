package domain

import "errors"

var ErrNotFound = errors.New("not found")

// Statuses the storefront writes into order documents. Any other value is
// still delivered to the user via the generic fallback message.
const (
	StatusProcessing = "PROCESSING"
	StatusShipped    = "SHIPPED"
	StatusDelivered  = "DELIVERED"
	StatusCancelled  = "CANCELLED"
)

// Order is the snapshot of an order document as carried inside trigger
// events. Orders are created and mutated by the storefront; this service
// only observes them.
type Order struct {
	Status string `json:"status"`
	UserID string `json:"userId"`
}

// User holds the push-routing address for one account. FCMToken is empty
// when the user never registered a device.
type User struct {
	ID       string `json:"id"`
	FCMToken string `json:"fcmToken"`
}
