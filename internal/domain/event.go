package domain

const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
)

// OrderEvent is the JSON envelope published to the order-events topic by
// the document store bridge. Created events carry the new snapshot in
// Order; updated events carry Before and After.
type OrderEvent struct {
	Type    string `json:"type"`
	OrderID string `json:"orderId"`
	Order   *Order `json:"order,omitempty"`
	Before  *Order `json:"before,omitempty"`
	After   *Order `json:"after,omitempty"`
}
