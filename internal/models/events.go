package models

import "time"

// Event types
const (
	EventTypeOrderPlaced = "ORDER_PLACED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderPlacedEvent is published after an order has been persisted to the
// ledger. Downstream consumers (mailers, dashboards) key off it.
type OrderPlacedEvent struct {
	BaseEvent
	OrderID      string     `json:"order_id"`
	CustomerName string     `json:"customer_name"`
	Email        string     `json:"email"`
	Total        int64      `json:"total"`
	Items        []CartItem `json:"items"`
}
