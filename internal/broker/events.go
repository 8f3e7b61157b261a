package broker

import (
	"context"
	"time"

	"github.com/PYTHTRADER/e-commerce/internal/models"

	"github.com/google/uuid"
)

// EventPublisher handles publishing domain events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishOrderPlaced publishes the OrderPlaced event keyed by order ID.
func (ep *EventPublisher) PublishOrderPlaced(ctx context.Context, event *models.OrderPlacedEvent) error {
	return ep.producer.PublishEvent(ctx, event.OrderID, event)
}

// Notifier adapts the event publisher to the notification port: the
// confirmation is delivered as an ORDER_PLACED event for downstream mailers.
type Notifier struct {
	publisher *EventPublisher
}

// NewNotifier creates a Kafka-backed order-confirmation notifier.
func NewNotifier(publisher *EventPublisher) *Notifier {
	return &Notifier{publisher: publisher}
}

func (n *Notifier) NotifyOrderConfirmation(ctx context.Context, email string, order *models.Order) error {
	event := &models.OrderPlacedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderPlaced,
			Timestamp: time.Now(),
		},
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		Email:        email,
		Total:        order.Total,
		Items:        models.CloneItems(order.Items),
	}
	return n.publisher.PublishOrderPlaced(ctx, event)
}
