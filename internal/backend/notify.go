package backend

import (
	"context"
	"strconv"
	"time"

	"github.com/PYTHTRADER/e-commerce/internal/models"
	"github.com/PYTHTRADER/e-commerce/internal/util"

	"go.uber.org/zap"
)

// Notifier delivers the order-confirmation message. The pipeline awaits it
// but treats failure as non-fatal to order success.
type Notifier interface {
	NotifyOrderConfirmation(ctx context.Context, email string, order *models.Order) error
}

// EmailSimulator narrates the confirmation e-mail to the log after a
// configurable send delay.
type EmailSimulator struct {
	delay  time.Duration
	logger *zap.Logger
}

// NewEmailSimulator creates the fake mailer.
func NewEmailSimulator(delay time.Duration) *EmailSimulator {
	return &EmailSimulator{
		delay:  delay,
		logger: util.GetLogger().Named("mailer"),
	}
}

func (e *EmailSimulator) NotifyOrderConfirmation(ctx context.Context, email string, order *models.Order) error {
	if err := sleep(ctx, e.delay); err != nil {
		return err
	}

	items := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, item.Name+" ("+item.VariantWeight+") x "+strconv.Itoa(item.Quantity))
	}

	e.logger.Info("Sending order confirmation email",
		zap.String("to", email),
		zap.String("order_id", order.ID),
		zap.String("customer", order.CustomerName),
		zap.Int64("total", order.Total),
		zap.Strings("items", items))
	return nil
}

// MultiNotifier fans one confirmation out to several notifiers. The first
// error is returned after all have been attempted.
type MultiNotifier []Notifier

func (m MultiNotifier) NotifyOrderConfirmation(ctx context.Context, email string, order *models.Order) error {
	var first error
	for _, n := range m {
		if err := n.NotifyOrderConfirmation(ctx, email, order); err != nil && first == nil {
			first = err
		}
	}
	return first
}
