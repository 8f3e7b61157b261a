// Package backend holds the simulated collaborators the checkout pipeline
// talks to. Each is a port with a fake implementation, swappable for a real
// one behind the same interface.
package backend

import (
	"context"
	"time"

	"github.com/PYTHTRADER/e-commerce/internal/util"

	"go.uber.org/zap"
)

// PaymentGateway is the seam for real gateway integration. A decline is
// reported as an error and aborts checkout before persistence.
type PaymentGateway interface {
	Charge(ctx context.Context, amount int64, method string) error
}

// SimulatedGateway approves every charge after a configurable round-trip
// delay, narrating like the backend it stands in for.
type SimulatedGateway struct {
	delay  time.Duration
	logger *zap.Logger
}

// NewSimulatedGateway creates the fake gateway.
func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{
		delay:  delay,
		logger: util.GetLogger().Named("payments"),
	}
}

func (g *SimulatedGateway) Charge(ctx context.Context, amount int64, method string) error {
	start := time.Now()
	defer func() {
		util.PaymentProcessingLatency.Observe(time.Since(start).Seconds())
	}()

	g.logger.Info("Processing payment",
		zap.Int64("amount", amount),
		zap.String("method", method))

	if err := sleep(ctx, g.delay); err != nil {
		return err
	}
	return nil
}

// sleep waits for d, honoring ctx cancellation between pipeline steps.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
