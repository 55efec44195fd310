// Package payment simulates the external payment provider: every charge with
// a valid amount succeeds after a fixed latency.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/clock"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/oklog/ulid/v2"
)

type ChargeRequest struct {
	Amount string
	Method entity.PaymentMethod
	Memo   string
}

type Charge struct {
	TransactionID string
	Amount        float64
	ChargedAt     time.Time
}

type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*Charge, error)
}

type simulatedGateway struct {
	latency time.Duration
	clock   clock.Clock
	log     logger.Logger
}

func NewSimulatedGateway(latency time.Duration, clk clock.Clock, log logger.Logger) Gateway {
	return &simulatedGateway{latency: latency, clock: clk, log: log}
}

func (g *simulatedGateway) Charge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	amount, ok := entity.ParsePrice(req.Amount)
	if !ok || amount <= 0 {
		return nil, fmt.Errorf("%w: charge amount %q is not a positive number", entity.ErrInvalidInput, req.Amount)
	}

	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("payment cancelled: %w", ctx.Err())
		case <-timer.C:
		}
	}

	now := g.clock.Now().UTC()
	charge := &Charge{
		TransactionID: ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Amount:        amount,
		ChargedAt:     now,
	}
	g.log.Infof("Charged %.2f to %s (%s), transaction %s", amount, req.Method.Label(), req.Memo, charge.TransactionID)
	return charge, nil
}
