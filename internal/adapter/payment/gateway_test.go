package payment

import (
	"context"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/clock"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedGateway_Charge(t *testing.T) {
	g := NewSimulatedGateway(0, clock.New(), logger.NewNop())

	charge, err := g.Charge(context.Background(), ChargeRequest{Amount: "$1,200.00", Method: entity.PaymentMethod{Type: "PayPal"}})
	require.NoError(t, err)

	assert.InDelta(t, 1200.0, charge.Amount, 0.001)
	_, err = ulid.ParseStrict(charge.TransactionID)
	assert.NoError(t, err)
}

func TestSimulatedGateway_RejectsBadAmount(t *testing.T) {
	g := NewSimulatedGateway(0, clock.New(), logger.NewNop())

	for _, amount := range []string{"", "free", "$0", "-5"} {
		_, err := g.Charge(context.Background(), ChargeRequest{Amount: amount})
		assert.ErrorIs(t, err, entity.ErrInvalidInput, amount)
	}
}

func TestSimulatedGateway_HonoursContext(t *testing.T) {
	g := NewSimulatedGateway(time.Minute, clock.New(), logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Charge(ctx, ChargeRequest{Amount: "$10"})

	assert.ErrorIs(t, err, context.Canceled)
}
