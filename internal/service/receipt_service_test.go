package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, to []string, subject, bodyHTML, bodyText string) error {
	args := m.Called(ctx, to, subject, bodyHTML, bodyText)
	return args.Error(0)
}

func sampleReceipt() entity.Receipt {
	return entity.Receipt{
		TransactionID:  "01HXTX",
		ConversationID: 3,
		ListingID:      5,
		ListingTitle:   "Mountain Bike",
		Amount:         "$280",
		PaymentMethod:  "Credit Card ending in 4242",
		BuyerName:      "Alex <Morgan>",
		BuyerEmail:     "alex.morgan@example.com",
		PaidAt:         chargedAt,
	}
}

func TestReceiptService_Render(t *testing.T) {
	svc := NewReceiptService(new(MockEmailSender), logger.NewNop())

	subject, bodyHTML, bodyText := svc.Render(sampleReceipt())

	assert.Equal(t, "Your receipt for Mountain Bike", subject)
	assert.Contains(t, bodyText, "Transaction ID: 01HXTX\n")
	assert.Contains(t, bodyText, "Amount: $280\n")
	assert.Contains(t, bodyText, "Conversation: 3\n")
	assert.Contains(t, bodyText, "Paid at: May 1, 2024 14:30 UTC\n")
	assert.Contains(t, bodyHTML, "Alex &lt;Morgan&gt;")
	assert.NotContains(t, bodyHTML, "<Morgan>")
}

func TestReceiptService_Deliver(t *testing.T) {
	sender := new(MockEmailSender)
	svc := NewReceiptService(sender, logger.NewNop())
	sender.On("Send", mock.Anything, []string{"alex.morgan@example.com"}, "Your receipt for Mountain Bike", mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, svc.Deliver(context.Background(), sampleReceipt()))
	sender.AssertExpectations(t)
}

func TestReceiptService_DeliverErrors(t *testing.T) {
	sender := new(MockEmailSender)
	svc := NewReceiptService(sender, logger.NewNop())

	noEmail := sampleReceipt()
	noEmail.BuyerEmail = ""
	assert.ErrorIs(t, svc.Deliver(context.Background(), noEmail), entity.ErrInvalidInput)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	smtpErr := errors.New("dial tcp: connection refused")
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(smtpErr)
	assert.ErrorIs(t, svc.Deliver(context.Background(), sampleReceipt()), smtpErr)
}
