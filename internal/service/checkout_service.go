package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/nats"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/payment"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	originOffer  = "offer"
	originBuyNow = "buy_now"
)

// ReceiptQueue hands a receipt over for delivery to the buyer.
type ReceiptQueue interface {
	EnqueueReceipt(ctx context.Context, r entity.Receipt) error
}

type PaymentConfirmedEvent struct {
	Receipt entity.Receipt `json:"receipt"`
	Origin  string         `json:"origin"`
}

type CheckoutService interface {
	BuyNow(ctx context.Context, listingID int64) (entity.PaymentIntent, error)
	ConfirmPayment(ctx context.Context, intent entity.PaymentIntent, paymentMethodID int64) (*entity.Receipt, error)
}

type CheckoutDeps struct {
	Listings       repository.ListingRepository
	Conversations  repository.ConversationRepository
	PaymentMethods repository.PaymentMethodRepository
	Users          repository.UserRepository
	Negotiation    NegotiationService
	Gateway        payment.Gateway
	Notifier       Notifier
	Publisher      nats.MessagePublisher
	Receipts       ReceiptQueue
	Metrics        *metrics.MetricsManager
	CurrentUserID  int64
}

type checkoutService struct {
	CheckoutDeps
	log    logger.Logger
	tracer trace.Tracer
}

func NewCheckoutService(deps CheckoutDeps, log logger.Logger) CheckoutService {
	return &checkoutService{CheckoutDeps: deps, log: log, tracer: otel.Tracer(tracerName)}
}

// BuyNow starts a purchase at the listing's own price, outside any conversation.
func (s *checkoutService) BuyNow(ctx context.Context, listingID int64) (entity.PaymentIntent, error) {
	listing, err := s.Listings.GetByID(ctx, listingID)
	if err != nil {
		return entity.PaymentIntent{}, fmt.Errorf("buy now: %w", err)
	}
	if listing.IsSold() {
		return entity.PaymentIntent{}, fmt.Errorf("listing %d: %w", listingID, entity.ErrListingSold)
	}
	return entity.PaymentIntent{Item: listing.Clone(), Price: listing.Price}, nil
}

func (s *checkoutService) ConfirmPayment(ctx context.Context, intent entity.PaymentIntent, paymentMethodID int64) (*entity.Receipt, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.ConfirmPayment", trace.WithAttributes(
		attribute.Int64("listing.id", intent.Item.ID),
		attribute.Int64("conversation.id", intent.ConversationID),
	))
	defer span.End()

	method, err := s.PaymentMethods.GetByID(ctx, paymentMethodID)
	if err != nil {
		return nil, fmt.Errorf("payment method %d: %w", paymentMethodID, err)
	}

	origin := originBuyNow
	listingID := intent.Item.ID
	conversationID := intent.ConversationID
	var amount string
	if conversationID != 0 {
		origin = originOffer
		claimed, err := s.claimConversation(ctx, intent)
		if err != nil {
			return nil, fmt.Errorf("confirm payment: %w", err)
		}
		listingID = claimed.Item.ID
		amount = claimed.Price
	}

	listing, err := s.Listings.GetByID(ctx, listingID)
	if err == nil && listing.IsSold() {
		err = fmt.Errorf("listing %d: %w", listing.ID, entity.ErrListingSold)
	}
	if err != nil {
		s.releaseConversation(ctx, conversationID)
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	if amount == "" {
		amount = listing.Price
	}

	charge, err := s.Gateway.Charge(ctx, payment.ChargeRequest{
		Amount: amount,
		Method: *method,
		Memo:   listing.Title,
	})
	if err != nil {
		span.RecordError(err)
		s.log.Errorf("Charge for listing %d failed: %v", listing.ID, err)
		s.releaseConversation(ctx, conversationID)
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	if conversationID == 0 {
		if conv, err := s.Conversations.FindByItemID(ctx, listing.ID); err == nil {
			conversationID = conv.ID
		} else if !errors.Is(err, entity.ErrNotFound) {
			s.log.Errorf("Failed to look up conversation for listing %d: %v", listing.ID, err)
		}
	}
	if conversationID != 0 {
		if _, err := s.Negotiation.MarkPaid(ctx, conversationID); err != nil {
			s.log.Errorf("Failed to mark conversation %d paid after charge %s: %v", conversationID, charge.TransactionID, err)
		}
	}

	receipt := entity.Receipt{
		TransactionID:  charge.TransactionID,
		ConversationID: conversationID,
		ListingID:      listing.ID,
		ListingTitle:   listing.Title,
		Amount:         amount,
		PaymentMethod:  method.Label(),
		PaidAt:         charge.ChargedAt,
	}
	if buyer, err := s.Users.GetByID(ctx, s.CurrentUserID); err == nil {
		receipt.BuyerName = buyer.Name
		receipt.BuyerEmail = buyer.Email
	} else {
		s.log.Warnf("Buyer %d not found for receipt %s: %v", s.CurrentUserID, charge.TransactionID, err)
	}

	s.Metrics.PaymentsCompleted.WithLabelValues(origin).Inc()
	if _, err := s.Notifier.Notify(ctx, entity.NotificationAlert,
		fmt.Sprintf("Payment of %s for %q confirmed.", amount, listing.Title), conversationID); err != nil {
		s.log.Errorf("Failed to create payment notification: %v", err)
	}
	if err := s.Publisher.Publish(ctx, nats.SubjectPaymentConfirmed, PaymentConfirmedEvent{Receipt: receipt, Origin: origin}); err != nil {
		s.log.Errorf("Failed to publish %s event: %v", nats.SubjectPaymentConfirmed, err)
	}
	if s.Receipts != nil && receipt.BuyerEmail != "" {
		if err := s.Receipts.EnqueueReceipt(ctx, receipt); err != nil {
			s.log.Errorf("Failed to queue receipt %s: %v", receipt.TransactionID, err)
		}
	}

	s.log.Infof("Payment %s confirmed for listing %d (%s, %s)", receipt.TransactionID, listing.ID, amount, origin)
	return &receipt, nil
}

// claimConversation moves the conversation into processing so that only one
// charge runs for it. The payer is always the local user, and the intent must
// name the listing the conversation is about.
func (s *checkoutService) claimConversation(ctx context.Context, intent entity.PaymentIntent) (entity.PaymentIntent, error) {
	var claimed entity.PaymentIntent
	_, err := s.Conversations.Update(ctx, intent.ConversationID, func(c *entity.Conversation) error {
		in, err := c.BeginPayment(entity.PartyMe)
		if err != nil {
			return err
		}
		if in.Item.ID != intent.Item.ID {
			return fmt.Errorf("%w: conversation %d is about listing %d, not %d",
				entity.ErrInvalidInput, c.ID, in.Item.ID, intent.Item.ID)
		}
		claimed = in
		return nil
	})
	return claimed, err
}

func (s *checkoutService) releaseConversation(ctx context.Context, conversationID int64) {
	if conversationID == 0 {
		return
	}
	_, err := s.Conversations.Update(ctx, conversationID, func(c *entity.Conversation) error {
		c.ReleasePayment()
		return nil
	})
	if err != nil {
		s.log.Errorf("Failed to release payment claim on conversation %d: %v", conversationID, err)
	}
}
