package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/nats"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/clock"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "marketplace/service"

// AppendMessageParams describes one new message. OfferPrice is required for
// offers and must be empty for text messages.
type AppendMessageParams struct {
	ConversationID int64
	Sender         entity.Party
	Type           entity.MessageType
	Text           string
	OfferPrice     string
}

type MessageAppendedEvent struct {
	ConversationID int64          `json:"conversation_id"`
	Message        entity.Message `json:"message"`
}

type OfferResolvedEvent struct {
	ConversationID int64              `json:"conversation_id"`
	MessageID      int64              `json:"message_id"`
	Actor          entity.Party       `json:"actor"`
	Status         entity.OfferStatus `json:"status"`
	Price          string             `json:"price"`
}

type ConversationPaidEvent struct {
	ConversationID int64 `json:"conversation_id"`
	ListingID      int64 `json:"listing_id,omitempty"`
}

type NegotiationService interface {
	SendText(ctx context.Context, conversationID int64, sender entity.Party, text string) (*entity.Message, error)
	MakeOffer(ctx context.Context, conversationID int64, sender entity.Party, price string) (*entity.Message, error)
	AppendMessage(ctx context.Context, params AppendMessageParams) (*entity.Message, error)
	ResolveOffer(ctx context.Context, conversationID, messageID int64, actor entity.Party, action entity.OfferStatus) (*entity.Message, error)
	ProceedToPayment(ctx context.Context, conversationID int64, actor entity.Party) (entity.PaymentIntent, error)
	MarkPaid(ctx context.Context, conversationID int64) (*entity.Conversation, error)
	GetConversation(ctx context.Context, conversationID int64) (*entity.Conversation, error)
	ListConversations(ctx context.Context) ([]*entity.Conversation, error)
	NegotiationHistory(ctx context.Context, conversationID int64) ([]entity.Message, error)
	ListChats(ctx context.Context) ([]entity.ChatSummary, error)
}

type negotiationService struct {
	convRepo  repository.ConversationRepository
	chatRepo  repository.ChatRepository
	notifier  Notifier
	publisher nats.MessagePublisher
	clock     clock.Clock
	metrics   *metrics.MetricsManager
	log       logger.Logger
	tracer    trace.Tracer
}

func NewNegotiationService(
	convRepo repository.ConversationRepository,
	chatRepo repository.ChatRepository,
	notifier Notifier,
	publisher nats.MessagePublisher,
	clk clock.Clock,
	m *metrics.MetricsManager,
	log logger.Logger,
) NegotiationService {
	return &negotiationService{
		convRepo:  convRepo,
		chatRepo:  chatRepo,
		notifier:  notifier,
		publisher: publisher,
		clock:     clk,
		metrics:   m,
		log:       log,
		tracer:    otel.Tracer(tracerName),
	}
}

func (s *negotiationService) SendText(ctx context.Context, conversationID int64, sender entity.Party, text string) (*entity.Message, error) {
	return s.AppendMessage(ctx, AppendMessageParams{
		ConversationID: conversationID,
		Sender:         sender,
		Type:           entity.MessageText,
		Text:           text,
	})
}

func (s *negotiationService) MakeOffer(ctx context.Context, conversationID int64, sender entity.Party, price string) (*entity.Message, error) {
	return s.AppendMessage(ctx, AppendMessageParams{
		ConversationID: conversationID,
		Sender:         sender,
		Type:           entity.MessageOffer,
		OfferPrice:     price,
	})
}

func (s *negotiationService) buildMessage(p AppendMessageParams) (entity.Message, error) {
	msg := entity.Message{
		Sender: p.Sender,
		Type:   p.Type,
		Text:   strings.TrimSpace(p.Text),
	}
	switch p.Type {
	case entity.MessageText:
		if p.OfferPrice != "" {
			return msg, fmt.Errorf("%w: text message cannot carry an offer price", entity.ErrInvalidInput)
		}
		if msg.Text == "" {
			return msg, entity.ErrEmptyMessageText
		}
	case entity.MessageOffer:
		amount, ok := entity.ParsePrice(p.OfferPrice)
		if !ok || amount <= 0 {
			return msg, fmt.Errorf("%w: offer price %q must be a positive number", entity.ErrInvalidInput, p.OfferPrice)
		}
		price := entity.FormatPrice(p.OfferPrice)
		msg.OfferDetails = &entity.OfferDetails{Price: price, Status: entity.OfferPending}
		if msg.Text == "" {
			msg.Text = "Offer: " + price
		}
	default:
		return msg, fmt.Errorf("%w: unknown message type %q", entity.ErrInvalidInput, p.Type)
	}
	msg.ID = s.clock.NextID()
	msg.Timestamp = s.clock.Label()
	return msg, nil
}

func (s *negotiationService) AppendMessage(ctx context.Context, params AppendMessageParams) (*entity.Message, error) {
	ctx, span := s.tracer.Start(ctx, "NegotiationService.AppendMessage", trace.WithAttributes(
		attribute.Int64("conversation.id", params.ConversationID),
		attribute.String("message.type", string(params.Type)),
	))
	defer span.End()

	msg, err := s.buildMessage(params)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	conv, err := s.convRepo.Update(ctx, params.ConversationID, func(c *entity.Conversation) error {
		return c.AppendMessage(msg)
	})
	if err != nil {
		span.RecordError(err)
		s.log.Warnf("Append to conversation %d rejected: %v", params.ConversationID, err)
		return nil, fmt.Errorf("append message: %w", err)
	}

	s.metrics.MessagesAppended.WithLabelValues(string(msg.Type)).Inc()
	s.touchChat(ctx, conv.ID, msg)
	s.publish(ctx, nats.SubjectMessageAppended, MessageAppendedEvent{ConversationID: conv.ID, Message: msg})
	if msg.IsOffer() && msg.Sender == entity.PartyOther {
		s.notify(ctx, entity.NotificationOffer, fmt.Sprintf("You have a new offer of %s%s.", msg.OfferDetails.Price, itemSuffix(conv)), conv.ID)
	}

	s.log.Infof("Appended %s message %d to conversation %d", msg.Type, msg.ID, conv.ID)
	return &msg, nil
}

func (s *negotiationService) ResolveOffer(ctx context.Context, conversationID, messageID int64, actor entity.Party, action entity.OfferStatus) (*entity.Message, error) {
	ctx, span := s.tracer.Start(ctx, "NegotiationService.ResolveOffer", trace.WithAttributes(
		attribute.Int64("conversation.id", conversationID),
		attribute.Int64("message.id", messageID),
		attribute.String("offer.action", string(action)),
	))
	defer span.End()

	conv, err := s.convRepo.Update(ctx, conversationID, func(c *entity.Conversation) error {
		return c.ResolveOffer(messageID, actor, action)
	})
	if err != nil {
		span.RecordError(err)
		s.log.Warnf("Resolve offer %d in conversation %d rejected: %v", messageID, conversationID, err)
		return nil, fmt.Errorf("resolve offer: %w", err)
	}

	msg, _ := conv.FindMessage(messageID)
	s.metrics.OffersResolved.WithLabelValues(string(action)).Inc()
	s.publish(ctx, nats.SubjectOfferResolved, OfferResolvedEvent{
		ConversationID: conv.ID,
		MessageID:      messageID,
		Actor:          actor,
		Status:         action,
		Price:          msg.OfferDetails.Price,
	})
	if actor == entity.PartyOther {
		s.notify(ctx, entity.NotificationOffer, fmt.Sprintf("Your offer of %s%s has been %s.", msg.OfferDetails.Price, itemSuffix(conv), action), conv.ID)
	}

	s.log.Infof("Offer %d in conversation %d %s by %s", messageID, conv.ID, action, actor)
	out := *msg
	return &out, nil
}

func (s *negotiationService) ProceedToPayment(ctx context.Context, conversationID int64, actor entity.Party) (entity.PaymentIntent, error) {
	conv, err := s.convRepo.GetByID(ctx, conversationID)
	if err != nil {
		return entity.PaymentIntent{}, fmt.Errorf("proceed to payment: %w", err)
	}
	intent, err := conv.PaymentIntentFor(actor)
	if err != nil {
		s.log.Warnf("Payment for conversation %d refused for %s: %v", conversationID, actor, err)
		return entity.PaymentIntent{}, fmt.Errorf("proceed to payment: %w", err)
	}
	return intent, nil
}

func (s *negotiationService) MarkPaid(ctx context.Context, conversationID int64) (*entity.Conversation, error) {
	var alreadyPaid bool
	conv, err := s.convRepo.Update(ctx, conversationID, func(c *entity.Conversation) error {
		alreadyPaid = c.IsPaid()
		c.MarkPaid()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}
	if alreadyPaid {
		return conv, nil
	}

	event := ConversationPaidEvent{ConversationID: conv.ID}
	if conv.Item != nil {
		event.ListingID = conv.Item.ID
	}
	s.publish(ctx, nats.SubjectConversationPaid, event)
	s.log.Infof("Conversation %d marked paid", conv.ID)
	return conv, nil
}

func (s *negotiationService) GetConversation(ctx context.Context, conversationID int64) (*entity.Conversation, error) {
	return s.convRepo.GetByID(ctx, conversationID)
}

func (s *negotiationService) ListConversations(ctx context.Context) ([]*entity.Conversation, error) {
	return s.convRepo.List(ctx)
}

func (s *negotiationService) NegotiationHistory(ctx context.Context, conversationID int64) ([]entity.Message, error) {
	conv, err := s.convRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return conv.OfferHistory(), nil
}

func (s *negotiationService) ListChats(ctx context.Context) ([]entity.ChatSummary, error) {
	return s.chatRepo.List(ctx)
}

// touchChat keeps the inbox row in step with the thread. Failures are logged only.
func (s *negotiationService) touchChat(ctx context.Context, conversationID int64, msg entity.Message) {
	chat, err := s.chatRepo.GetByID(ctx, conversationID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Errorf("Failed to load chat %d: %v", conversationID, err)
		}
		return
	}
	chat.LastMessage = msg.Text
	chat.Timestamp = msg.Timestamp
	chat.Unread = msg.Sender == entity.PartyOther
	if err := s.chatRepo.Save(ctx, *chat); err != nil {
		s.log.Errorf("Failed to update chat %d: %v", conversationID, err)
	}
}

func (s *negotiationService) publish(ctx context.Context, subject string, event interface{}) {
	if err := s.publisher.Publish(ctx, subject, event); err != nil {
		s.log.Errorf("Failed to publish %s event: %v", subject, err)
	}
}

func (s *negotiationService) notify(ctx context.Context, typ entity.NotificationType, text string, relatedID int64) {
	if _, err := s.notifier.Notify(ctx, typ, text, relatedID); err != nil {
		s.log.Errorf("Failed to create notification: %v", err)
	}
}

func itemSuffix(conv *entity.Conversation) string {
	if conv.Item == nil {
		return ""
	}
	return fmt.Sprintf(" for %q", conv.Item.Title)
}
