package entity

import "fmt"

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentPaid       PaymentStatus = "paid"
)

// Conversation is the message thread between the local user and one counterparty.
// Its id is shared with the matching ChatSummary.
type Conversation struct {
	ID            int64         `json:"id" bson:"id"`
	Item          *Listing      `json:"item" bson:"item,omitempty"`
	Messages      []Message     `json:"messages" bson:"messages"`
	PaymentStatus PaymentStatus `json:"payment_status" bson:"payment_status"`
	Version       int           `json:"-" bson:"version"`
}

// PaymentIntent is handed to the payment collaborator. ConversationID is zero
// for purchases started outside a conversation.
type PaymentIntent struct {
	ConversationID int64   `json:"conversation_id,omitempty"`
	Item           Listing `json:"item"`
	Price          string  `json:"price"`
}

func (c *Conversation) IsPaid() bool {
	return c.PaymentStatus == PaymentPaid
}

func (c *Conversation) FindMessage(messageID int64) (*Message, int) {
	for i := range c.Messages {
		if c.Messages[i].ID == messageID {
			return &c.Messages[i], i
		}
	}
	return nil, -1
}

// AppendMessage adds msg at the end of the thread. Message ids must be unique
// within the conversation.
func (c *Conversation) AppendMessage(msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	if existing, _ := c.FindMessage(msg.ID); existing != nil {
		return fmt.Errorf("%w: message id %d already used in conversation %d", ErrInvalidInput, msg.ID, c.ID)
	}
	c.Messages = append(c.Messages, msg.clone())
	return nil
}

// ResolveOffer moves a pending offer to accepted or declined. Only the
// counterparty of the offer's sender may do so, and only once.
func (c *Conversation) ResolveOffer(messageID int64, actor Party, action OfferStatus) error {
	if !action.Terminal() {
		return fmt.Errorf("%w: offer action must be %q or %q, got %q", ErrInvalidInput, OfferAccepted, OfferDeclined, action)
	}
	if !actor.Valid() {
		return fmt.Errorf("%w: unknown party %q", ErrInvalidInput, actor)
	}
	msg, _ := c.FindMessage(messageID)
	if msg == nil {
		return fmt.Errorf("message %d in conversation %d: %w", messageID, c.ID, ErrNotFound)
	}
	if !msg.IsOffer() {
		return fmt.Errorf("message %d: %w", messageID, ErrNotAnOffer)
	}
	if msg.OfferDetails.Status != OfferPending {
		return fmt.Errorf("offer %d is %s: %w", messageID, msg.OfferDetails.Status, ErrOfferNotPending)
	}
	if msg.Sender == actor {
		return fmt.Errorf("offer %d: %w", messageID, ErrSelfResolution)
	}
	msg.OfferDetails.Status = action
	return nil
}

// AcceptedOfferFor returns the most recent accepted offer that actor sent.
func (c *Conversation) AcceptedOfferFor(actor Party) (*Message, error) {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		m := &c.Messages[i]
		if m.IsOffer() && m.Sender == actor && m.OfferDetails.Status == OfferAccepted {
			return m, nil
		}
	}
	return nil, fmt.Errorf("conversation %d: %w", c.ID, ErrNoAcceptedOffer)
}

// PaymentIntentFor builds the intent for actor's accepted offer. It does not
// change the payment status.
func (c *Conversation) PaymentIntentFor(actor Party) (PaymentIntent, error) {
	if !actor.Valid() {
		return PaymentIntent{}, fmt.Errorf("%w: unknown party %q", ErrInvalidInput, actor)
	}
	if c.IsPaid() {
		return PaymentIntent{}, fmt.Errorf("conversation %d: %w", c.ID, ErrAlreadyPaid)
	}
	if c.PaymentStatus == PaymentProcessing {
		return PaymentIntent{}, fmt.Errorf("conversation %d: %w", c.ID, ErrPaymentInProgress)
	}
	if c.Item == nil {
		return PaymentIntent{}, fmt.Errorf("conversation %d: %w", c.ID, ErrNoLinkedListing)
	}
	offer, err := c.AcceptedOfferFor(actor)
	if err != nil {
		return PaymentIntent{}, err
	}
	if c.Item.IsSold() {
		return PaymentIntent{}, fmt.Errorf("listing %d: %w", c.Item.ID, ErrListingSold)
	}
	return PaymentIntent{
		ConversationID: c.ID,
		Item:           c.Item.Clone(),
		Price:          offer.OfferDetails.Price,
	}, nil
}

// BeginPayment claims the conversation for a charge of actor's accepted offer.
// Only one claim can be held at a time; ReleasePayment or MarkPaid ends it.
func (c *Conversation) BeginPayment(actor Party) (PaymentIntent, error) {
	intent, err := c.PaymentIntentFor(actor)
	if err != nil {
		return PaymentIntent{}, err
	}
	c.PaymentStatus = PaymentProcessing
	return intent, nil
}

// ReleasePayment drops a claim taken by BeginPayment after a failed charge.
func (c *Conversation) ReleasePayment() {
	if c.PaymentStatus == PaymentProcessing {
		c.PaymentStatus = PaymentPending
	}
}

// MarkPaid is monotonic: once paid, calling it again changes nothing.
func (c *Conversation) MarkPaid() {
	c.PaymentStatus = PaymentPaid
}

// OfferHistory lists offer messages newest first.
func (c *Conversation) OfferHistory() []Message {
	out := make([]Message, 0)
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].IsOffer() {
			out = append(out, c.Messages[i].clone())
		}
	}
	return out
}

func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}

func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	out := *c
	if c.Item != nil {
		item := c.Item.Clone()
		out.Item = &item
	}
	out.Messages = make([]Message, len(c.Messages))
	for i, m := range c.Messages {
		out.Messages[i] = m.clone()
	}
	if out.PaymentStatus == "" {
		out.PaymentStatus = PaymentPending
	}
	return &out
}
