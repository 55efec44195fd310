package entity

import "fmt"

// Party identifies one of the two sides of a conversation, relative to the local user.
type Party string

const (
	PartyMe    Party = "me"
	PartyOther Party = "other"
)

func (p Party) Valid() bool {
	return p == PartyMe || p == PartyOther
}

func (p Party) Counterparty() Party {
	if p == PartyMe {
		return PartyOther
	}
	return PartyMe
}

func ParseParty(s string) (Party, error) {
	p := Party(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown party %q", ErrInvalidInput, s)
	}
	return p, nil
}

type MessageType string

const (
	MessageText  MessageType = "text"
	MessageOffer MessageType = "offer"
)

type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferDeclined OfferStatus = "declined"
)

func (s OfferStatus) Terminal() bool {
	return s == OfferAccepted || s == OfferDeclined
}

type OfferDetails struct {
	Price  string      `json:"price" bson:"price"`
	Status OfferStatus `json:"status" bson:"status"`
}

type Message struct {
	ID           int64         `json:"id" bson:"id"`
	Text         string        `json:"text" bson:"text"`
	Timestamp    string        `json:"timestamp" bson:"timestamp"`
	Sender       Party         `json:"sender" bson:"sender"`
	Type         MessageType   `json:"type" bson:"type"`
	OfferDetails *OfferDetails `json:"offer_details,omitempty" bson:"offer_details,omitempty"`
}

func (m Message) IsOffer() bool {
	return m.Type == MessageOffer && m.OfferDetails != nil
}

func (m Message) clone() Message {
	out := m
	if m.OfferDetails != nil {
		od := *m.OfferDetails
		out.OfferDetails = &od
	}
	return out
}

func (m Message) validate() error {
	if !m.Sender.Valid() {
		return fmt.Errorf("%w: unknown sender %q", ErrInvalidInput, m.Sender)
	}
	switch m.Type {
	case MessageText:
		if m.OfferDetails != nil {
			return fmt.Errorf("%w: text message cannot carry offer details", ErrInvalidInput)
		}
	case MessageOffer:
		if m.OfferDetails == nil {
			return fmt.Errorf("%w: offer message requires offer details", ErrInvalidInput)
		}
		if m.OfferDetails.Status != OfferPending {
			return fmt.Errorf("%w: new offer must be pending, got %q", ErrInvalidInput, m.OfferDetails.Status)
		}
		if _, ok := ParsePrice(m.OfferDetails.Price); !ok {
			return fmt.Errorf("%w: offer price %q is not a number", ErrInvalidInput, m.OfferDetails.Price)
		}
	default:
		return fmt.Errorf("%w: unknown message type %q", ErrInvalidInput, m.Type)
	}
	return nil
}
