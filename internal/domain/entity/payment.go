package entity

import "time"

// Receipt records one confirmed payment.
type Receipt struct {
	TransactionID  string    `json:"transaction_id"`
	ConversationID int64     `json:"conversation_id,omitempty"`
	ListingID      int64     `json:"listing_id"`
	ListingTitle   string    `json:"listing_title"`
	Amount         string    `json:"amount"`
	PaymentMethod  string    `json:"payment_method"`
	BuyerName      string    `json:"buyer_name"`
	BuyerEmail     string    `json:"buyer_email"`
	PaidAt         time.Time `json:"paid_at"`
}
