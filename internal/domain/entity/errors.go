package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidInput      = errors.New("invalid input")
	ErrForbidden         = errors.New("action forbidden")
)

var (
	ErrSelfResolution    = fmt.Errorf("%w: sender cannot resolve their own offer", ErrInvalidTransition)
	ErrOfferNotPending   = fmt.Errorf("%w: offer is no longer pending", ErrInvalidTransition)
	ErrNotAnOffer        = fmt.Errorf("%w: message is not an offer", ErrInvalidTransition)
	ErrNoAcceptedOffer   = fmt.Errorf("%w: no accepted offer for this party", ErrInvalidTransition)
	ErrAlreadyPaid       = fmt.Errorf("%w: conversation is already paid", ErrInvalidTransition)
	ErrNoLinkedListing   = fmt.Errorf("%w: conversation has no linked listing", ErrInvalidTransition)
	ErrListingSold       = fmt.Errorf("%w: listing is sold", ErrInvalidTransition)
	ErrPaymentInProgress = fmt.Errorf("%w: payment is already being processed", ErrInvalidTransition)
	ErrEmptyMessageText  = fmt.Errorf("%w: message text cannot be empty", ErrInvalidInput)
)
