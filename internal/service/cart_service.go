package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
)

const defaultCartTTL = 24 * time.Hour

// CartView is a cart resolved against the catalog. Listings that were sold or
// removed since they were added are dropped from Items.
type CartView struct {
	UserID   int64            `json:"user_id"`
	Items    []entity.Listing `json:"items"`
	Subtotal string           `json:"subtotal"`
}

type CartService interface {
	AddItem(ctx context.Context, userID, listingID int64) (*CartView, error)
	RemoveItem(ctx context.Context, userID, listingID int64) (*CartView, error)
	GetCart(ctx context.Context, userID int64) (*CartView, error)
	ClearCart(ctx context.Context, userID int64) error
}

type cartService struct {
	cartRepo repository.CartRepository
	listings repository.ListingRepository
	log      logger.Logger
	cartTTL  time.Duration
}

func NewCartService(cartRepo repository.CartRepository, listings repository.ListingRepository, cartTTL time.Duration, log logger.Logger) CartService {
	if cartTTL <= 0 {
		cartTTL = defaultCartTTL
	}
	return &cartService{cartRepo: cartRepo, listings: listings, log: log, cartTTL: cartTTL}
}

func (s *cartService) view(ctx context.Context, cart *entity.Cart) *CartView {
	v := &CartView{UserID: cart.UserID, Items: make([]entity.Listing, 0, len(cart.ListingIDs))}
	var subtotal float64
	for _, id := range cart.ListingIDs {
		l, err := s.listings.GetByID(ctx, id)
		if err != nil {
			s.log.Warnf("Cart of user %d references missing listing %d: %v", cart.UserID, id, err)
			continue
		}
		if l.IsSold() {
			s.log.Debugf("Skipping sold listing %d in cart of user %d", id, cart.UserID)
			continue
		}
		if price, ok := l.NumericPrice(); ok {
			subtotal += price
		}
		v.Items = append(v.Items, *l)
	}
	v.Subtotal = fmt.Sprintf("$%.2f", subtotal)
	return v
}

func (s *cartService) AddItem(ctx context.Context, userID, listingID int64) (*CartView, error) {
	s.log.Infof("Adding listing %d to cart of user %d", listingID, userID)
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.IsSold() {
		return nil, fmt.Errorf("listing %d: %w", listingID, entity.ErrListingSold)
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.log.Errorf("Error getting cart for user %d: %v", userID, err)
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}
	if err := cart.AddItem(listingID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, cart, s.cartTTL); err != nil {
		s.log.Errorf("Error saving cart for user %d: %v", userID, err)
		return nil, fmt.Errorf("could not save cart: %w", err)
	}
	return s.view(ctx, cart), nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, listingID int64) (*CartView, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}
	if err := cart.RemoveItem(listingID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, cart, s.cartTTL); err != nil {
		s.log.Errorf("Error saving cart for user %d: %v", userID, err)
		return nil, fmt.Errorf("could not save cart: %w", err)
	}
	return s.view(ctx, cart), nil
}

func (s *cartService) GetCart(ctx context.Context, userID int64) (*CartView, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}
	return s.view(ctx, cart), nil
}

func (s *cartService) ClearCart(ctx context.Context, userID int64) error {
	if err := s.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		s.log.Errorf("Error clearing cart for user %d: %v", userID, err)
		return fmt.Errorf("could not clear cart: %w", err)
	}
	return nil
}
