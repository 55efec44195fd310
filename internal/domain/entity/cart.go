package entity

import (
	"fmt"
	"time"
)

// Cart holds the listings a user set aside. Every listing is unique, so a
// cart entry has no quantity.
type Cart struct {
	UserID     int64     `json:"user_id"`
	ListingIDs []int64   `json:"listing_ids"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewCart(userID int64) *Cart {
	return &Cart{
		UserID:     userID,
		ListingIDs: make([]int64, 0),
		UpdatedAt:  time.Now().UTC(),
	}
}

func (c *Cart) indexOf(listingID int64) int {
	for i, id := range c.ListingIDs {
		if id == listingID {
			return i
		}
	}
	return -1
}

func (c *Cart) Contains(listingID int64) bool {
	return c.indexOf(listingID) >= 0
}

// AddItem is a no-op when the listing is already in the cart.
func (c *Cart) AddItem(listingID int64) error {
	if listingID <= 0 {
		return fmt.Errorf("%w: listing id must be positive", ErrInvalidInput)
	}
	if c.Contains(listingID) {
		return nil
	}
	c.ListingIDs = append(c.ListingIDs, listingID)
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (c *Cart) RemoveItem(listingID int64) error {
	i := c.indexOf(listingID)
	if i < 0 {
		return fmt.Errorf("listing %d in cart: %w", listingID, ErrNotFound)
	}
	c.ListingIDs = append(c.ListingIDs[:i], c.ListingIDs[i+1:]...)
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (c *Cart) Clear() {
	c.ListingIDs = make([]int64, 0)
	c.UpdatedAt = time.Now().UTC()
}
