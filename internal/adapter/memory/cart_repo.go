package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
)

type cartEntry struct {
	cart      entity.Cart
	expiresAt time.Time
}

// cartRepository keeps carts in memory when Redis is not configured. Expired
// carts read as empty, like a Redis key whose TTL ran out.
type cartRepository struct {
	mu    sync.Mutex
	carts map[int64]cartEntry
	now   func() time.Time
}

func NewCartRepository() repository.CartRepository {
	return &cartRepository{carts: make(map[int64]cartEntry), now: time.Now}
}

func (r *cartRepository) GetByUserID(_ context.Context, userID int64) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.carts[userID]
	if !ok || (!e.expiresAt.IsZero() && r.now().After(e.expiresAt)) {
		delete(r.carts, userID)
		return entity.NewCart(userID), nil
	}
	cart := e.cart
	cart.ListingIDs = append([]int64(nil), e.cart.ListingIDs...)
	return &cart, nil
}

func (r *cartRepository) Save(_ context.Context, cart *entity.Cart, ttl time.Duration) error {
	if cart == nil || cart.UserID == 0 {
		return fmt.Errorf("%w: cannot save nil cart or cart without user", entity.ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cart.UpdatedAt = r.now().UTC()
	e := cartEntry{cart: *cart}
	e.cart.ListingIDs = append([]int64(nil), cart.ListingIDs...)
	if ttl > 0 {
		e.expiresAt = r.now().Add(ttl)
	}
	r.carts[cart.UserID] = e
	return nil
}

func (r *cartRepository) DeleteByUserID(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}
