package memory

import (
	"context"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
)

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, repository.ErrNotFound)
}

type listingRepository struct {
	c *collection[entity.Listing]
}

func (r *listingRepository) List(_ context.Context) ([]entity.Listing, error) {
	return r.c.list(), nil
}

func (r *listingRepository) GetByID(_ context.Context, id int64) (*entity.Listing, error) {
	l, ok := r.c.get(id)
	if !ok {
		return nil, notFound("listing", id)
	}
	return &l, nil
}

// Save prepends new listings so the newest shows first, as posted ads do.
func (r *listingRepository) Save(ctx context.Context, l entity.Listing) error {
	r.c.upsert(ctx, l, true)
	return nil
}

func (r *listingRepository) Delete(ctx context.Context, id int64) error {
	if !r.c.remove(ctx, id) {
		return notFound("listing", id)
	}
	return nil
}

type adRepository struct {
	c *collection[entity.Ad]
}

func (r *adRepository) List(_ context.Context) ([]entity.Ad, error) {
	return r.c.list(), nil
}

func (r *adRepository) GetByID(_ context.Context, id int64) (*entity.Ad, error) {
	a, ok := r.c.get(id)
	if !ok {
		return nil, notFound("ad", id)
	}
	return &a, nil
}

func (r *adRepository) Save(ctx context.Context, a entity.Ad) error {
	r.c.upsert(ctx, a, true)
	return nil
}

func (r *adRepository) Delete(ctx context.Context, id int64) error {
	if !r.c.remove(ctx, id) {
		return notFound("ad", id)
	}
	return nil
}

type chatRepository struct {
	c *collection[entity.ChatSummary]
}

func (r *chatRepository) List(_ context.Context) ([]entity.ChatSummary, error) {
	return r.c.list(), nil
}

func (r *chatRepository) GetByID(_ context.Context, id int64) (*entity.ChatSummary, error) {
	ch, ok := r.c.get(id)
	if !ok {
		return nil, notFound("chat", id)
	}
	return &ch, nil
}

func (r *chatRepository) Save(ctx context.Context, ch entity.ChatSummary) error {
	r.c.upsert(ctx, ch, false)
	return nil
}

func (r *chatRepository) DeleteByName(ctx context.Context, name string) (int, error) {
	return r.c.removeWhere(ctx, func(ch entity.ChatSummary) bool { return ch.Name == name }), nil
}

type userRepository struct {
	c *collection[entity.User]
}

func (r *userRepository) List(_ context.Context) ([]entity.User, error) {
	return r.c.list(), nil
}

func (r *userRepository) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.c.get(id)
	if !ok {
		return nil, notFound("user", id)
	}
	return &u, nil
}

func (r *userRepository) Save(ctx context.Context, u entity.User) error {
	r.c.upsert(ctx, u, false)
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	if !r.c.remove(ctx, id) {
		return notFound("user", id)
	}
	return nil
}

type addressRepository struct {
	c *collection[entity.Address]
}

func (r *addressRepository) List(_ context.Context) ([]entity.Address, error) {
	return r.c.list(), nil
}

func (r *addressRepository) GetByID(_ context.Context, id int64) (*entity.Address, error) {
	a, ok := r.c.get(id)
	if !ok {
		return nil, notFound("address", id)
	}
	return &a, nil
}

// Save upserts addr; a default address clears the flag on all the others.
func (r *addressRepository) Save(ctx context.Context, addr entity.Address) error {
	if addr.IsDefault {
		r.c.updateAll(ctx, func(a *entity.Address) bool {
			if a.ID != addr.ID && a.IsDefault {
				a.IsDefault = false
				return true
			}
			return false
		})
	}
	r.c.upsert(ctx, addr, false)
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id int64) error {
	if !r.c.remove(ctx, id) {
		return notFound("address", id)
	}
	return nil
}

type paymentMethodRepository struct {
	c *collection[entity.PaymentMethod]
}

func (r *paymentMethodRepository) List(_ context.Context) ([]entity.PaymentMethod, error) {
	return r.c.list(), nil
}

func (r *paymentMethodRepository) GetByID(_ context.Context, id int64) (*entity.PaymentMethod, error) {
	m, ok := r.c.get(id)
	if !ok {
		return nil, notFound("payment method", id)
	}
	return &m, nil
}

func (r *paymentMethodRepository) Save(ctx context.Context, method entity.PaymentMethod) error {
	if method.IsDefault {
		r.c.updateAll(ctx, func(m *entity.PaymentMethod) bool {
			if m.ID != method.ID && m.IsDefault {
				m.IsDefault = false
				return true
			}
			return false
		})
	}
	r.c.upsert(ctx, method, false)
	return nil
}

func (r *paymentMethodRepository) Delete(ctx context.Context, id int64) error {
	if !r.c.remove(ctx, id) {
		return notFound("payment method", id)
	}
	return nil
}

type notificationRepository struct {
	c *collection[entity.Notification]
}

func (r *notificationRepository) List(_ context.Context) ([]entity.Notification, error) {
	return r.c.list(), nil
}

func (r *notificationRepository) GetByID(_ context.Context, id int64) (*entity.Notification, error) {
	n, ok := r.c.get(id)
	if !ok {
		return nil, notFound("notification", id)
	}
	return &n, nil
}

func (r *notificationRepository) Save(ctx context.Context, n entity.Notification) error {
	r.c.upsert(ctx, n, true)
	return nil
}

type activityRepository struct {
	c *collection[entity.RecentActivity]
}

func (r *activityRepository) List(_ context.Context) ([]entity.RecentActivity, error) {
	return r.c.list(), nil
}

func (r *activityRepository) Save(ctx context.Context, a entity.RecentActivity) error {
	r.c.upsert(ctx, a, true)
	return nil
}

type reviewRepository struct {
	c *collection[entity.Review]
}

func (r *reviewRepository) ListBySeller(_ context.Context, sellerID int64) ([]entity.Review, error) {
	return r.c.filter(func(rv entity.Review) bool { return rv.SellerID == sellerID }), nil
}
