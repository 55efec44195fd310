package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
)

type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Save(ctx context.Context, user entity.User) error
	Delete(ctx context.Context, id int64) error
}

type AddressRepository interface {
	List(ctx context.Context) ([]entity.Address, error)
	GetByID(ctx context.Context, id int64) (*entity.Address, error)
	Save(ctx context.Context, addr entity.Address) error
	Delete(ctx context.Context, id int64) error
}

type PaymentMethodRepository interface {
	List(ctx context.Context) ([]entity.PaymentMethod, error)
	GetByID(ctx context.Context, id int64) (*entity.PaymentMethod, error)
	Save(ctx context.Context, method entity.PaymentMethod) error
	Delete(ctx context.Context, id int64) error
}

type NotificationRepository interface {
	List(ctx context.Context) ([]entity.Notification, error)
	GetByID(ctx context.Context, id int64) (*entity.Notification, error)
	Save(ctx context.Context, n entity.Notification) error
}

type ActivityRepository interface {
	List(ctx context.Context) ([]entity.RecentActivity, error)
	Save(ctx context.Context, a entity.RecentActivity) error
}

type ReviewRepository interface {
	ListBySeller(ctx context.Context, sellerID int64) ([]entity.Review, error)
}
