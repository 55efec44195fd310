package repository

import (
	"context"
	"time"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
)

// CartRepository returns an empty cart for users who have none.
type CartRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart, ttl time.Duration) error
	DeleteByUserID(ctx context.Context, userID int64) error
}
