package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
)

// ListingRepository is the listing source. List returns a copy the caller may keep.
type ListingRepository interface {
	List(ctx context.Context) ([]entity.Listing, error)
	GetByID(ctx context.Context, id int64) (*entity.Listing, error)
	Save(ctx context.Context, listing entity.Listing) error
	Delete(ctx context.Context, id int64) error
}

type AdRepository interface {
	List(ctx context.Context) ([]entity.Ad, error)
	GetByID(ctx context.Context, id int64) (*entity.Ad, error)
	Save(ctx context.Context, ad entity.Ad) error
	Delete(ctx context.Context, id int64) error
}
