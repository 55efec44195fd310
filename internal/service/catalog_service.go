package service

import (
	"context"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/catalog"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
)

// SellerProfile is what the seller page shows: who they are, what they sell
// and what buyers said about them.
type SellerProfile struct {
	Seller   entity.Seller    `json:"seller"`
	Listings []entity.Listing `json:"listings"`
	Reviews  []entity.Review  `json:"reviews"`
}

type CatalogService interface {
	Search(ctx context.Context, q catalog.Query) ([]entity.Listing, error)
	GetListing(ctx context.Context, id int64) (*entity.Listing, error)
	SellerProfile(ctx context.Context, sellerID int64) (*SellerProfile, error)
	Categories() map[string][]string
}

type catalogService struct {
	listings   repository.ListingRepository
	users      repository.UserRepository
	reviews    repository.ReviewRepository
	categories catalog.CategoryMap
	log        logger.Logger
}

func NewCatalogService(
	listings repository.ListingRepository,
	users repository.UserRepository,
	reviews repository.ReviewRepository,
	categories map[string][]string,
	log logger.Logger,
) CatalogService {
	if len(categories) == 0 {
		categories = catalog.DefaultCategories
	}
	return &catalogService{
		listings:   listings,
		users:      users,
		reviews:    reviews,
		categories: catalog.NewCategoryMap(categories),
		log:        log,
	}
}

func (s *catalogService) Search(ctx context.Context, q catalog.Query) ([]entity.Listing, error) {
	all, err := s.listings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	result := catalog.Filter(all, q, s.categories)
	s.log.Debugf("Catalog search matched %d of %d listings", len(result), len(all))
	return result, nil
}

func (s *catalogService) GetListing(ctx context.Context, id int64) (*entity.Listing, error) {
	return s.listings.GetByID(ctx, id)
}

func (s *catalogService) SellerProfile(ctx context.Context, sellerID int64) (*SellerProfile, error) {
	all, err := s.listings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	profile := &SellerProfile{Listings: make([]entity.Listing, 0)}
	found := false
	for _, l := range all {
		if l.Seller.ID != sellerID {
			continue
		}
		if !found {
			profile.Seller = l.Seller
			found = true
		}
		profile.Listings = append(profile.Listings, l)
	}
	if !found {
		u, err := s.users.GetByID(ctx, sellerID)
		if err != nil {
			return nil, fmt.Errorf("seller %d: %w", sellerID, err)
		}
		profile.Seller = u.AsSeller()
	}

	reviews, err := s.reviews.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	profile.Reviews = reviews
	return profile, nil
}

func (s *catalogService) Categories() map[string][]string {
	return s.categories.Table()
}
