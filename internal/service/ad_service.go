package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/nats"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/storage/s3"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/clock"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/seed"
)

type PhotoUpload struct {
	FileName string
	Data     []byte
}

// AdParams carries the seller-editable fields of an ad. Photos are uploaded
// when photo storage is configured; ImageURLs are used as given otherwise.
type AdParams struct {
	Title       string
	Description string
	Price       string
	Category    string
	Location    string
	Condition   string
	Material    string
	Sizes       []string
	Colors      []string
	ImageURLs   []string
	Photos      []PhotoUpload
}

type AdPostedEvent struct {
	AdID     int64  `json:"ad_id"`
	SellerID int64  `json:"seller_id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

type AdService interface {
	PostAd(ctx context.Context, params AdParams) (*entity.Ad, *entity.Listing, error)
	UpdateAd(ctx context.Context, id int64, params AdParams, status entity.AdStatus) (*entity.Ad, error)
	ListAds(ctx context.Context) ([]entity.Ad, error)
	TogglePromotion(ctx context.Context, id int64) (*entity.Listing, error)
}

type AdDeps struct {
	Ads           repository.AdRepository
	Listings      repository.ListingRepository
	Users         repository.UserRepository
	Activities    repository.ActivityRepository
	Photos        s3.PhotoStorage
	Publisher     nats.MessagePublisher
	Clock         clock.Clock
	Metrics       *metrics.MetricsManager
	CurrentUserID int64
}

type adService struct {
	AdDeps
	log logger.Logger
}

func NewAdService(deps AdDeps, log logger.Logger) AdService {
	return &adService{AdDeps: deps, log: log}
}

func (p AdParams) validate() error {
	var missing []string
	if strings.TrimSpace(p.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(p.Price) == "" {
		missing = append(missing, "price")
	}
	if strings.TrimSpace(p.Category) == "" {
		missing = append(missing, "category")
	}
	if strings.TrimSpace(p.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", entity.ErrInvalidInput, strings.Join(missing, ", "))
	}
	if amount, ok := entity.ParsePrice(p.Price); !ok || amount <= 0 {
		return fmt.Errorf("%w: price %q must be a positive number", entity.ErrInvalidInput, p.Price)
	}
	return nil
}

// imageURL returns the first usable picture, uploading photos when storage exists.
func (s *adService) imageURL(ctx context.Context, params AdParams) (string, error) {
	var urls []string
	if s.Photos != nil {
		for _, photo := range params.Photos {
			url, err := s.Photos.Upload(ctx, photo.FileName, photo.Data)
			if err != nil {
				return "", fmt.Errorf("failed to upload photo %s: %w", photo.FileName, err)
			}
			urls = append(urls, url)
		}
	} else if len(params.Photos) > 0 {
		s.log.Warnf("Photo storage disabled, ignoring %d uploaded photos", len(params.Photos))
	}
	for _, u := range params.ImageURLs {
		if strings.TrimSpace(u) != "" {
			urls = append(urls, u)
		}
	}
	if len(urls) == 0 {
		return "", nil
	}
	return urls[0], nil
}

func (s *adService) PostAd(ctx context.Context, params AdParams) (*entity.Ad, *entity.Listing, error) {
	if err := params.validate(); err != nil {
		return nil, nil, err
	}
	user, err := s.Users.GetByID(ctx, s.CurrentUserID)
	if err != nil {
		return nil, nil, fmt.Errorf("current user: %w", err)
	}

	image, err := s.imageURL(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	if image == "" {
		image = seed.DefaultAdImage
	}

	ad := entity.Ad{
		ID:          s.Clock.NextID(),
		Title:       strings.TrimSpace(params.Title),
		Description: params.Description,
		Price:       entity.FormatPrice(params.Price),
		ImageURL:    image,
		Status:      entity.AdActive,
		Category:    params.Category,
		Location:    params.Location,
		Sizes:       params.Sizes,
		Colors:      params.Colors,
		Material:    params.Material,
		Condition:   params.Condition,
	}
	listing := ad.ToListing(user.AsSeller())

	if err := s.Ads.Save(ctx, ad); err != nil {
		return nil, nil, fmt.Errorf("failed to save ad: %w", err)
	}
	if err := s.Listings.Save(ctx, listing); err != nil {
		return nil, nil, fmt.Errorf("failed to save listing: %w", err)
	}

	activity := entity.RecentActivity{
		ID:          ad.ID,
		Type:        entity.ActivityNewListing,
		Description: "posted a new listing.",
		Timestamp:   "Just now",
		Author:      &entity.ActivityAuthor{Name: user.Name, AvatarURL: user.AvatarURL},
		Listing:     &entity.ActivityListing{Title: ad.Title, ImageURL: ad.ImageURL},
	}
	if err := s.Activities.Save(ctx, activity); err != nil {
		s.log.Errorf("Failed to record activity for ad %d: %v", ad.ID, err)
	}

	s.Metrics.AdsPosted.Inc()
	if err := s.Publisher.Publish(ctx, nats.SubjectAdPosted, AdPostedEvent{
		AdID: ad.ID, SellerID: user.ID, Title: ad.Title, Price: ad.Price, Category: ad.Category,
	}); err != nil {
		s.log.Errorf("Failed to publish %s event: %v", nats.SubjectAdPosted, err)
	}

	s.log.Infof("Posted new ad %d", ad.ID)
	return &ad, &listing, nil
}

// UpdateAd replaces the editable fields of an ad and mirrors them onto its
// listing. An empty status keeps the current one.
func (s *adService) UpdateAd(ctx context.Context, id int64, params AdParams, status entity.AdStatus) (*entity.Ad, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	switch status {
	case "", entity.AdActive, entity.AdSold, entity.AdPending:
	default:
		return nil, fmt.Errorf("%w: unknown ad status %q", entity.ErrInvalidInput, status)
	}

	ad, err := s.Ads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	image, err := s.imageURL(ctx, params)
	if err != nil {
		return nil, err
	}
	if image != "" {
		ad.ImageURL = image
	}
	ad.Title = strings.TrimSpace(params.Title)
	ad.Description = params.Description
	ad.Price = entity.FormatPrice(params.Price)
	ad.Category = params.Category
	ad.Location = params.Location
	ad.Sizes = params.Sizes
	ad.Colors = params.Colors
	ad.Material = params.Material
	ad.Condition = params.Condition
	if status != "" {
		ad.Status = status
	}
	if err := s.Ads.Save(ctx, *ad); err != nil {
		return nil, fmt.Errorf("failed to save ad: %w", err)
	}

	listing, err := s.Listings.GetByID(ctx, id)
	if err != nil {
		s.log.Warnf("Ad %d has no listing to update: %v", id, err)
		return ad, nil
	}
	listing.Title = ad.Title
	listing.Description = ad.Description
	listing.Price = ad.Price
	listing.ImageURL = ad.ImageURL
	listing.Category = ad.Category
	listing.Location = ad.Location
	listing.Sizes = ad.Sizes
	listing.Colors = ad.Colors
	listing.Material = ad.Material
	listing.Condition = ad.Condition
	if ad.Status == entity.AdSold {
		listing.Status = entity.ListingSold
	} else {
		listing.Status = entity.ListingAvailable
	}
	if err := s.Listings.Save(ctx, *listing); err != nil {
		return nil, fmt.Errorf("failed to save listing: %w", err)
	}
	s.log.Infof("Updated ad %d", id)
	return ad, nil
}

func (s *adService) ListAds(ctx context.Context) ([]entity.Ad, error) {
	return s.Ads.List(ctx)
}

// TogglePromotion flips the promoted flag of a listing and of the ad sharing its id.
func (s *adService) TogglePromotion(ctx context.Context, id int64) (*entity.Listing, error) {
	listing, err := s.Listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	listing.IsPromoted = !listing.IsPromoted
	if err := s.Listings.Save(ctx, *listing); err != nil {
		return nil, fmt.Errorf("failed to save listing: %w", err)
	}

	if ad, err := s.Ads.GetByID(ctx, id); err == nil {
		ad.IsPromoted = !ad.IsPromoted
		if err := s.Ads.Save(ctx, *ad); err != nil {
			return nil, fmt.Errorf("failed to save ad: %w", err)
		}
	}

	s.log.Infof("Toggled promotion status for listing %d to %t", id, listing.IsPromoted)
	return listing, nil
}
