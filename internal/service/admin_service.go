package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
)

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type Dashboard struct {
	TotalUsers     int                     `json:"total_users"`
	TotalListings  int                     `json:"total_listings"`
	ActiveListings int                     `json:"active_listings"`
	SoldListings   int                     `json:"sold_listings"`
	CategoryCounts []CategoryCount         `json:"category_counts"`
	Activities     []entity.RecentActivity `json:"activities"`
}

// AdminService holds the moderation operations. Every call names the acting
// user, who must be an administrator.
type AdminService interface {
	Dashboard(ctx context.Context, actorID int64) (*Dashboard, error)
	ListUsers(ctx context.Context, actorID int64) ([]entity.User, error)
	DeleteListing(ctx context.Context, actorID, listingID int64) error
	DeleteUser(ctx context.Context, actorID, userID int64) error
	ToggleAdmin(ctx context.Context, actorID, userID int64) (*entity.User, error)
	TogglePromotion(ctx context.Context, actorID, listingID int64) (*entity.Listing, error)
}

type AdminDeps struct {
	Users      repository.UserRepository
	Listings   repository.ListingRepository
	Ads        repository.AdRepository
	Chats      repository.ChatRepository
	Activities repository.ActivityRepository
	AdService  AdService
}

type adminService struct {
	AdminDeps
	log logger.Logger
}

func NewAdminService(deps AdminDeps, log logger.Logger) AdminService {
	return &adminService{AdminDeps: deps, log: log}
}

func (s *adminService) authorize(ctx context.Context, actorID int64) error {
	actor, err := s.Users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("%w: unknown user %d", entity.ErrForbidden, actorID)
		}
		return err
	}
	if !actor.IsAdmin {
		s.log.Warnf("User %d attempted an admin action", actorID)
		return fmt.Errorf("%w: user %d is not an administrator", entity.ErrForbidden, actorID)
	}
	return nil
}

func (s *adminService) Dashboard(ctx context.Context, actorID int64) (*Dashboard, error) {
	if err := s.authorize(ctx, actorID); err != nil {
		return nil, err
	}
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	listings, err := s.Listings.List(ctx)
	if err != nil {
		return nil, err
	}
	ads, err := s.Ads.List(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := s.Activities.List(ctx)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		TotalUsers:    len(users),
		TotalListings: len(listings),
		Activities:    activities,
	}
	for _, ad := range ads {
		switch ad.Status {
		case entity.AdActive:
			d.ActiveListings++
		case entity.AdSold:
			d.SoldListings++
		}
	}
	d.CategoryCounts = countCategories(listings)
	return d, nil
}

// countCategories orders by count descending, then by name.
func countCategories(listings []entity.Listing) []CategoryCount {
	counts := make(map[string]int)
	for _, l := range listings {
		counts[l.Category]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for category, n := range counts {
		out = append(out, CategoryCount{Category: category, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func (s *adminService) ListUsers(ctx context.Context, actorID int64) ([]entity.User, error) {
	if err := s.authorize(ctx, actorID); err != nil {
		return nil, err
	}
	return s.Users.List(ctx)
}

// DeleteListing removes a listing and the ad sharing its id.
func (s *adminService) DeleteListing(ctx context.Context, actorID, listingID int64) error {
	if err := s.authorize(ctx, actorID); err != nil {
		return err
	}
	if err := s.Listings.Delete(ctx, listingID); err != nil {
		return err
	}
	if err := s.Ads.Delete(ctx, listingID); err != nil && !errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("failed to delete ad %d: %w", listingID, err)
	}
	s.log.Infof("Admin %d deleted listing %d", actorID, listingID)
	return nil
}

// DeleteUser removes a user with their listings, the ads of those listings and
// the chats carrying their name.
func (s *adminService) DeleteUser(ctx context.Context, actorID, userID int64) error {
	if err := s.authorize(ctx, actorID); err != nil {
		return err
	}
	if actorID == userID {
		return fmt.Errorf("%w: administrators cannot delete themselves", entity.ErrForbidden)
	}
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	listings, err := s.Listings.List(ctx)
	if err != nil {
		return err
	}
	// Collect before deleting: ads are matched through the seller's listings.
	var owned []int64
	for _, l := range listings {
		if l.Seller.ID == userID {
			owned = append(owned, l.ID)
		}
	}

	if err := s.Users.Delete(ctx, userID); err != nil {
		return err
	}
	for _, id := range owned {
		if err := s.Listings.Delete(ctx, id); err != nil && !errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("failed to delete listing %d: %w", id, err)
		}
		if err := s.Ads.Delete(ctx, id); err != nil && !errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("failed to delete ad %d: %w", id, err)
		}
	}
	removedChats, err := s.Chats.DeleteByName(ctx, user.Name)
	if err != nil {
		return fmt.Errorf("failed to delete chats of %s: %w", user.Name, err)
	}

	s.log.Infof("Admin %d deleted user %d with %d listings and %d chats", actorID, userID, len(owned), removedChats)
	return nil
}

func (s *adminService) ToggleAdmin(ctx context.Context, actorID, userID int64) (*entity.User, error) {
	if err := s.authorize(ctx, actorID); err != nil {
		return nil, err
	}
	if actorID == userID {
		return nil, fmt.Errorf("%w: administrators cannot change their own role", entity.ErrForbidden)
	}
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.IsAdmin = !user.IsAdmin
	if err := s.Users.Save(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to save user %d: %w", userID, err)
	}
	s.log.Infof("Admin %d set admin status of user %d to %t", actorID, userID, user.IsAdmin)
	return user, nil
}

func (s *adminService) TogglePromotion(ctx context.Context, actorID, listingID int64) (*entity.Listing, error) {
	if err := s.authorize(ctx, actorID); err != nil {
		return nil, err
	}
	return s.AdService.TogglePromotion(ctx, listingID)
}
