package service

import (
	"context"
	"testing"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/memory"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminID = seed.CurrentUserID

func newAdminService(t *testing.T) (AdminService, *memory.Store) {
	t.Helper()
	store := newSeededStore(t)
	pub := new(MockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	log := logger.NewNop()
	ads := NewAdService(AdDeps{
		Ads:           store.Ads(),
		Listings:      store.Listings(),
		Users:         store.Users(),
		Activities:    store.Activities(),
		Publisher:     pub,
		Clock:         fixedClock(),
		Metrics:       metrics.NewMetricsManager("test"),
		CurrentUserID: seed.CurrentUserID,
	}, log)
	svc := NewAdminService(AdminDeps{
		Users:      store.Users(),
		Listings:   store.Listings(),
		Ads:        store.Ads(),
		Chats:      store.Chats(),
		Activities: store.Activities(),
		AdService:  ads,
	}, log)
	return svc, store
}

func TestAdminService_Dashboard(t *testing.T) {
	svc, _ := newAdminService(t)

	d, err := svc.Dashboard(context.Background(), adminID)

	require.NoError(t, err)
	assert.Equal(t, 6, d.TotalUsers)
	assert.Equal(t, 9, d.TotalListings)
	assert.Equal(t, 1, d.ActiveListings)
	assert.Equal(t, 1, d.SoldListings)
	assert.Len(t, d.Activities, 3)
	require.Len(t, d.CategoryCounts, 7)
	assert.Equal(t, CategoryCount{Category: "Electronics", Count: 2}, d.CategoryCounts[0])
	assert.Equal(t, CategoryCount{Category: "Fashion", Count: 2}, d.CategoryCounts[1])
	assert.Equal(t, CategoryCount{Category: "Bikes", Count: 1}, d.CategoryCounts[2])
}

func TestAdminService_RequiresAdmin(t *testing.T) {
	svc, _ := newAdminService(t)
	ctx := context.Background()

	_, err := svc.Dashboard(ctx, 1)
	assert.ErrorIs(t, err, entity.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteListing(ctx, 1, 3), entity.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteUser(ctx, 404, 2), entity.ErrForbidden)
	_, err = svc.ToggleAdmin(ctx, 2, 3)
	assert.ErrorIs(t, err, entity.ErrForbidden)
	_, err = svc.TogglePromotion(ctx, 2, 3)
	assert.ErrorIs(t, err, entity.ErrForbidden)
	_, err = svc.ListUsers(ctx, 5)
	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestAdminService_DeleteListingRemovesAd(t *testing.T) {
	svc, store := newAdminService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteListing(ctx, adminID, 3))

	_, err := store.Listings().GetByID(ctx, 3)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	_, err = store.Ads().GetByID(ctx, 3)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	require.NoError(t, svc.DeleteListing(ctx, adminID, 9), "listing without an ad")
	assert.ErrorIs(t, svc.DeleteListing(ctx, adminID, 9), entity.ErrNotFound)
}

func TestAdminService_DeleteUserCascades(t *testing.T) {
	svc, store := newAdminService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteUser(ctx, adminID, 1))

	_, err := store.Users().GetByID(ctx, 1)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	listings, _ := store.Listings().List(ctx)
	assert.Len(t, listings, 7)
	for _, l := range listings {
		assert.NotEqual(t, int64(1), l.Seller.ID)
	}
	ads, _ := store.Ads().List(ctx)
	assert.Len(t, ads, 2, "the jacket ad goes with its listing")
	chats, _ := store.Chats().List(ctx)
	assert.Len(t, chats, 4)
	for _, c := range chats {
		assert.NotEqual(t, "John Doe", c.Name)
	}
}

func TestAdminService_SelfProtection(t *testing.T) {
	svc, _ := newAdminService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteUser(ctx, adminID, adminID), entity.ErrForbidden)
	_, err := svc.ToggleAdmin(ctx, adminID, adminID)
	assert.ErrorIs(t, err, entity.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteUser(ctx, adminID, 404), entity.ErrNotFound)
}

func TestAdminService_ToggleAdmin(t *testing.T) {
	svc, store := newAdminService(t)
	ctx := context.Background()

	u, err := svc.ToggleAdmin(ctx, adminID, 2)
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)

	stored, _ := store.Users().GetByID(ctx, 2)
	assert.True(t, stored.IsAdmin)

	_, err = svc.Dashboard(ctx, 2)
	assert.NoError(t, err, "promoted user can open the dashboard")
}

func TestAdminService_TogglePromotion(t *testing.T) {
	svc, store := newAdminService(t)
	ctx := context.Background()

	l, err := svc.TogglePromotion(ctx, adminID, 1)

	require.NoError(t, err)
	assert.False(t, l.IsPromoted)
	ad, _ := store.Ads().GetByID(ctx, 1)
	assert.False(t, ad.IsPromoted)
}
