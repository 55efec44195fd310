package service

import (
	"context"
	"testing"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationService(t *testing.T) NotificationService {
	store := newSeededStore(t)
	return NewNotificationService(store.Notifications(), fixedClock(), logger.NewNop())
}

func TestNotificationService_NotifyPrepends(t *testing.T) {
	svc := newNotificationService(t)
	ctx := context.Background()

	n, err := svc.Notify(ctx, entity.NotificationOffer, "New offer", 3)
	require.NoError(t, err)
	assert.False(t, n.Read)
	assert.Equal(t, "2:30 PM", n.Timestamp)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, n.ID, all[0].ID)
	assert.Equal(t, int64(3), all[0].RelatedID)
}

func TestNotificationService_MarkRead(t *testing.T) {
	svc := newNotificationService(t)
	ctx := context.Background()

	count, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	n, err := svc.MarkRead(ctx, 1)
	require.NoError(t, err)
	assert.True(t, n.Read)

	_, err = svc.MarkRead(ctx, 1)
	require.NoError(t, err, "marking twice is harmless")

	count, _ = svc.UnreadCount(ctx)
	assert.Equal(t, 2, count)

	_, err = svc.MarkRead(ctx, 404)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	svc := newNotificationService(t)
	ctx := context.Background()

	marked, err := svc.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, marked)

	count, _ := svc.UnreadCount(ctx)
	assert.Zero(t, count)

	all, _ := svc.List(ctx)
	assert.Equal(t, int64(1), all[0].ID, "order is kept")
}
