package service

import (
	"context"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/memory"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/clock"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/seed"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, subject string, message interface{}) error {
	args := m.Called(ctx, subject, message)
	return args.Error(0)
}

func (m *MockPublisher) PublishRaw(ctx context.Context, subject string, data []byte) error {
	args := m.Called(ctx, subject, data)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, typ entity.NotificationType, text string, relatedID int64) (*entity.Notification, error) {
	args := m.Called(ctx, typ, text, relatedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Notification), args.Error(1)
}

func fixedClock() clock.Clock {
	at := time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)
	return clock.NewWithSource(func() time.Time { return at })
}

func newSeededStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore(nil, logger.NewNop())
	require.NoError(t, store.Bootstrap(context.Background(), seed.Initial()))
	return store
}
