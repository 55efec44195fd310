package memory

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapMirror struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapMirror() *mapMirror {
	return &mapMirror{data: make(map[string][]byte)}
}

func (m *mapMirror) Load(_ context.Context, key string, dst interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *mapMirror) Save(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
	return nil
}

func newSeededStore(t *testing.T, mirror repository.Mirror) *Store {
	t.Helper()
	s := NewStore(mirror, logger.NewNop())
	require.NoError(t, s.Bootstrap(context.Background(), seed.Initial()))
	return s
}

func TestConversationUpdate_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	repo := newSeededStore(t, nil).Conversations()

	updated, err := repo.Update(ctx, 3, func(c *entity.Conversation) error {
		return c.AppendMessage(entity.Message{ID: 100, Text: "hello", Sender: entity.PartyMe, Type: entity.MessageText})
	})
	require.NoError(t, err)
	assert.Len(t, updated.Messages, 2)

	stored, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, stored.Messages, 2)
}

func TestConversationUpdate_FailureLeavesNoPartialState(t *testing.T) {
	ctx := context.Background()
	repo := newSeededStore(t, nil).Conversations()
	boom := errors.New("boom")

	_, err := repo.Update(ctx, 3, func(c *entity.Conversation) error {
		c.MarkPaid()
		c.Messages = nil
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPending, stored.PaymentStatus)
	assert.Len(t, stored.Messages, 1)
}

func TestConversationUpdate_NotFound(t *testing.T) {
	repo := newSeededStore(t, nil).Conversations()

	_, err := repo.Update(context.Background(), 404, func(*entity.Conversation) error { return nil })

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestConversationUpdate_SerializedPerConversation(t *testing.T) {
	ctx := context.Background()
	repo := newSeededStore(t, nil).Conversations()
	const writers = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Update(ctx, 2, func(c *entity.Conversation) error {
				return c.AppendMessage(entity.Message{ID: int64(1000 + i), Text: "ping", Sender: entity.PartyMe, Type: entity.MessageText})
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	stored, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, stored.Messages, writers+1)
}

func TestConversationRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := newSeededStore(t, nil).Conversations()

	conv, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	conv.Messages[0].Text = "tampered"

	again, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", again.Messages[0].Text)
}

func TestConversationRepository_FindByItemID(t *testing.T) {
	repo := newSeededStore(t, nil).Conversations()

	conv, err := repo.FindByItemID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), conv.ID)

	_, err = repo.FindByItemID(context.Background(), 9)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListingRepository_SavePrependsNew(t *testing.T) {
	ctx := context.Background()
	repo := newSeededStore(t, nil).Listings()

	require.NoError(t, repo.Save(ctx, entity.Listing{ID: 77, Title: "Lamp", Price: "$10"}))
	require.NoError(t, repo.Save(ctx, entity.Listing{ID: 1, Title: "Renamed jacket", Price: "$120.00"}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(77), all[0].ID)
	assert.Equal(t, "Renamed jacket", all[1].Title)
	assert.Len(t, all, 10)
}

func TestAddressRepository_DefaultIsExclusive(t *testing.T) {
	ctx := context.Background()
	repo := newSeededStore(t, nil).Addresses()

	require.NoError(t, repo.Save(ctx, entity.Address{ID: 3, Type: entity.AddressOther, FullName: "Alex", IsDefault: true}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	defaults := 0
	for _, a := range all {
		if a.IsDefault {
			defaults++
			assert.Equal(t, int64(3), a.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestChatRepository_DeleteByName(t *testing.T) {
	repo := newSeededStore(t, nil).Chats()

	n, err := repo.DeleteByName(context.Background(), "Jane Smith")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = repo.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBootstrap_WritesSeedToFreshMirror(t *testing.T) {
	mirror := newMapMirror()
	newSeededStore(t, mirror)

	var initialized bool
	found, err := mirror.Load(context.Background(), KeyInitialized, &initialized)
	require.NoError(t, err)
	assert.True(t, found && initialized)

	var items []entity.Listing
	found, err = mirror.Load(context.Background(), KeyItems, &items)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, items, 9)
}

func TestBootstrap_RestoresFromMirror(t *testing.T) {
	ctx := context.Background()
	mirror := newMapMirror()

	first := newSeededStore(t, mirror)
	_, err := first.Conversations().Update(ctx, 3, func(c *entity.Conversation) error {
		c.MarkPaid()
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, first.Listings().Delete(ctx, 9))

	second := newSeededStore(t, mirror)

	conv, err := second.Conversations().GetByID(ctx, 3)
	require.NoError(t, err)
	assert.True(t, conv.IsPaid())
	_, err = second.Listings().GetByID(ctx, 9)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
