package memory

import (
	"context"
	"sync"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
)

type conversationRepository struct {
	c *collection[*entity.Conversation]

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newConversationRepository(c *collection[*entity.Conversation]) *conversationRepository {
	return &conversationRepository{c: c, locks: make(map[int64]*sync.Mutex)}
}

func (r *conversationRepository) lockFor(id int64) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[id]
	if !ok {
		l = &sync.Mutex{}
		r.locks[id] = l
	}
	return l
}

func (r *conversationRepository) GetByID(_ context.Context, id int64) (*entity.Conversation, error) {
	conv, ok := r.c.get(id)
	if !ok {
		return nil, notFound("conversation", id)
	}
	return conv, nil
}

func (r *conversationRepository) List(_ context.Context) ([]*entity.Conversation, error) {
	return r.c.list(), nil
}

// FindByItemID returns the first conversation whose linked listing is itemID.
func (r *conversationRepository) FindByItemID(_ context.Context, itemID int64) (*entity.Conversation, error) {
	matches := r.c.filter(func(c *entity.Conversation) bool { return c.Item != nil && c.Item.ID == itemID })
	if len(matches) == 0 {
		return nil, notFound("conversation for listing", itemID)
	}
	return matches[0], nil
}

func (r *conversationRepository) Save(ctx context.Context, conv *entity.Conversation) error {
	l := r.lockFor(conv.ID)
	l.Lock()
	defer l.Unlock()
	r.c.upsert(ctx, conv, false)
	return nil
}

// Update runs fn on a private copy and commits the copy only when fn succeeds.
// The per-id lock makes the read-modify-write atomic for one conversation
// while different conversations proceed in parallel.
func (r *conversationRepository) Update(ctx context.Context, id int64, fn repository.ConversationMutation) (*entity.Conversation, error) {
	l := r.lockFor(id)
	l.Lock()
	defer l.Unlock()

	conv, ok := r.c.get(id)
	if !ok {
		return nil, notFound("conversation", id)
	}
	if err := fn(conv); err != nil {
		return nil, err
	}
	r.c.upsert(ctx, conv, false)
	return conv.Clone(), nil
}
