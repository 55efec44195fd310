package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
)

// ConversationMutation changes a conversation in place. Returning an error
// discards every change the function made.
type ConversationMutation func(conv *entity.Conversation) error

type ConversationRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Conversation, error)
	List(ctx context.Context) ([]*entity.Conversation, error)
	FindByItemID(ctx context.Context, itemID int64) (*entity.Conversation, error)
	Save(ctx context.Context, conv *entity.Conversation) error
	// Update applies fn to the stored conversation. Updates of the same id are
	// serialized and either fully committed or not at all.
	Update(ctx context.Context, id int64, fn ConversationMutation) (*entity.Conversation, error)
}

type ChatRepository interface {
	List(ctx context.Context) ([]entity.ChatSummary, error)
	GetByID(ctx context.Context, id int64) (*entity.ChatSummary, error)
	Save(ctx context.Context, chat entity.ChatSummary) error
	DeleteByName(ctx context.Context, name string) (int, error)
}
