package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	conversationCollectionName = "conversations"
	maxUpdateAttempts          = 5
)

type ConversationRepository struct {
	collection *mongo.Collection
	log        logger.Logger
}

func NewConversationRepository(client *mongo.Client, cfg config.MongoDBConfig, log logger.Logger) *ConversationRepository {
	return &ConversationRepository{
		collection: client.Database(cfg.Database).Collection(conversationCollectionName),
		log:        log,
	}
}

// EnsureIndexes creates the unique id index and the item lookup index.
func (r *ConversationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "item.id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create conversation indexes: %w", err)
	}
	return nil
}

// SeedIfEmpty inserts convs only into an empty collection.
func (r *ConversationRepository) SeedIfEmpty(ctx context.Context, convs []*entity.Conversation) error {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count conversations: %w", err)
	}
	if n > 0 || len(convs) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(convs))
	for _, c := range convs {
		doc := c.Clone()
		doc.Version = 1
		docs = append(docs, doc)
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed conversations: %w", err)
	}
	r.log.Infof("Seeded %d conversations into mongodb", len(docs))
	return nil
}

func (r *ConversationRepository) GetByID(ctx context.Context, id int64) (*entity.Conversation, error) {
	var conv entity.Conversation
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&conv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("conversation %d: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get conversation by ID %d: %w", id, err)
	}
	return conv.Clone(), nil
}

func (r *ConversationRepository) List(ctx context.Context) ([]*entity.Conversation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list conversations: %v", repository.ErrQueryFailed, err)
	}
	defer cursor.Close(ctx)

	out := make([]*entity.Conversation, 0)
	for cursor.Next(ctx) {
		var conv entity.Conversation
		if err := cursor.Decode(&conv); err != nil {
			return nil, fmt.Errorf("failed to decode conversation: %w", err)
		}
		out = append(out, conv.Clone())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: cursor error: %v", repository.ErrQueryFailed, err)
	}
	return out, nil
}

func (r *ConversationRepository) FindByItemID(ctx context.Context, itemID int64) (*entity.Conversation, error) {
	var conv entity.Conversation
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: 1}})
	err := r.collection.FindOne(ctx, bson.M{"item.id": itemID}, opts).Decode(&conv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("conversation for listing %d: %w", itemID, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find conversation for listing %d: %w", itemID, err)
	}
	return conv.Clone(), nil
}

func (r *ConversationRepository) Save(ctx context.Context, conv *entity.Conversation) error {
	doc := conv.Clone()
	doc.Version++
	_, err := r.collection.ReplaceOne(ctx, bson.M{"id": conv.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("conversation %d: %w", conv.ID, repository.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to save conversation %d: %w", conv.ID, err)
	}
	return nil
}

// Update is an optimistic read-modify-write: the replace only matches the
// version that was read, and a lost race is retried from a fresh read.
func (r *ConversationRepository) Update(ctx context.Context, id int64, fn repository.ConversationMutation) (*entity.Conversation, error) {
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		conv, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		readVersion := conv.Version
		if err := fn(conv); err != nil {
			return nil, err
		}
		conv.Version = readVersion + 1

		result, err := r.collection.ReplaceOne(ctx, bson.M{"id": id, "version": readVersion}, conv)
		if err != nil {
			return nil, fmt.Errorf("%w: conversation %d: %v", repository.ErrUpdateFailed, id, err)
		}
		if result.MatchedCount == 1 {
			return conv, nil
		}
		r.log.Debugf("Optimistic lock conflict on conversation %d (attempt %d)", id, attempt)
	}
	return nil, fmt.Errorf("conversation %d: %w", id, repository.ErrOptimisticLock)
}
