package dao

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/ezeflt/horizon-ai/errs"
	"github.com/ezeflt/horizon-ai/models"
)

// DefaultHistoryLimit caps how many trailing messages a history read
// returns when the caller does not ask for a specific bound.
const DefaultHistoryLimit = 50

// ConversationStore owns per-user conversation documents. Append must be
// an atomic push against the persisted sequence so concurrent appends
// for one user never lose messages.
type ConversationStore interface {
	// GetHistory returns the most recent limit messages, oldest first.
	// A missing conversation yields an empty slice, not an error.
	GetHistory(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error)

	// Append creates the conversation if absent and pushes one message
	// with a fresh timestamp to the end of the sequence.
	Append(ctx context.Context, userID, role, content string) error
}

// ConversationDAO is the MongoDB-backed ConversationStore.
type ConversationDAO struct {
	coll *mongo.Collection
}

// NewConversationDAO builds the store on the given database handle and
// ensures the user_id index exists.
func NewConversationDAO(ctx context.Context, db *mongo.Database) (*ConversationDAO, error) {
	coll := db.Collection("conversations")

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "updated_at", Value: -1}}},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, errs.Wrap(errs.KindStorage, "failed to create conversation indexes", err)
	}

	return &ConversationDAO{coll: coll}, nil
}

func (d *ConversationDAO) GetHistory(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	// $slice with a negative count reads the tail of the array without
	// pulling the whole document over the wire.
	projection := bson.M{"messages": bson.M{"$slice": -limit}}

	var convo models.Conversation
	err := d.coll.FindOne(ctx, bson.M{"user_id": userID}, options.FindOne().SetProjection(projection)).Decode(&convo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []models.ChatMessage{}, nil
		}
		return nil, errs.Wrap(errs.KindStorage, "failed to read conversation history", err)
	}

	if convo.Messages == nil {
		return []models.ChatMessage{}, nil
	}
	return convo.Messages, nil
}

func (d *ConversationDAO) Append(ctx context.Context, userID, role, content string) error {
	now := time.Now()
	msg := models.ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: now,
	}

	// Single upsert: creates the document on first message, pushes
	// atomically afterwards. Never read-modify-write the whole document.
	update := bson.M{
		"$push":        bson.M{"messages": msg},
		"$set":         bson.M{"updated_at": now},
		"$setOnInsert": bson.M{"user_id": userID, "created_at": now},
	}

	_, err := d.coll.UpdateOne(ctx, bson.M{"user_id": userID}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return errs.Wrap(errs.KindStorage, "failed to append message to conversation", err)
	}
	return nil
}
