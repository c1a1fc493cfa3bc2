package repository

import (
	"context"
	"errors"
	"time"

	"chatapp/internal/domain/chat"
	chatapp_errors "chatapp/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoChatRepository struct {
	collection *mongo.Collection
}

func NewChatRepository(db *mongo.Database) ChatRepository {
	return &MongoChatRepository{collection: db.Collection("chats")}
}

func (r *MongoChatRepository) Create(ctx context.Context, c *chat.Chat) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return chatapp_errors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *MongoChatRepository) GetByID(ctx context.Context, id primitive.ObjectID) (chat.Chat, error) {
	var c chat.Chat
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return chat.Chat{}, chatapp_errors.ErrNotFound
		}
		return chat.Chat{}, err
	}
	return c, nil
}

func (r *MongoChatRepository) GetDirectChat(ctx context.Context, userID1, userID2 primitive.ObjectID) (chat.Chat, error) {
	filter := bson.M{
		"isGroupChat": false,
		"users": bson.M{
			"$all":  []primitive.ObjectID{userID1, userID2},
			"$size": 2,
		},
	}

	var c chat.Chat
	err := r.collection.FindOne(ctx, filter).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return chat.Chat{}, chatapp_errors.ErrNotFound
		}
		return chat.Chat{}, err
	}
	return c, nil
}
