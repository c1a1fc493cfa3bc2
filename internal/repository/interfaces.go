package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chatapp/internal/domain/chat"
	"chatapp/internal/domain/user"
)

// UserRepository is the identity directory: lookup and insert of user
// records by their identity fields.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetUserByID(ctx context.Context, id primitive.ObjectID) (user.User, error)
	// FindByAnyIdentity returns a user matching any of the given
	// username, email, or mobile. Empty arguments are ignored.
	FindByAnyIdentity(ctx context.Context, username, email, mobile string) (user.User, error)
	// FindByIdentifier resolves a login identifier, matching either
	// username or mobile.
	FindByIdentifier(ctx context.Context, identifier string) (user.User, error)
	GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]user.User, error)
}

// ChatRepository persists chat records.
type ChatRepository interface {
	Create(ctx context.Context, c *chat.Chat) error
	GetByID(ctx context.Context, id primitive.ObjectID) (chat.Chat, error)
	// GetDirectChat finds the non-group chat whose user set is exactly
	// the given pair, in either order.
	GetDirectChat(ctx context.Context, userID1, userID2 primitive.ObjectID) (chat.Chat, error)
}
