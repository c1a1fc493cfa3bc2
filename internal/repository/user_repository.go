package repository

import (
	"context"
	"errors"
	"time"

	"chatapp/internal/domain/user"
	chatapp_errors "chatapp/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

func (r *MongoUserRepository) Create(ctx context.Context, u *user.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return chatapp_errors.ErrDuplicateAccount
		}
		return err
	}
	return nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (user.User, error) {
	var u user.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, chatapp_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *MongoUserRepository) FindByAnyIdentity(ctx context.Context, username, email, mobile string) (user.User, error) {
	var conditions []bson.M
	if username != "" {
		conditions = append(conditions, bson.M{"username": username})
	}
	if email != "" {
		conditions = append(conditions, bson.M{"email": email})
	}
	if mobile != "" {
		conditions = append(conditions, bson.M{"mobile": mobile})
	}
	if len(conditions) == 0 {
		return user.User{}, chatapp_errors.ErrInvalidInput
	}

	var u user.User
	err := r.collection.FindOne(ctx, bson.M{"$or": conditions}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, chatapp_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *MongoUserRepository) FindByIdentifier(ctx context.Context, identifier string) (user.User, error) {
	filter := bson.M{"$or": []bson.M{
		{"username": identifier},
		{"mobile": identifier},
	}}

	var u user.User
	err := r.collection.FindOne(ctx, filter).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, chatapp_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *MongoUserRepository) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]user.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var users []user.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
