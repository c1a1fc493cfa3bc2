package handler

import (
	"context"
	"strings"

	"chatapp/internal/domain/chat"
	"chatapp/internal/domain/user"
	chatapp_errors "chatapp/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubUserRepo struct {
	users []user.User
}

func (r *stubUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username || existing.Email == u.Email || existing.Mobile == u.Mobile {
			return chatapp_errors.ErrDuplicateAccount
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users = append(r.users, *u)
	return nil
}

func (r *stubUserRepo) GetUserByID(_ context.Context, id primitive.ObjectID) (user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, chatapp_errors.ErrNotFound
}

func (r *stubUserRepo) FindByAnyIdentity(_ context.Context, username, email, mobile string) (user.User, error) {
	for _, u := range r.users {
		if (username != "" && u.Username == username) ||
			(email != "" && u.Email == email) ||
			(mobile != "" && u.Mobile == mobile) {
			return u, nil
		}
	}
	return user.User{}, chatapp_errors.ErrNotFound
}

func (r *stubUserRepo) FindByIdentifier(_ context.Context, identifier string) (user.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.Mobile == identifier {
			return u, nil
		}
	}
	return user.User{}, chatapp_errors.ErrNotFound
}

func (r *stubUserRepo) GetUsersByIDs(_ context.Context, ids []primitive.ObjectID) ([]user.User, error) {
	var out []user.User
	for _, id := range ids {
		for _, u := range r.users {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

type stubChatRepo struct {
	chats []chat.Chat
}

func (r *stubChatRepo) Create(_ context.Context, c *chat.Chat) error {
	for _, existing := range r.chats {
		if existing.PairKey != "" && existing.PairKey == c.PairKey {
			return chatapp_errors.ErrAlreadyExists
		}
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	r.chats = append(r.chats, *c)
	return nil
}

func (r *stubChatRepo) GetByID(_ context.Context, id primitive.ObjectID) (chat.Chat, error) {
	for _, c := range r.chats {
		if c.ID == id {
			return c, nil
		}
	}
	return chat.Chat{}, chatapp_errors.ErrNotFound
}

func (r *stubChatRepo) GetDirectChat(_ context.Context, userID1, userID2 primitive.ObjectID) (chat.Chat, error) {
	for _, c := range r.chats {
		if c.IsGroupChat || len(c.Users) != 2 {
			continue
		}
		if (c.Users[0] == userID1 && c.Users[1] == userID2) ||
			(c.Users[0] == userID2 && c.Users[1] == userID1) {
			return c, nil
		}
	}
	return chat.Chat{}, chatapp_errors.ErrNotFound
}

type stubSMSClient struct {
	messages []string
	failWith error
}

func (c *stubSMSClient) SendSMS(_ context.Context, _, message string) error {
	if c.failWith != nil {
		return c.failWith
	}
	c.messages = append(c.messages, message)
	return nil
}

// lastCode pulls the OTP out of the most recent message body.
func (c *stubSMSClient) lastCode() string {
	if len(c.messages) == 0 {
		return ""
	}
	msg := c.messages[len(c.messages)-1]
	return msg[strings.LastIndex(msg, " ")+1:]
}
