package services

import (
	"context"
	"strings"

	"chatapp/internal/domain/chat"
	"chatapp/internal/domain/user"
	chatapp_errors "chatapp/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	users []user.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
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

func (r *fakeUserRepo) GetUserByID(_ context.Context, id primitive.ObjectID) (user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, chatapp_errors.ErrNotFound
}

func (r *fakeUserRepo) FindByAnyIdentity(_ context.Context, username, email, mobile string) (user.User, error) {
	for _, u := range r.users {
		if (username != "" && u.Username == username) ||
			(email != "" && u.Email == email) ||
			(mobile != "" && u.Mobile == mobile) {
			return u, nil
		}
	}
	return user.User{}, chatapp_errors.ErrNotFound
}

func (r *fakeUserRepo) FindByIdentifier(_ context.Context, identifier string) (user.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.Mobile == identifier {
			return u, nil
		}
	}
	return user.User{}, chatapp_errors.ErrNotFound
}

func (r *fakeUserRepo) GetUsersByIDs(_ context.Context, ids []primitive.ObjectID) ([]user.User, error) {
	var result []user.User
	for _, id := range ids {
		for _, u := range r.users {
			if u.ID == id {
				result = append(result, u)
			}
		}
	}
	return result, nil
}

type sentMessage struct {
	to   string
	body string
}

type fakeSMSClient struct {
	sent     []sentMessage
	failWith error
}

func (c *fakeSMSClient) SendSMS(_ context.Context, to, message string) error {
	if c.failWith != nil {
		return c.failWith
	}
	c.sent = append(c.sent, sentMessage{to: to, body: message})
	return nil
}

// lastCode extracts the OTP from the most recent message body.
func (c *fakeSMSClient) lastCode() string {
	if len(c.sent) == 0 {
		return ""
	}
	body := c.sent[len(c.sent)-1].body
	return body[strings.LastIndex(body, " ")+1:]
}

type fakeChatRepo struct {
	chats     []chat.Chat
	createErr error

	// lookupMisses forces that many GetDirectChat calls to report
	// ErrNotFound, simulating a chat inserted between lookup and create.
	lookupMisses int
}

func (r *fakeChatRepo) Create(_ context.Context, c *chat.Chat) error {
	if r.createErr != nil {
		return r.createErr
	}
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

func (r *fakeChatRepo) GetByID(_ context.Context, id primitive.ObjectID) (chat.Chat, error) {
	for _, c := range r.chats {
		if c.ID == id {
			return c, nil
		}
	}
	return chat.Chat{}, chatapp_errors.ErrNotFound
}

func (r *fakeChatRepo) GetDirectChat(_ context.Context, userID1, userID2 primitive.ObjectID) (chat.Chat, error) {
	if r.lookupMisses > 0 {
		r.lookupMisses--
		return chat.Chat{}, chatapp_errors.ErrNotFound
	}
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
