package services

import (
	"context"
	"errors"
	"fmt"

	"chatapp/internal/domain/chat"
	"chatapp/internal/domain/user"
	"chatapp/internal/repository"
	chatapp_errors "chatapp/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatService handles direct chat lookup and creation.
type ChatService struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

func NewChatService(chatRepo repository.ChatRepository, userRepo repository.UserRepository) *ChatService {
	return &ChatService{chatRepo: chatRepo, userRepo: userRepo}
}

// DirectChatResult is a chat with its participants resolved to minimal
// profiles.
type DirectChatResult struct {
	Chat  chat.Chat
	Users []user.Profile
}

// FindOrCreateDirectChat returns the unique non-group chat between the
// two users, creating it on first contact. The second return value
// reports whether the chat was created by this call.
func (s *ChatService) FindOrCreateDirectChat(ctx context.Context, userID, otherUserID string) (DirectChatResult, bool, error) {
	if userID == "" || otherUserID == "" {
		return DirectChatResult{}, false, chatapp_errors.ErrInvalidInput
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return DirectChatResult{}, false, chatapp_errors.ErrInvalidInput
	}
	otherID, err := primitive.ObjectIDFromHex(otherUserID)
	if err != nil {
		return DirectChatResult{}, false, chatapp_errors.ErrInvalidInput
	}
	if id == otherID {
		return DirectChatResult{}, false, chatapp_errors.ErrInvalidInput
	}

	existing, err := s.chatRepo.GetDirectChat(ctx, id, otherID)
	if err == nil {
		return s.resolve(ctx, existing, false)
	}
	if !errors.Is(err, chatapp_errors.ErrNotFound) {
		return DirectChatResult{}, false, fmt.Errorf("%w: %v", chatapp_errors.ErrPersistence, err)
	}

	newChat := &chat.Chat{
		ChatName:    chat.DefaultDirectChatName,
		IsGroupChat: false,
		Users:       chat.SortUserPair(id, otherID),
		PairKey:     chat.PairKeyFor(id, otherID),
	}
	if err := s.chatRepo.Create(ctx, newChat); err != nil {
		if errors.Is(err, chatapp_errors.ErrAlreadyExists) {
			// Lost a concurrent first-contact race; the winner's chat
			// is the one to return.
			existing, err := s.chatRepo.GetDirectChat(ctx, id, otherID)
			if err != nil {
				return DirectChatResult{}, false, fmt.Errorf("%w: %v", chatapp_errors.ErrPersistence, err)
			}
			return s.resolve(ctx, existing, false)
		}
		return DirectChatResult{}, false, fmt.Errorf("%w: %v", chatapp_errors.ErrPersistence, err)
	}

	created, err := s.chatRepo.GetByID(ctx, newChat.ID)
	if err != nil {
		return DirectChatResult{}, false, fmt.Errorf("%w: %v", chatapp_errors.ErrPersistence, err)
	}
	return s.resolve(ctx, created, true)
}

func (s *ChatService) resolve(ctx context.Context, c chat.Chat, created bool) (DirectChatResult, bool, error) {
	users, err := s.userRepo.GetUsersByIDs(ctx, c.Users)
	if err != nil {
		return DirectChatResult{}, false, fmt.Errorf("%w: %v", chatapp_errors.ErrPersistence, err)
	}

	profiles := make([]user.Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.ToProfile())
	}

	return DirectChatResult{Chat: c, Users: profiles}, created, nil
}
