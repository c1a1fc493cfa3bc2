package handler

import (
	"net/http"

	"chatapp/internal/services"
	"chatapp/internal/transport/httpdto"
	"chatapp/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles chat HTTP endpoints.
type ChatHandler struct {
	service *services.ChatService
	logger  *logger.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(service *services.ChatService, l *logger.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: l}
}

// CreateOrGetDirectChat returns the one-on-one chat between two users,
// creating it on first contact. 201 signals the chat was created by
// this request, 200 that it already existed.
func (h *ChatHandler) CreateOrGetDirectChat(c *gin.Context) {
	var req httpdto.DirectChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("userId and otherUserId are required", "INVALID_REQUEST"))
		return
	}

	res, created, err := h.service.FindOrCreateDirectChat(c.Request.Context(), req.UserID, req.OtherUserID)
	if err != nil {
		if h.logger != nil {
			h.logger.ErrorfCtx(c.Request.Context(), "direct chat request failed: %s", err.Error())
		}
		status := services.HTTPStatus(err)
		c.JSON(status, httpdto.NewErrorResponse(services.UserMessage(err), errorCode(status)))
		return
	}

	members := make([]httpdto.ChatMemberDTO, 0, len(res.Users))
	for _, u := range res.Users {
		members = append(members, httpdto.ChatMemberDTO{
			ID:       u.ID.Hex(),
			Username: u.Username,
			FullName: u.FullName,
		})
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, httpdto.NewSuccessResponse(httpdto.ChatResponse{
		ID:          res.Chat.ID.Hex(),
		ChatName:    res.Chat.ChatName,
		IsGroupChat: res.Chat.IsGroupChat,
		Users:       members,
	}))
}
