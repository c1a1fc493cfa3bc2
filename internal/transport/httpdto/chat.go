package httpdto

// DirectChatRequest is used for POST /v1/chats/direct
type DirectChatRequest struct {
	UserID      string `json:"userId" binding:"required"`
	OtherUserID string `json:"otherUserId" binding:"required"`
}

// ChatResponse represents a chat with resolved participants.
type ChatResponse struct {
	ID          string          `json:"id"`
	ChatName    string          `json:"chatName"`
	IsGroupChat bool            `json:"isGroupChat"`
	Users       []ChatMemberDTO `json:"users"`
}

// ChatMemberDTO is the minimal participant view embedded in chats.
type ChatMemberDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}
