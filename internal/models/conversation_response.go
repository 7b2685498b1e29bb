package models

type ConversationResponse struct {
	ID      uint            `json:"id"`
	Members []*UserResponse `json:"members"`
	Preview string          `json:"preview"`
}

type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
	Page          int                    `json:"page"`
	Size          int                    `json:"size"`
	Total         int64                  `json:"total"`
}

type CreateConversationRequestBody struct {
	OtherUserID uint `json:"other_user_id"`
}
