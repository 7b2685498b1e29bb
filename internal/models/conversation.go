package models

import (
	"gorm.io/gorm"
)

// Conversation is an ongoing exchange between exactly two matched users.
// It is created once at match time and mutated only by message append.
type Conversation struct {
	gorm.Model
	Members  []User    `gorm:"many2many:conversation_members;" json:"members"`
	Messages []Message `json:"messages"`
}

func (conversation *Conversation) ToConversationResponse(preview string) ConversationResponse {
	members := []*UserResponse{}
	for _, member := range conversation.Members {
		members = append(members, member.ToUserResponse())
	}
	return ConversationResponse{
		ID:      conversation.ID,
		Members: members,
		Preview: preview,
	}
}
