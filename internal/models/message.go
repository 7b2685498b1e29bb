package models

import (
	"time"
)

// Message is one letter in a conversation. Rows are append-only: a letter
// is written exactly once on send and never updated or deleted.
type Message struct {
	ID             string       `gorm:"primaryKey;size:36" json:"id"`
	ConversationID uint         `gorm:"index;not null" json:"conversation_id"`
	Conversation   Conversation `json:"-"`
	SenderID       uint         `gorm:"not null" json:"sender_id"`
	RecipientID    uint         `gorm:"not null" json:"recipient_id"`
	Text           string       `gorm:"not null" json:"text"`
	DelaySeconds   int64        `json:"delay_seconds"`
	SentAt         time.Time    `json:"sent_at"`
	DeliverAt      time.Time    `json:"deliver_at"`
	CreatedAt      time.Time    `json:"created_at"`
}

// MessageView is the per-viewer projection of a letter. Text is blanked and
// UnlockLabel set while the letter is still locked for the viewer.
type MessageView struct {
	ID           string    `json:"id"`
	SenderID     uint      `json:"sender_id"`
	RecipientID  uint      `json:"recipient_id"`
	Text         string    `json:"text,omitempty"`
	Locked       bool      `json:"locked"`
	UnlockLabel  string    `json:"unlock_label,omitempty"`
	DelaySeconds int64     `json:"delay_seconds"`
	SentAt       time.Time `json:"sent_at"`
	DeliverAt    time.Time `json:"deliver_at"`
}

type SendMessageRequestBody struct {
	RecipientID  uint   `json:"recipient_id"`
	Text         string `json:"text"`
	DelaySeconds int64  `json:"delay_seconds"`
}

type ConversationViewResponse struct {
	ConversationID uint          `json:"conversation_id"`
	Messages       []MessageView `json:"messages"`
}
