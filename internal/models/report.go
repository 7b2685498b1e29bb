package models

import (
	"gorm.io/gorm"
)

// Report is a reportable reference handed to the moderation subsystem.
// Its pending/resolved lifecycle lives there, not here.
type Report struct {
	gorm.Model
	ConversationID uint   `gorm:"not null" json:"conversation_id"`
	MessageID      string `gorm:"not null" json:"message_id"`
	ReporterID     uint   `gorm:"not null" json:"reporter_id"`
	Reason         string `json:"reason"`
}

type ReportRequestBody struct {
	ConversationID uint   `json:"conversation_id"`
	MessageID      string `json:"message_id"`
	Reason         string `json:"reason"`
}
