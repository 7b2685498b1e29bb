package repositories

import (
	"fmt"
	"log"
	"sort"
	"time"

	"letterChat/internal/delivery"
	"letterChat/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seedGuardTTL = 30 * time.Second

// Starter letters written into a freshly matched conversation so neither
// participant opens an empty view. The second letter arrives delayed to
// demonstrate the lock.
var seedLetters = []struct {
	text         string
	delaySeconds int64
}{
	{
		text:         "Dear pen pal,\n\nWelcome! This is your first letter. Write back whenever you like; good letters are worth the wait.\n\nKind regards,\nYour pen pal",
		delaySeconds: 0,
	},
	{
		text:         "Dear pen pal,\n\nA second letter is already on its way to you. It travels a little slower, the way letters should.\n\nKind regards,\nYour pen pal",
		delaySeconds: 60,
	},
}

// SeedIfEmpty writes the canonical starter letters into a conversation that
// has no messages. It is idempotent under concurrent callers: a Redis SETNX
// guard keeps simultaneous seeds from racing across instances, and the seed
// letters carry deterministic ids with a conflict-ignoring insert as the
// correctness backstop, so a duplicate attempt is a no-op even when Redis
// is unavailable. Calling it on a non-empty conversation does nothing.
func (lr *LetterRepository) SeedIfEmpty(conversationID uint) error {
	if lr.redis != nil {
		guardKey := fmt.Sprintf("letters:seed:%d", conversationID)
		acquired, err := lr.redis.SetNX(lr.ctx, guardKey, 1, seedGuardTTL).Result()
		if err != nil {
			// seeding still stays idempotent without the guard
			log.Printf("Seed guard unavailable for conversation %d: %v", conversationID, err)
		} else if !acquired {
			return nil
		}
	}

	return lr.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Message{}).
			Where("conversation_id = ?", conversationID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		var members []models.ConversationMember
		if err := tx.
			Where("conversation_id = ?", conversationID).
			Find(&members).Error; err != nil {
			return err
		}
		if len(members) < 2 {
			return nil
		}
		sort.Slice(members, func(i, j int) bool { return members[i].UserID < members[j].UserID })

		now := time.Now().UTC()
		participants := [2]uint{members[0].UserID, members[1].UserID}

		messages := make([]models.Message, 0, len(seedLetters))
		for i, seed := range seedLetters {
			sender := participants[i%2]
			recipient := participants[(i+1)%2]
			messages = append(messages, models.Message{
				ID:             seedMessageID(conversationID, i),
				ConversationID: conversationID,
				SenderID:       sender,
				RecipientID:    recipient,
				Text:           seed.text,
				DelaySeconds:   seed.delaySeconds,
				SentAt:         now,
				DeliverAt:      delivery.ComputeDeliverAt(now, seed.delaySeconds),
			})
		}

		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&messages).Error
	})
}

// seedMessageID derives a stable id for the n-th starter letter of a
// conversation, so a repeated seed insert collides instead of duplicating.
func seedMessageID(conversationID uint, index int) string {
	name := fmt.Sprintf("letterchat:conversation:%d:seed:%d", conversationID, index)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}
