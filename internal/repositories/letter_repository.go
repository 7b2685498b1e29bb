package repositories

import (
	"context"
	"time"

	"letterChat/internal/errs"
	"letterChat/internal/models"
	"letterChat/internal/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type LetterRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func NewLetterRepository(db *gorm.DB, redis *redis.Client, ctx context.Context) *LetterRepository {
	return &LetterRepository{
		db:    db,
		redis: redis,
		ctx:   ctx,
	}
}

func (lr *LetterRepository) CreateConversation(userID1, userID2 uint) (*models.Conversation, []error) {
	var errors []error

	conversation := models.Conversation{}

	err := lr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&conversation).Error; err != nil {
			return err
		}

		for _, userId := range []uint{userID1, userID2} {
			err := tx.Create(&models.ConversationMember{
				ConversationID: conversation.ID,
				UserID:         userId,
			}).Error

			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	return lr.GetConversationById(conversation.ID)
}

func (lr *LetterRepository) FindConversationBetweenTwoUsers(userID1, userID2 uint) (uint, []error) {
	var errors []error

	rows, err := lr.db.Table("conversation_members AS cm1").
		Select("cm1.conversation_id").
		Joins("INNER JOIN conversation_members AS cm2 ON cm1.conversation_id = cm2.conversation_id").
		Where("cm1.user_id = ? AND cm2.user_id = ?", userID1, userID2).
		Rows()

	if err != nil {
		errors = append(errors, err)
		return 0, errors
	}
	defer rows.Close()

	var conversationID uint
	for rows.Next() {
		if err := rows.Scan(&conversationID); err != nil {
			errors = append(errors, err)
			return 0, errors
		}
	}
	if err := rows.Err(); err != nil {
		errors = append(errors, err)
		return 0, errors
	}

	return conversationID, nil
}

func (lr *LetterRepository) GetConversationById(conversationID uint) (*models.Conversation, []error) {
	var errors []error
	var conversation models.Conversation

	result := lr.db.
		Preload("Members").
		Where("id = ?", conversationID).
		First(&conversation)

	if err := result.Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrConversationNotFound)
		return nil, errors
	}

	return &conversation, nil
}

func (lr *LetterRepository) GetUserConversations(userID uint, page, size int) ([]models.Conversation, int64, []error) {
	var errors []error
	var conversations []models.Conversation
	var total int64

	transactionErr := lr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Preload("Members").
			Where("id IN (SELECT conversation_id FROM conversation_members WHERE user_id = ?)", userID).
			Order("updated_at DESC").
			Find(&conversations).Error; err != nil {
			return err
		}

		if err := tx.
			Model(&models.Conversation{}).
			Where("id IN (SELECT conversation_id FROM conversation_members WHERE user_id = ?)", userID).
			Count(&total).Error; err != nil {
			return err
		}

		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, 0, errors
	}

	return conversations, total, nil
}

// AppendMessage writes one letter. The message log is append-only: no update
// or delete path exists on this repository.
func (lr *LetterRepository) AppendMessage(message *models.Message) (*models.Message, []error) {
	var errors []error
	transactionErr := lr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Conversation{}).
			Where("id = ?", message.ConversationID).
			Update("updated_at", time.Now()).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}
	return message, nil
}

// ListMessages returns all letters of a conversation in no particular order;
// the aggregator imposes the (sent_at, id) total order.
func (lr *LetterRepository) ListMessages(conversationID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := lr.db.
		Where("conversation_id = ?", conversationID).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (lr *LetterRepository) GetMessageById(messageID string) (*models.Message, error) {
	var message models.Message
	result := lr.db.Where("id = ?", messageID).First(&message)
	if result.Error != nil {
		return nil, result.Error
	}
	return &message, nil
}

func (lr *LetterRepository) CheckConversationExists(conversationID uint) bool {
	var count int64
	lr.db.Model(&models.Conversation{}).Where("id = ?", conversationID).Count(&count)
	return count > 0
}

func (lr *LetterRepository) CheckUserInConversation(userID, conversationID uint) bool {
	var count int64
	lr.db.Model(&models.ConversationMember{}).Where("user_id = ? AND conversation_id = ?", userID, conversationID).Count(&count)
	return count > 0
}

func (lr *LetterRepository) CreateReport(report *models.Report) []error {
	var errors []error
	if err := lr.db.Create(report).Error; err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}
