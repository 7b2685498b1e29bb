package services

import (
	"log"
	"strings"
	"time"

	"letterChat/internal/delivery"
	"letterChat/internal/enums"
	"letterChat/internal/errs"
	"letterChat/internal/models"
	"letterChat/internal/utils"
	"letterChat/internal/validators"

	"github.com/google/uuid"
)

// LetterStore is the slice of the repository the letter service consumes.
type LetterStore interface {
	ListMessages(conversationID uint) ([]models.Message, error)
	SeedIfEmpty(conversationID uint) error
	AppendMessage(message *models.Message) (*models.Message, []error)
	GetMessageById(messageID string) (*models.Message, error)
	CreateConversation(userID1, userID2 uint) (*models.Conversation, []error)
	FindConversationBetweenTwoUsers(userID1, userID2 uint) (uint, []error)
	GetConversationById(conversationID uint) (*models.Conversation, []error)
	GetUserConversations(userID uint, page, size int) ([]models.Conversation, int64, []error)
	CheckConversationExists(conversationID uint) bool
	CheckUserInConversation(userID, conversationID uint) bool
	CreateReport(report *models.Report) []error
}

type LetterService struct {
	letterRepo LetterStore
	now        func() time.Time
}

func NewLetterService(letterRepo LetterStore) *LetterService {
	return &LetterService{
		letterRepo: letterRepo,
		now:        time.Now,
	}
}

// GetConversationView loads a conversation and renders it for one viewer:
// letters in delivery order, locked state computed against the server clock,
// locked content withheld. An empty conversation is seeded with the starter
// letters first; a failed seed is logged and retried on the next open.
func (ls *LetterService) GetConversationView(conversationID, viewerID uint) (*models.ConversationViewResponse, []error) {
	var errors []error

	if !ls.letterRepo.CheckConversationExists(conversationID) {
		errors = append(errors, errs.ErrConversationNotFound)
		return nil, errors
	}
	if !ls.letterRepo.CheckUserInConversation(viewerID, conversationID) {
		errors = append(errors, errs.ErrNotAMember)
		return nil, errors
	}

	messages, err := ls.letterRepo.ListMessages(conversationID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	if len(messages) == 0 {
		if seedErr := ls.letterRepo.SeedIfEmpty(conversationID); seedErr != nil {
			log.Printf("Seeding conversation %d failed: %v", conversationID, seedErr)
		} else {
			messages, err = ls.letterRepo.ListMessages(conversationID)
			if err != nil {
				errors = append(errors, err)
				return nil, errors
			}
		}
	}

	views := delivery.Annotate(messages, viewerID, ls.now())
	for i := range views {
		if views[i].Text != "" {
			views[i].Text = utils.SanitizeLetterBody(views[i].Text)
		}
	}

	return &models.ConversationViewResponse{
		ConversationID: conversationID,
		Messages:       views,
	}, nil
}

// SeedConversation exposes the seeder to members of the conversation, e.g.
// when a client notices an empty thread before its first aggregated fetch.
func (ls *LetterService) SeedConversation(conversationID, viewerID uint) error {
	if !ls.letterRepo.CheckUserInConversation(viewerID, conversationID) {
		return errs.ErrNotAMember
	}
	return ls.letterRepo.SeedIfEmpty(conversationID)
}

// SendLetter appends one letter. The server stamps sent_at and derives
// deliver_at; callers never supply either.
func (ls *LetterService) SendLetter(conversationID, senderID uint, body *models.SendMessageRequestBody) (*models.Message, []error) {
	var errors []error

	if !ls.letterRepo.CheckConversationExists(conversationID) {
		errors = append(errors, errs.ErrConversationNotFound)
		return nil, errors
	}
	if !ls.letterRepo.CheckUserInConversation(senderID, conversationID) {
		errors = append(errors, errs.ErrNotAMember)
		return nil, errors
	}
	if body.RecipientID == senderID {
		errors = append(errors, errs.ErrSelfAddressedLetter)
		return nil, errors
	}
	if !ls.letterRepo.CheckUserInConversation(body.RecipientID, conversationID) {
		errors = append(errors, errs.ErrNotAMember)
		return nil, errors
	}
	if validationErrs := validators.ValidateLetter(body); len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}

	sentAt := ls.now().UTC()
	message := &models.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		RecipientID:    body.RecipientID,
		Text:           body.Text,
		DelaySeconds:   body.DelaySeconds,
		SentAt:         sentAt,
		DeliverAt:      delivery.ComputeDeliverAt(sentAt, body.DelaySeconds),
	}

	return ls.letterRepo.AppendMessage(message)
}

// GetUserConversations lists a viewer's conversations, each annotated with
// the last-unlocked preview line.
func (ls *LetterService) GetUserConversations(viewerID uint, page, size int) (*models.ConversationListResponse, []error) {
	conversations, total, errs := ls.letterRepo.GetUserConversations(viewerID, page, size)
	if len(errs) > 0 {
		return nil, errs
	}

	now := ls.now()
	responses := make([]models.ConversationResponse, 0, len(conversations))
	for i := range conversations {
		messages, err := ls.letterRepo.ListMessages(conversations[i].ID)
		if err != nil {
			return nil, []error{err}
		}
		preview := delivery.LastUnlockedPreview(messages, viewerID, now)
		responses = append(responses, conversations[i].ToConversationResponse(utils.SanitizeLetterBody(preview)))
	}

	return &models.ConversationListResponse{
		Conversations: responses,
		Page:          page,
		Size:          size,
		Total:         total,
	}, nil
}

// CreateOrGetConversation matches two users. The pair shares at most one
// conversation; an existing one is reused.
func (ls *LetterService) CreateOrGetConversation(userID, otherUserID uint) (*models.Conversation, []error) {
	var errors []error

	if userID == otherUserID {
		errors = append(errors, errs.ErrSelfAddressedLetter)
		return nil, errors
	}

	existingID, findErrs := ls.letterRepo.FindConversationBetweenTwoUsers(userID, otherUserID)
	if len(findErrs) > 0 {
		return nil, findErrs
	}
	if existingID != 0 {
		return ls.letterRepo.GetConversationById(existingID)
	}

	return ls.letterRepo.CreateConversation(userID, otherUserID)
}

// ReportLetter records a reportable reference for the moderation subsystem.
// Only delivered letters the reporter can actually see are acceptable.
func (ls *LetterService) ReportLetter(reporterID uint, body *models.ReportRequestBody) []error {
	var errors []error

	if !ls.letterRepo.CheckUserInConversation(reporterID, body.ConversationID) {
		errors = append(errors, errs.ErrNotAMember)
		return errors
	}
	reason := strings.TrimSpace(body.Reason)
	if reason == "" {
		errors = append(errors, errs.ErrEmptyReportReason)
		return errors
	}
	if !enums.IsKnownReportReason(reason) {
		// free-text complaint entered behind the "Other" option
		reason = enums.REPORT_REASON_OTHER + ": " + reason
	}

	message, err := ls.letterRepo.GetMessageById(body.MessageID)
	if err != nil || message.ConversationID != body.ConversationID {
		errors = append(errors, errs.ErrMessageNotFound)
		return errors
	}
	if !delivery.IsVisible(message, reporterID, ls.now()) {
		errors = append(errors, errs.ErrMessageNotFound)
		return errors
	}

	return ls.letterRepo.CreateReport(&models.Report{
		ConversationID: body.ConversationID,
		MessageID:      body.MessageID,
		ReporterID:     reporterID,
		Reason:         reason,
	})
}
