package handlers

import (
	"log"
	"net/http"
	"strconv"

	"letterChat/internal/errs"
	"letterChat/internal/models"
	"letterChat/internal/msgs"
	"letterChat/internal/services"

	"github.com/gin-gonic/gin"
)

type RestHandler struct {
	authService   *services.AuthenticationService
	letterService *services.LetterService
}

func NewRestHandler(
	authService *services.AuthenticationService,
	letterService *services.LetterService,
) *RestHandler {
	return &RestHandler{
		authService:   authService,
		letterService: letterService,
	}
}

// Login godoc
// @Summary      Login user to account
// @Description  Authenticates a user and returns a JWT
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var errors []error

	var loginData models.LoginRequestBody
	err := ctx.BindJSON(&loginData)
	if err != nil {
		log.Println("Error login data json binding:", err)
		errors = append(errors, errs.ErrInvalidRequestBody)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	loginResponse, loginErrs := rh.authService.Login(&loginData)
	if len(loginErrs) > 0 {
		errors = append(errors, loginErrs...)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    loginResponse,
	})
}

// Register godoc
// @Summary      Register a new user
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /register [post]
func (rh *RestHandler) Register(ctx *gin.Context) {
	var errors []error

	var user models.User
	err := ctx.BindJSON(&user)
	if err != nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	_, registerErrs := rh.authService.Register(&user)
	if len(registerErrs) > 0 {
		errors = append(errors, registerErrs...)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
	})
}

// GetConversations godoc
// @Summary      List the viewer's conversations
// @Description  Returns the viewer's conversations with last-unlocked previews
// @Tags         letters
// @Produce      json
// @Param        page   query  int  false  "Page"
// @Param        size   query  int  false  "Page size"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /chats [get]
func (rh *RestHandler) GetConversations(ctx *gin.Context) {
	viewerID := rh.mustViewerID(ctx)
	if viewerID == 0 {
		return
	}

	page, size := paginationParams(ctx)

	response, listErrs := rh.letterService.GetUserConversations(viewerID, page, size)
	if len(listErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  listErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    response,
	})
}

// CreateConversation godoc
// @Summary      Match the viewer with another user
// @Description  Creates the pair's conversation, reusing an existing one
// @Tags         letters
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /chats [post]
func (rh *RestHandler) CreateConversation(ctx *gin.Context) {
	viewerID := rh.mustViewerID(ctx)
	if viewerID == 0 {
		return
	}

	var body models.CreateConversationRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	conversation, createErrs := rh.letterService.CreateOrGetConversation(viewerID, body.OtherUserID)
	if len(createErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  createErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    conversation,
	})
}

// GetConversationMessages godoc
// @Summary      Conversation view for the current viewer
// @Description  Letters in delivery order; locked letters carry no text
// @Tags         letters
// @Produce      json
// @Param        chatId  path  int  true  "Conversation ID"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /chats/{chatId}/messages [get]
func (rh *RestHandler) GetConversationMessages(ctx *gin.Context) {
	viewerID := rh.mustViewerID(ctx)
	if viewerID == 0 {
		return
	}

	conversationID, ok := conversationIDParam(ctx)
	if !ok {
		return
	}

	view, viewErrs := rh.letterService.GetConversationView(conversationID, viewerID)
	if len(viewErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  viewErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    view,
	})
}

// SendMessage godoc
// @Summary      Send a letter
// @Description  Appends a letter; the server stamps sent_at and deliver_at
// @Tags         letters
// @Accept       json
// @Produce      json
// @Param        chatId  path  int  true  "Conversation ID"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /chats/{chatId}/messages [post]
func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	viewerID := rh.mustViewerID(ctx)
	if viewerID == 0 {
		return
	}

	conversationID, ok := conversationIDParam(ctx)
	if !ok {
		return
	}

	var body models.SendMessageRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	message, sendErrs := rh.letterService.SendLetter(conversationID, viewerID, &body)
	if len(sendErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  sendErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgLetterSent,
		Data:    message,
	})
}

// SeedConversation godoc
// @Summary      Seed an empty conversation with starter letters
// @Description  Idempotent; a non-empty conversation is left untouched
// @Tags         letters
// @Produce      json
// @Param        chatId  path  int  true  "Conversation ID"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /chats/{chatId}/seed [post]
func (rh *RestHandler) SeedConversation(ctx *gin.Context) {
	viewerID := rh.mustViewerID(ctx)
	if viewerID == 0 {
		return
	}

	conversationID, ok := conversationIDParam(ctx)
	if !ok {
		return
	}

	if err := rh.letterService.SeedConversation(conversationID, viewerID); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgConversationSeeded,
	})
}

// ReportMessage godoc
// @Summary      Report a letter for moderation
// @Tags         letters
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /chats/report [post]
func (rh *RestHandler) ReportMessage(ctx *gin.Context) {
	viewerID := rh.mustViewerID(ctx)
	if viewerID == 0 {
		return
	}

	var body models.ReportRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	if reportErrs := rh.letterService.ReportLetter(viewerID, &body); len(reportErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  reportErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgReportSubmitted,
	})
}

func (rh *RestHandler) mustViewerID(ctx *gin.Context) uint {
	viewerID := ctx.GetUint("user_id")
	if viewerID == 0 {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgYouMustLoginFirst,
			Errors:  []error{errs.ErrUnauthorized},
		})
	}
	return viewerID
}

func conversationIDParam(ctx *gin.Context) (uint, bool) {
	id := ctx.Param("chatId")
	idInt, err := strconv.Atoi(id)
	if err != nil || idInt < 1 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidConversationId},
		})
		return 0, false
	}
	return uint(idInt), true
}

func paginationParams(ctx *gin.Context) (int, int) {
	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(ctx.Query("size"))
	if err != nil || size < 1 {
		size = 10
	}
	return page, size
}
