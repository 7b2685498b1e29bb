package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody    = Error("invalid request body")
	ErrUserAlreadyExists     = Error("user already exists")
	ErrUserNotFound          = Error("user not found")
	ErrWrongPassword         = Error("wrong password")
	ErrInvalidToken          = Error("invalid token")
	ErrInvalidEmail          = Error("invalid email")
	ErrInvalidPassword       = Error("invalid password")
	ErrInvalidUser           = Error("invalid user")
	ErrInvalidParams         = Error("invalid params")
	ErrFirstName             = Error("first name is empty or too short")
	ErrLastName              = Error("last name is empty or too short")
	ErrUnauthorized          = Error("unauthorized")
	ErrInvalidConversationId = Error("invalid conversation id")
	ErrConversationNotFound  = Error("conversation not found")
	ErrNotAMember            = Error("user is not a member of this conversation")
	ErrEmptyLetter           = Error("letter text is empty")
	ErrNegativeDelay         = Error("delivery delay cannot be negative")
	ErrUnknownDelayPreset    = Error("unknown delivery delay preset")
	ErrSelfAddressedLetter   = Error("sender and recipient cannot be the same user")
	ErrMessageNotFound       = Error("message not found")
	ErrEmptyReportReason     = Error("report reason is empty")
)
