package msgs

const (
	MsgOperationSuccessful     = "operation successful"
	MsgOperationFailed         = "operation failed"
	MsgUserCreatedSuccessfully = "user created successfully"
	MsgYouMustLoginFirst       = "you must login first"
	MsgLetterSent              = "letter sent successfully"
	MsgReportSubmitted         = "report submitted successfully"
	MsgConversationSeeded      = "conversation seeded"
)
