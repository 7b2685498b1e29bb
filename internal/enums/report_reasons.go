package enums

// Report reasons offered to the reporter. A free-text complaint entered
// behind the "Other" option is stored as "Other: <text>".
const (
	REPORT_REASON_SPAM          = "Spam or scam"
	REPORT_REASON_HARASSMENT    = "Harassment or bullying"
	REPORT_REASON_INAPPROPRIATE = "Inappropriate content"
	REPORT_REASON_HATE_SPEECH   = "Hate speech or discrimination"
	REPORT_REASON_IMPERSONATION = "Impersonation"
	REPORT_REASON_OTHER         = "Other"
)

var ReportReasons = []string{
	REPORT_REASON_SPAM,
	REPORT_REASON_HARASSMENT,
	REPORT_REASON_INAPPROPRIATE,
	REPORT_REASON_HATE_SPEECH,
	REPORT_REASON_IMPERSONATION,
	REPORT_REASON_OTHER,
}

func IsKnownReportReason(reason string) bool {
	for _, r := range ReportReasons {
		if r == reason {
			return true
		}
	}
	return false
}
