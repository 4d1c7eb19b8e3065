package response

const (
	DefaultStackTraceDepth = 32
	DefaultErrorMessage    = "Something went wrong"
	ValidationErrorMsg     = "Validation error"

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"

	// discordChunkLen stays under Discord's 2000-char content limit.
	discordChunkLen = 1900
)
