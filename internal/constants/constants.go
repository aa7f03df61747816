package constants

// Context keys set by the auth middleware
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)

// Validation limits
const (
	MinPasswordLength  = 3
	MinLabelNameLength = 3
	MaxLabelNameLength = 1000
)
