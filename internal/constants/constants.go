package constants

// Session / context keys
const (
	SessionCookieName  = "devhub_session"
	ContextKeyUserID   = "user_id"
	SessionKeyUserName = "user_name"
)

// Pagination bounds
const (
	MinPage         = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)
