package constants

// Context keys
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

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// HeaderTotalCount carries the unpaginated row count on list responses.
const HeaderTotalCount = "X-Total-Count"
