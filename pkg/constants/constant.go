package constants

const (
	DefaultPageNum  = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Comment validation
	MaxCommentLength = 500
	MinCommentLength = 1

	// Bounded retry for toggle-shaped operations that lose a race
	ToggleMaxRetries = 3
)
