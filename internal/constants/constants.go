package constants

// ContextKeyUserID is the Gin context key holding the authenticated user ID.
const ContextKeyUserID = "user_id"

const (
	// BadgeColorMin and BadgeColorMax bound the contact badge color index.
	BadgeColorMin = 0
	BadgeColorMax = 14
)

// SubtaskDescriptionMaxLength bounds the subtask description field.
const SubtaskDescriptionMaxLength = 200

// TokenKeyBytes is the number of random bytes behind an auth token key
// (hex-encoded to twice this length).
const TokenKeyBytes = 20
