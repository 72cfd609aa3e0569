package model

// User statuses stored in the users table.
const (
	StatusAnonymous  = "anonymous"
	StatusGuest      = "guest"
	StatusRegistered = "registered"
	StatusClient     = "client"
)

// Pseudo statuses accepted by recipient filters only.
const (
	FilterAll     = "all"
	FilterBlocked = "blocked"
)

// User represents a platform user that may receive broadcasts.
type User struct {
	ID         int64  `json:"id"`
	TelegramID int64  `json:"telegram_id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Status     string `json:"status"`
	IsBlocked  bool   `json:"is_blocked"`
	PhotoURL   string `json:"photo_url"`
}

// Recipient returns the broadcast target described by the user.
func (u User) Recipient() Recipient {
	return Recipient{TelegramID: u.TelegramID, PhotoURL: u.PhotoURL}
}

// RecipientFilter selects users by status and free-text search.
type RecipientFilter struct {
	Status string `json:"status"`
	Search string `json:"search"`
}
