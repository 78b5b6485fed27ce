package domain

import "time"

// User represents a bot user
type User struct {
	UserID     int64
	Authorized bool
	CreatedAt  time.Time
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle            UserState = "idle"
	StateWaitingCard     UserState = "waiting_card"
	StateWaitingWordPair UserState = "waiting_word_pair"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State  UserState
	DeckID int64 // deck selected for card input
}
