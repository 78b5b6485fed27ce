package domain

import "time"

// CardStatus is the learning stage of a flashcard.
// It is always derived from the scheduling fields, never set directly.
type CardStatus string

const (
	StatusNew      CardStatus = "new"
	StatusLearning CardStatus = "learning"
	StatusReview   CardStatus = "review"
	StatusMastered CardStatus = "mastered"
)

// Scheduling constants. EaseFactor is stored as an integer
// multiplier x100, so 250 means 2.50.
const (
	DefaultEaseFactor = 250
	MinEaseFactor     = 130
)

// Card represents a single flashcard with its scheduling state
type Card struct {
	ID             int64
	DeckID         int64
	OwnerID        int64
	Front          string
	Back           string
	Hint           string
	EaseFactor     int
	Interval       int // days until the next review
	Repetitions    int // consecutive successful reviews since last failure
	NextReviewDate time.Time
	LastReviewDate *time.Time
	Status         CardStatus
	Revision       int // bumped on every scheduling update
	CreatedAt      time.Time
}
