package domain

import "time"

// Deck groups a user's flashcards
type Deck struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Color       string
	CardCount   int
	CreatedAt   time.Time
}
