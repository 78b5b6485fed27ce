package testutil

import (
	"time"

	"cardbox/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestDeck creates a test deck
func NewTestDeck(id, ownerID int64, name string, cardCount int) *domain.Deck {
	return &domain.Deck{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		CardCount: cardCount,
		CreatedAt: time.Now(),
	}
}

// NewTestCard creates a test card with fresh scheduling state, due on
// the given date.
func NewTestCard(id, deckID, ownerID int64, front, back string, due time.Time) *domain.Card {
	return &domain.Card{
		ID:             id,
		DeckID:         deckID,
		OwnerID:        ownerID,
		Front:          front,
		Back:           back,
		EaseFactor:     domain.DefaultEaseFactor,
		Interval:       0,
		Repetitions:    0,
		NextReviewDate: due,
		Status:         domain.StatusNew,
		CreatedAt:      time.Now(),
	}
}

// NewTestVocabularyItem creates a test vocabulary item
func NewTestVocabularyItem(id, ownerID int64, word, translation string) *domain.VocabularyItem {
	return &domain.VocabularyItem{
		ID:          id,
		OwnerID:     ownerID,
		Word:        word,
		Translation: translation,
		Mastery:     domain.MasteryNew,
		CreatedAt:   time.Now(),
	}
}
