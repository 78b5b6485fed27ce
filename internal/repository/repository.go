package repository

import (
	"time"

	"cardbox/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// DeckRepository defines deck data operations. Every method is scoped
// by the owner; a deck belonging to someone else is reported as absent.
type DeckRepository interface {
	CreateDeck(ownerID int64, name, description, color string) (*domain.Deck, error)
	GetDeck(ownerID, deckID int64) (*domain.Deck, error)
	UpdateDeck(deck *domain.Deck) error
	DeleteDeck(ownerID, deckID int64) error
	ListDecks(ownerID int64) ([]domain.Deck, error)
}

// CardRepository defines card data operations.
//
// CreateCard and DeleteCard also maintain the owning deck's card_count
// in the same transaction. UpdateScheduling is the optimistic-
// concurrency write for review results: it only applies when the
// stored revision still matches, and reports domain.ErrConflict
// otherwise.
type CardRepository interface {
	CreateCard(ownerID, deckID int64, front, back, hint string, today time.Time) (*domain.Card, error)
	GetCard(ownerID, cardID int64) (*domain.Card, error)
	UpdateContent(ownerID, cardID int64, front, back, hint string) (*domain.Card, error)
	UpdateScheduling(ownerID, cardID int64, revision int, easeFactor, interval, repetitions int,
		status domain.CardStatus, nextReview, lastReview time.Time) (*domain.Card, error)
	DeleteCard(ownerID, cardID, deckID int64) error
	ListCards(ownerID, deckID int64) ([]domain.Card, error)
	GetDueCards(ownerID int64, deckID *int64, today time.Time, limit int) ([]domain.Card, error)
	GetStats(ownerID int64, today time.Time) (*domain.FlashcardStats, error)
}

// VocabularyRepository defines vocabulary item operations.
// CreateItem is idempotent per (owner, word): inserting an existing
// word returns the stored item untouched.
type VocabularyRepository interface {
	CreateItem(item *domain.VocabularyItem) (*domain.VocabularyItem, error)
	GetItem(ownerID, itemID int64) (*domain.VocabularyItem, error)
	ListItems(ownerID int64) ([]domain.VocabularyItem, error)
	UpdateReview(ownerID, itemID int64, reviewCount, correctCount int, mastery domain.MasteryLevel) error
	DeleteItem(ownerID, itemID int64) error
	GetStats(ownerID int64) (*domain.VocabularyStats, error)
}
