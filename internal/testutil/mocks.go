package testutil

import (
	"time"

	"cardbox/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockDeckRepository is a mock for DeckRepository
type MockDeckRepository struct {
	mock.Mock
}

func (m *MockDeckRepository) CreateDeck(ownerID int64, name, description, color string) (*domain.Deck, error) {
	args := m.Called(ownerID, name, description, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckRepository) GetDeck(ownerID, deckID int64) (*domain.Deck, error) {
	args := m.Called(ownerID, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckRepository) UpdateDeck(deck *domain.Deck) error {
	args := m.Called(deck)
	return args.Error(0)
}

func (m *MockDeckRepository) DeleteDeck(ownerID, deckID int64) error {
	args := m.Called(ownerID, deckID)
	return args.Error(0)
}

func (m *MockDeckRepository) ListDecks(ownerID int64) ([]domain.Deck, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deck), args.Error(1)
}

// MockCardRepository is a mock for CardRepository
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) CreateCard(ownerID, deckID int64, front, back, hint string, today time.Time) (*domain.Card, error) {
	args := m.Called(ownerID, deckID, front, back, hint, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardRepository) GetCard(ownerID, cardID int64) (*domain.Card, error) {
	args := m.Called(ownerID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardRepository) UpdateContent(ownerID, cardID int64, front, back, hint string) (*domain.Card, error) {
	args := m.Called(ownerID, cardID, front, back, hint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardRepository) UpdateScheduling(ownerID, cardID int64, revision int, easeFactor, interval, repetitions int,
	status domain.CardStatus, nextReview, lastReview time.Time) (*domain.Card, error) {
	args := m.Called(ownerID, cardID, revision, easeFactor, interval, repetitions, status, nextReview, lastReview)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardRepository) DeleteCard(ownerID, cardID, deckID int64) error {
	args := m.Called(ownerID, cardID, deckID)
	return args.Error(0)
}

func (m *MockCardRepository) ListCards(ownerID, deckID int64) ([]domain.Card, error) {
	args := m.Called(ownerID, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockCardRepository) GetDueCards(ownerID int64, deckID *int64, today time.Time, limit int) ([]domain.Card, error) {
	args := m.Called(ownerID, deckID, today, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockCardRepository) GetStats(ownerID int64, today time.Time) (*domain.FlashcardStats, error) {
	args := m.Called(ownerID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlashcardStats), args.Error(1)
}

// MockVocabularyRepository is a mock for VocabularyRepository
type MockVocabularyRepository struct {
	mock.Mock
}

func (m *MockVocabularyRepository) CreateItem(item *domain.VocabularyItem) (*domain.VocabularyItem, error) {
	args := m.Called(item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VocabularyItem), args.Error(1)
}

func (m *MockVocabularyRepository) GetItem(ownerID, itemID int64) (*domain.VocabularyItem, error) {
	args := m.Called(ownerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VocabularyItem), args.Error(1)
}

func (m *MockVocabularyRepository) ListItems(ownerID int64) ([]domain.VocabularyItem, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VocabularyItem), args.Error(1)
}

func (m *MockVocabularyRepository) UpdateReview(ownerID, itemID int64, reviewCount, correctCount int, mastery domain.MasteryLevel) error {
	args := m.Called(ownerID, itemID, reviewCount, correctCount, mastery)
	return args.Error(0)
}

func (m *MockVocabularyRepository) DeleteItem(ownerID, itemID int64) error {
	args := m.Called(ownerID, itemID)
	return args.Error(0)
}

func (m *MockVocabularyRepository) GetStats(ownerID int64) (*domain.VocabularyStats, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VocabularyStats), args.Error(1)
}
