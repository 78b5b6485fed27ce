package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cardbox/internal/domain"
	"cardbox/internal/repository"
	"cardbox/internal/srs"

	"go.uber.org/zap"
)

// maxReviewAttempts bounds the optimistic-concurrency retry loop in
// ReviewCard.
const maxReviewAttempts = 3

// CardService handles flashcard business logic, including the
// review scheduling flow.
type CardService struct {
	cardRepo repository.CardRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewCardService creates a new card service
func NewCardService(cardRepo repository.CardRepository, logger *zap.Logger) *CardService {
	return &CardService{
		cardRepo: cardRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// today returns the current calendar date in UTC
func (s *CardService) today() time.Time {
	return srs.DateOnly(s.now())
}

// CreateCard adds a card to a deck with fresh scheduling state:
// due today, zero interval and repetitions, default ease factor.
func (s *CardService) CreateCard(ownerID, deckID int64, front, back, hint string) (*domain.Card, error) {
	front = strings.TrimSpace(front)
	back = strings.TrimSpace(back)
	if front == "" || back == "" {
		return nil, fmt.Errorf("%w: card front and back cannot be empty", domain.ErrInvalidInput)
	}
	return s.cardRepo.CreateCard(ownerID, deckID, front, back, hint, s.today())
}

// UpdateCard edits the card faces; nil means "leave unchanged".
// Scheduling state is never modified by a content edit.
func (s *CardService) UpdateCard(ownerID, cardID int64, front, back, hint *string) (*domain.Card, error) {
	card, err := s.cardRepo.GetCard(ownerID, cardID)
	if err != nil {
		return nil, err
	}

	newFront, newBack, newHint := card.Front, card.Back, card.Hint
	if front != nil {
		newFront = strings.TrimSpace(*front)
	}
	if back != nil {
		newBack = strings.TrimSpace(*back)
	}
	if hint != nil {
		newHint = *hint
	}
	if newFront == "" || newBack == "" {
		return nil, fmt.Errorf("%w: card front and back cannot be empty", domain.ErrInvalidInput)
	}

	return s.cardRepo.UpdateContent(ownerID, cardID, newFront, newBack, newHint)
}

// GetCard returns one of the user's cards
func (s *CardService) GetCard(ownerID, cardID int64) (*domain.Card, error) {
	return s.cardRepo.GetCard(ownerID, cardID)
}

// DeleteCard removes a card from its deck
func (s *CardService) DeleteCard(ownerID, cardID, deckID int64) error {
	return s.cardRepo.DeleteCard(ownerID, cardID, deckID)
}

// ListCards returns all cards in one of the user's decks
func (s *CardService) ListCards(ownerID, deckID int64) ([]domain.Card, error) {
	return s.cardRepo.ListCards(ownerID, deckID)
}

// GetDueCards returns up to limit cards due today or earlier, oldest
// due first, optionally narrowed to one deck.
func (s *CardService) GetDueCards(ownerID int64, deckID *int64, limit int) ([]domain.Card, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidInput)
	}
	return s.cardRepo.GetDueCards(ownerID, deckID, s.today(), limit)
}

// ReviewCard applies a quality-graded review to a card. The
// read-modify-write is serialized per card by the repository's
// revision check; on contention the whole cycle is retried from a
// fresh read, so the losing review is computed against the winner's
// state rather than dropped on top of it.
func (s *CardService) ReviewCard(ownerID, cardID int64, quality int) (*domain.Card, error) {
	if quality < 0 || quality > 5 {
		return nil, fmt.Errorf("%w: quality must be between 0 and 5", domain.ErrInvalidInput)
	}

	today := s.today()

	for attempt := 1; attempt <= maxReviewAttempts; attempt++ {
		card, err := s.cardRepo.GetCard(ownerID, cardID)
		if err != nil {
			return nil, err
		}

		next := srs.Review(srs.State{
			EaseFactor:  card.EaseFactor,
			Interval:    card.Interval,
			Repetitions: card.Repetitions,
		}, quality, today)

		updated, err := s.cardRepo.UpdateScheduling(ownerID, cardID, card.Revision,
			next.EaseFactor, next.Interval, next.Repetitions, next.Status,
			next.NextReviewDate, next.LastReviewDate)
		if errors.Is(err, domain.ErrConflict) {
			s.logger.Warn("Concurrent card review, retrying",
				zap.Int64("card_id", cardID),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	return nil, fmt.Errorf("%w: card %d", domain.ErrConflict, cardID)
}
