package service

import (
	"fmt"
	"strings"

	"cardbox/internal/domain"
	"cardbox/internal/repository"
)

// DeckService handles deck-related business logic
type DeckService struct {
	deckRepo repository.DeckRepository
}

// NewDeckService creates a new deck service
func NewDeckService(deckRepo repository.DeckRepository) *DeckService {
	return &DeckService{deckRepo: deckRepo}
}

// CreateDeck creates an empty deck for the user
func (s *DeckService) CreateDeck(ownerID int64, name, description, color string) (*domain.Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: deck name cannot be empty", domain.ErrInvalidInput)
	}
	return s.deckRepo.CreateDeck(ownerID, name, description, color)
}

// UpdateDeck edits the deck's fields; nil means "leave unchanged"
func (s *DeckService) UpdateDeck(ownerID, deckID int64, name, description, color *string) (*domain.Deck, error) {
	deck, err := s.deckRepo.GetDeck(ownerID, deckID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: deck name cannot be empty", domain.ErrInvalidInput)
		}
		deck.Name = trimmed
	}
	if description != nil {
		deck.Description = *description
	}
	if color != nil {
		deck.Color = *color
	}

	if err := s.deckRepo.UpdateDeck(deck); err != nil {
		return nil, err
	}
	return deck, nil
}

// GetDeck returns one of the user's decks
func (s *DeckService) GetDeck(ownerID, deckID int64) (*domain.Deck, error) {
	return s.deckRepo.GetDeck(ownerID, deckID)
}

// DeleteDeck removes a deck together with all of its cards
func (s *DeckService) DeleteDeck(ownerID, deckID int64) error {
	return s.deckRepo.DeleteDeck(ownerID, deckID)
}

// ListDecks returns all decks of a user
func (s *DeckService) ListDecks(ownerID int64) ([]domain.Deck, error) {
	return s.deckRepo.ListDecks(ownerID)
}
