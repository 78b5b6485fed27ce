package service

import (
	"fmt"
	"strings"

	"cardbox/internal/domain"
	"cardbox/internal/repository"
	"cardbox/internal/srs"
)

// VocabularyService handles vocabulary item business logic
type VocabularyService struct {
	vocabRepo repository.VocabularyRepository
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(vocabRepo repository.VocabularyRepository) *VocabularyService {
	return &VocabularyService{vocabRepo: vocabRepo}
}

// AddItem stores a new vocabulary word. Adding a word the user already
// has returns the existing item unchanged.
func (s *VocabularyService) AddItem(ownerID int64, word, translation, definition, exampleSentence, pronunciation, partOfSpeech string) (*domain.VocabularyItem, error) {
	word = strings.TrimSpace(word)
	translation = strings.TrimSpace(translation)
	if word == "" || translation == "" {
		return nil, fmt.Errorf("%w: word and translation cannot be empty", domain.ErrInvalidInput)
	}

	return s.vocabRepo.CreateItem(&domain.VocabularyItem{
		OwnerID:         ownerID,
		Word:            word,
		Translation:     translation,
		Definition:      definition,
		ExampleSentence: exampleSentence,
		Pronunciation:   pronunciation,
		PartOfSpeech:    partOfSpeech,
		Mastery:         domain.MasteryNew,
	})
}

// ListItems returns the user's vocabulary, least reviewed first
func (s *VocabularyService) ListItems(ownerID int64) ([]domain.VocabularyItem, error) {
	return s.vocabRepo.ListItems(ownerID)
}

// GetItem returns one of the user's vocabulary items
func (s *VocabularyService) GetItem(ownerID, itemID int64) (*domain.VocabularyItem, error) {
	return s.vocabRepo.GetItem(ownerID, itemID)
}

// ReviewItem records one quiz answer and re-derives the mastery level
// from the full counters.
func (s *VocabularyService) ReviewItem(ownerID, itemID int64, correct bool) (*domain.VocabularyItem, error) {
	item, err := s.vocabRepo.GetItem(ownerID, itemID)
	if err != nil {
		return nil, err
	}

	reviews, correctCount, mastery := srs.ReviewVocabulary(item.ReviewCount, item.CorrectCount, correct)

	if err := s.vocabRepo.UpdateReview(ownerID, itemID, reviews, correctCount, mastery); err != nil {
		return nil, err
	}

	item.ReviewCount = reviews
	item.CorrectCount = correctCount
	item.Mastery = mastery
	return item, nil
}

// DeleteItem removes a vocabulary item
func (s *VocabularyService) DeleteItem(ownerID, itemID int64) error {
	return s.vocabRepo.DeleteItem(ownerID, itemID)
}
