package service

import (
	"time"

	"cardbox/internal/domain"
	"cardbox/internal/repository"
	"cardbox/internal/srs"

	"go.uber.org/zap"
)

// StatsService aggregates per-user statistics. All numbers are counted
// fresh from the store on every call; nothing here maintains a cached
// counter.
type StatsService struct {
	cardRepo  repository.CardRepository
	vocabRepo repository.VocabularyRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(cardRepo repository.CardRepository, vocabRepo repository.VocabularyRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		cardRepo:  cardRepo,
		vocabRepo: vocabRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// GetFlashcardStats returns the user's card counts by status and the
// number of cards due today.
func (s *StatsService) GetFlashcardStats(ownerID int64) (*domain.FlashcardStats, error) {
	stats, err := s.cardRepo.GetStats(ownerID, srs.DateOnly(s.now()))
	if err != nil {
		s.logger.Error("Failed to load flashcard stats",
			zap.Int64("owner_id", ownerID),
			zap.Error(err),
		)
		return nil, err
	}
	return stats, nil
}

// GetVocabularyStats returns the user's vocabulary counts by mastery
func (s *StatsService) GetVocabularyStats(ownerID int64) (*domain.VocabularyStats, error) {
	stats, err := s.vocabRepo.GetStats(ownerID)
	if err != nil {
		s.logger.Error("Failed to load vocabulary stats",
			zap.Int64("owner_id", ownerID),
			zap.Error(err),
		)
		return nil, err
	}
	return stats, nil
}
