package srs

import "cardbox/internal/domain"

// Mastery thresholds over the review/correct ratio
const (
	masteredReviews = 10
	masteredRatio   = 0.9
	familiarReviews = 5
	familiarRatio   = 0.7
)

// ReviewVocabulary applies one vocabulary review, returning the new
// counters and the mastery level re-derived from them.
func ReviewVocabulary(reviewCount, correctCount int, correct bool) (int, int, domain.MasteryLevel) {
	reviewCount++
	if correct {
		correctCount++
	}
	return reviewCount, correctCount, DeriveMastery(reviewCount, correctCount)
}

// DeriveMastery classifies a vocabulary item from its full counters.
// It is recomputed from scratch on every review rather than patched
// incrementally, so counts mutated out of band self-correct on the
// next review.
func DeriveMastery(reviewCount, correctCount int) domain.MasteryLevel {
	if reviewCount < 1 {
		return domain.MasteryNew
	}
	ratio := float64(correctCount) / float64(reviewCount)
	switch {
	case reviewCount >= masteredReviews && ratio >= masteredRatio:
		return domain.MasteryMastered
	case reviewCount >= familiarReviews && ratio >= familiarRatio:
		return domain.MasteryFamiliar
	default:
		return domain.MasteryLearning
	}
}
