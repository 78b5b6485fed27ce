// Package srs implements the spaced-repetition scheduling math.
// Everything here is pure: no I/O, no clocks, no randomness, so the
// same inputs always produce the same outputs.
package srs

import (
	"math"
	"time"

	"cardbox/internal/domain"
)

// PassThreshold is the lowest quality that counts as successful recall
const PassThreshold = 3

// MasteredInterval is the minimum interval in days for a card to be
// considered mastered.
const MasteredInterval = 21

// State holds the scheduling fields of a card prior to a review
type State struct {
	EaseFactor  int // ease multiplier x100
	Interval    int // days
	Repetitions int
}

// Result is the scheduling state produced by a review
type Result struct {
	EaseFactor     int
	Interval       int
	Repetitions    int
	Status         domain.CardStatus
	NextReviewDate time.Time
	LastReviewDate time.Time
}

// Review applies one review with the given quality (0..5) to a card's
// scheduling state. Today is expected to be a calendar date (see
// DateOnly); the caller validates the quality range.
//
// Unlike textbook SM-2, the ease factor is adjusted on failed reviews
// too; the 130 floor clamps the drift. The status check reads the
// repetition count as it was before the success increment, so a card's
// first successful review leaves it in learning.
func Review(prior State, quality int, today time.Time) Result {
	var res Result

	if quality < PassThreshold {
		res.Repetitions = 0
		res.Interval = 0
	} else {
		switch prior.Repetitions {
		case 0:
			res.Interval = 1
		case 1:
			res.Interval = 6
		default:
			res.Interval = int(math.Round(float64(prior.Interval) * float64(prior.EaseFactor) / 100))
		}
		res.Repetitions = prior.Repetitions + 1
	}

	res.EaseFactor = prior.EaseFactor + easeDelta(quality)
	if res.EaseFactor < domain.MinEaseFactor {
		res.EaseFactor = domain.MinEaseFactor
	}

	res.NextReviewDate = today.AddDate(0, 0, res.Interval)
	res.LastReviewDate = today

	statusRepetitions := 0
	if quality >= PassThreshold {
		statusRepetitions = prior.Repetitions
	}
	res.Status = deriveStatus(statusRepetitions, res.Interval, res.EaseFactor)

	return res
}

// easeDelta is the SM-2 ease factor adjustment for a quality response,
// scaled x100 to match the fixed-point representation.
func easeDelta(quality int) int {
	miss := float64(5 - quality)
	return int(math.Round((0.1 - miss*(0.08+miss*0.02)) * 100))
}

// deriveStatus maps scheduling state to a card status. First match
// wins; the order matters.
func deriveStatus(repetitions, interval, easeFactor int) domain.CardStatus {
	switch {
	case repetitions == 0:
		return domain.StatusLearning
	case interval >= MasteredInterval && easeFactor >= domain.DefaultEaseFactor:
		return domain.StatusMastered
	case interval >= 1:
		return domain.StatusReview
	default:
		return domain.StatusLearning
	}
}

// DateOnly strips the time component, returning midnight UTC of the
// same calendar day. All scheduling dates go through this.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
