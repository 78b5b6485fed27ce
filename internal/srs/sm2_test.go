package srs

import (
	"testing"
	"time"

	"cardbox/internal/domain"

	"github.com/stretchr/testify/assert"
)

var testToday = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestReview_NewCardFirstSuccess(t *testing.T) {
	// A brand new card answered with quality 4 moves to interval 1 but
	// stays in learning: the status check sees the pre-increment
	// repetition count.
	prior := State{EaseFactor: 250, Interval: 0, Repetitions: 0}

	res := Review(prior, 4, testToday)

	assert.Equal(t, 1, res.Interval)
	assert.Equal(t, 1, res.Repetitions)
	assert.Equal(t, 250, res.EaseFactor) // quality 4 delta is zero
	assert.Equal(t, domain.StatusLearning, res.Status)
	assert.Equal(t, testToday.AddDate(0, 0, 1), res.NextReviewDate)
	assert.Equal(t, testToday, res.LastReviewDate)
}

func TestReview_SecondSuccess(t *testing.T) {
	prior := State{EaseFactor: 250, Interval: 1, Repetitions: 1}

	res := Review(prior, 4, testToday)

	assert.Equal(t, 6, res.Interval)
	assert.Equal(t, 2, res.Repetitions)
	assert.Equal(t, domain.StatusReview, res.Status)
}

func TestReview_FailureResets(t *testing.T) {
	prior := State{EaseFactor: 260, Interval: 6, Repetitions: 2}

	res := Review(prior, 2, testToday)

	assert.Equal(t, 0, res.Repetitions)
	assert.Equal(t, 0, res.Interval)
	assert.Less(t, res.EaseFactor, 260)
	assert.GreaterOrEqual(t, res.EaseFactor, domain.MinEaseFactor)
	assert.Equal(t, domain.StatusLearning, res.Status)
	assert.Equal(t, testToday, res.NextReviewDate)
}

func TestReview_ResetLaw(t *testing.T) {
	// Any quality below the pass threshold zeroes repetitions and
	// interval, regardless of prior state.
	priors := []State{
		{EaseFactor: 250, Interval: 0, Repetitions: 0},
		{EaseFactor: 130, Interval: 1, Repetitions: 1},
		{EaseFactor: 300, Interval: 42, Repetitions: 7},
	}

	for _, prior := range priors {
		for quality := 0; quality < PassThreshold; quality++ {
			res := Review(prior, quality, testToday)
			assert.Equal(t, 0, res.Repetitions)
			assert.Equal(t, 0, res.Interval)
			assert.Equal(t, domain.StatusLearning, res.Status)
		}
	}
}

func TestReview_EaseFactorFloor(t *testing.T) {
	// The ease factor never drops below 130, for any quality and any
	// starting value. The adjustment applies on the failure branch too.
	for _, ease := range []int{130, 140, 250, 400} {
		for quality := 0; quality <= 5; quality++ {
			prior := State{EaseFactor: ease, Interval: 10, Repetitions: 3}
			res := Review(prior, quality, testToday)
			assert.GreaterOrEqual(t, res.EaseFactor, domain.MinEaseFactor,
				"ease=%d quality=%d", ease, quality)
		}
	}
}

func TestReview_EaseFactorAdjustedOnFailure(t *testing.T) {
	// Deliberate deviation from textbook SM-2: a failed review still
	// nudges the ease factor downward.
	prior := State{EaseFactor: 300, Interval: 6, Repetitions: 2}

	res := Review(prior, 0, testToday)

	assert.Equal(t, 220, res.EaseFactor) // 300 - 80
}

func TestReview_IntervalGrowth(t *testing.T) {
	tests := []struct {
		name             string
		prior            State
		quality          int
		expectedInterval int
	}{
		{
			name:             "third success multiplies by ease",
			prior:            State{EaseFactor: 250, Interval: 6, Repetitions: 2},
			quality:          4,
			expectedInterval: 15, // round(6 * 2.50)
		},
		{
			name:             "growth uses the prior ease factor",
			prior:            State{EaseFactor: 200, Interval: 10, Repetitions: 3},
			quality:          5, // delta +10 lands after the interval is computed
			expectedInterval: 20,
		},
		{
			name:             "rounding up",
			prior:            State{EaseFactor: 130, Interval: 5, Repetitions: 4},
			quality:          3,
			expectedInterval: 7, // round(6.5)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Review(tt.prior, tt.quality, testToday)
			assert.Equal(t, tt.expectedInterval, res.Interval)
			assert.Equal(t, tt.prior.Repetitions+1, res.Repetitions)
		})
	}
}

func TestReview_IntervalMonotonic(t *testing.T) {
	// For repetitions >= 2 a successful review never shrinks the
	// interval while the ease factor is at least 100.
	for _, ease := range []int{130, 180, 250, 350} {
		for _, interval := range []int{1, 6, 15, 100} {
			for quality := PassThreshold; quality <= 5; quality++ {
				prior := State{EaseFactor: ease, Interval: interval, Repetitions: 2}
				res := Review(prior, quality, testToday)
				assert.GreaterOrEqual(t, res.Interval, interval,
					"ease=%d interval=%d quality=%d", ease, interval, quality)
			}
		}
	}
}

func TestReview_MasteredStatus(t *testing.T) {
	tests := []struct {
		name     string
		prior    State
		quality  int
		expected domain.CardStatus
	}{
		{
			name:     "long interval with high ease",
			prior:    State{EaseFactor: 250, Interval: 10, Repetitions: 3},
			quality:  4, // interval becomes 25
			expected: domain.StatusMastered,
		},
		{
			name:     "long interval but ease below threshold",
			prior:    State{EaseFactor: 240, Interval: 10, Repetitions: 3},
			quality:  4, // interval 24 but ease 240
			expected: domain.StatusReview,
		},
		{
			name:     "interval below mastered threshold",
			prior:    State{EaseFactor: 250, Interval: 6, Repetitions: 2},
			quality:  4, // interval 15
			expected: domain.StatusReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Review(tt.prior, tt.quality, testToday)
			assert.Equal(t, tt.expected, res.Status)
		})
	}
}

func TestReview_Deterministic(t *testing.T) {
	prior := State{EaseFactor: 237, Interval: 13, Repetitions: 4}

	first := Review(prior, 3, testToday)
	second := Review(prior, 3, testToday)

	assert.Equal(t, first, second)
}

func TestEaseDelta(t *testing.T) {
	tests := []struct {
		quality  int
		expected int
	}{
		{quality: 5, expected: 10},
		{quality: 4, expected: 0},
		{quality: 3, expected: -14},
		{quality: 2, expected: -32},
		{quality: 1, expected: -54},
		{quality: 0, expected: -80},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, easeDelta(tt.quality), "quality=%d", tt.quality)
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2024, 6, 1, 1, 30, 0, 0, loc) // 2024-05-31 22:30 UTC

	out := DateOnly(in)

	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), out)
}
