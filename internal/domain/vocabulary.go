package domain

import "time"

// MasteryLevel is the proficiency classification of a vocabulary item,
// derived from its review/correct counters.
type MasteryLevel string

const (
	MasteryNew      MasteryLevel = "new"
	MasteryLearning MasteryLevel = "learning"
	MasteryFamiliar MasteryLevel = "familiar"
	MasteryMastered MasteryLevel = "mastered"
)

// VocabularyItem represents a word a user is learning.
// (OwnerID, Word) is unique: adding the same word twice returns the
// existing item.
type VocabularyItem struct {
	ID              int64
	OwnerID         int64
	Word            string
	Translation     string
	Definition      string
	ExampleSentence string
	Pronunciation   string
	PartOfSpeech    string
	ReviewCount     int
	CorrectCount    int
	Mastery         MasteryLevel
	CreatedAt       time.Time
}
