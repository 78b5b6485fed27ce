package domain

// FlashcardStats is a per-user rollup over cards, counted fresh on
// every call.
type FlashcardStats struct {
	Total    int
	New      int
	Learning int
	Review   int
	Mastered int
	DueToday int
}

// VocabularyStats is a per-user rollup over vocabulary items
type VocabularyStats struct {
	Total    int
	New      int
	Learning int
	Familiar int
	Mastered int
}
