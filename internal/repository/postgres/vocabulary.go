package postgres

import (
	"database/sql"
	"fmt"

	"cardbox/internal/domain"
)

// VocabularyRepo implements repository.VocabularyRepository
type VocabularyRepo struct {
	db *sql.DB
}

// NewVocabularyRepo creates a new vocabulary repository
func NewVocabularyRepo(db *sql.DB) *VocabularyRepo {
	return &VocabularyRepo{db: db}
}

const vocabularyColumns = `id, owner_id, word, translation, definition, example_sentence,
		pronunciation, part_of_speech, review_count, correct_count, mastery, created_at`

func scanVocabularyItem(row interface{ Scan(...interface{}) error }) (*domain.VocabularyItem, error) {
	var v domain.VocabularyItem
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Word, &v.Translation, &v.Definition, &v.ExampleSentence,
		&v.Pronunciation, &v.PartOfSpeech, &v.ReviewCount, &v.CorrectCount, &v.Mastery, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateItem inserts a vocabulary item. The insert is idempotent per
// (owner, word): on conflict nothing is written and the stored item is
// returned instead.
func (r *VocabularyRepo) CreateItem(item *domain.VocabularyItem) (*domain.VocabularyItem, error) {
	created, err := scanVocabularyItem(r.db.QueryRow(`
		INSERT INTO vocabulary_items (owner_id, word, translation, definition, example_sentence,
			pronunciation, part_of_speech, review_count, correct_count, mastery)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, $8)
		ON CONFLICT (owner_id, word) DO NOTHING
		RETURNING `+vocabularyColumns+`
	`, item.OwnerID, item.Word, item.Translation, item.Definition, item.ExampleSentence,
		item.Pronunciation, item.PartOfSpeech, domain.MasteryNew))
	if err == nil {
		return created, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("create vocabulary item: %w", err)
	}

	// Conflict: the word already exists for this owner
	existing, err := scanVocabularyItem(r.db.QueryRow(`
		SELECT `+vocabularyColumns+`
		FROM vocabulary_items
		WHERE owner_id = $1 AND word = $2
	`, item.OwnerID, item.Word))
	if err != nil {
		return nil, fmt.Errorf("fetch existing vocabulary item: %w", err)
	}
	return existing, nil
}

// GetItem returns a vocabulary item owned by the given user
func (r *VocabularyRepo) GetItem(ownerID, itemID int64) (*domain.VocabularyItem, error) {
	item, err := scanVocabularyItem(r.db.QueryRow(`
		SELECT `+vocabularyColumns+`
		FROM vocabulary_items
		WHERE id = $1 AND owner_id = $2
	`, itemID, ownerID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get vocabulary item: %w", err)
	}
	return item, nil
}

// ListItems returns all of the user's vocabulary, least reviewed first
// so quiz flows surface the words that need attention.
func (r *VocabularyRepo) ListItems(ownerID int64) ([]domain.VocabularyItem, error) {
	rows, err := r.db.Query(`
		SELECT `+vocabularyColumns+`
		FROM vocabulary_items
		WHERE owner_id = $1
		ORDER BY review_count ASC, word ASC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary items: %w", err)
	}
	defer rows.Close()

	var items []domain.VocabularyItem
	for rows.Next() {
		item, err := scanVocabularyItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return items, rows.Err()
}

// UpdateReview persists the counters and mastery produced by a review
func (r *VocabularyRepo) UpdateReview(ownerID, itemID int64, reviewCount, correctCount int, mastery domain.MasteryLevel) error {
	res, err := r.db.Exec(`
		UPDATE vocabulary_items
		SET review_count = $1, correct_count = $2, mastery = $3
		WHERE id = $4 AND owner_id = $5
	`, reviewCount, correctCount, mastery, itemID, ownerID)
	if err != nil {
		return fmt.Errorf("update vocabulary review: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteItem removes a vocabulary item
func (r *VocabularyRepo) DeleteItem(ownerID, itemID int64) error {
	res, err := r.db.Exec(`
		DELETE FROM vocabulary_items WHERE id = $1 AND owner_id = $2
	`, itemID, ownerID)
	if err != nil {
		return fmt.Errorf("delete vocabulary item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetStats counts the user's vocabulary items by mastery level
func (r *VocabularyRepo) GetStats(ownerID int64) (*domain.VocabularyStats, error) {
	rows, err := r.db.Query(`
		SELECT mastery, COUNT(*)
		FROM vocabulary_items
		WHERE owner_id = $1
		GROUP BY mastery
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("vocabulary stats: %w", err)
	}
	defer rows.Close()

	stats := &domain.VocabularyStats{}
	for rows.Next() {
		var mastery domain.MasteryLevel
		var count int
		if err := rows.Scan(&mastery, &count); err != nil {
			return nil, err
		}
		stats.Total += count
		switch mastery {
		case domain.MasteryNew:
			stats.New = count
		case domain.MasteryLearning:
			stats.Learning = count
		case domain.MasteryFamiliar:
			stats.Familiar = count
		case domain.MasteryMastered:
			stats.Mastered = count
		}
	}

	return stats, rows.Err()
}
