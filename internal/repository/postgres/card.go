package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"cardbox/internal/domain"
)

// CardRepo implements repository.CardRepository
type CardRepo struct {
	db *sql.DB
}

// NewCardRepo creates a new card repository
func NewCardRepo(db *sql.DB) *CardRepo {
	return &CardRepo{db: db}
}

const cardColumns = `id, deck_id, owner_id, front, back, hint, ease_factor, interval_days,
		repetitions, next_review_date, last_review_date, status, revision, created_at`

// scanCard reads one card row from either *sql.Row or *sql.Rows
func scanCard(row interface{ Scan(...interface{}) error }) (*domain.Card, error) {
	var c domain.Card
	var lastReview sql.NullTime
	err := row.Scan(
		&c.ID, &c.DeckID, &c.OwnerID, &c.Front, &c.Back, &c.Hint,
		&c.EaseFactor, &c.Interval, &c.Repetitions,
		&c.NextReviewDate, &lastReview, &c.Status, &c.Revision, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lastReview.Valid {
		c.LastReviewDate = &lastReview.Time
	}
	return &c, nil
}

// CreateCard inserts a card and bumps the owning deck's card_count in
// one transaction. The guarded counter update doubles as the deck
// ownership check: zero rows means the deck is absent or foreign.
func (r *CardRepo) CreateCard(ownerID, deckID int64, front, back, hint string, today time.Time) (*domain.Card, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin create card: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE decks SET card_count = card_count + 1
		WHERE id = $1 AND owner_id = $2
	`, deckID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("increment card count: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}

	card := &domain.Card{
		DeckID:         deckID,
		OwnerID:        ownerID,
		Front:          front,
		Back:           back,
		Hint:           hint,
		EaseFactor:     domain.DefaultEaseFactor,
		Interval:       0,
		Repetitions:    0,
		NextReviewDate: today,
		Status:         domain.StatusNew,
	}

	err = tx.QueryRow(`
		INSERT INTO cards (deck_id, owner_id, front, back, hint, ease_factor, interval_days,
			repetitions, next_review_date, status, revision)
		VALUES ($1, $2, $3, $4, $5, $6, 0, 0, $7, $8, 0)
		RETURNING id, created_at
	`, deckID, ownerID, front, back, hint, domain.DefaultEaseFactor, today, domain.StatusNew,
	).Scan(&card.ID, &card.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert card: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create card: %w", err)
	}
	return card, nil
}

// GetCard returns a card owned by the given user
func (r *CardRepo) GetCard(ownerID, cardID int64) (*domain.Card, error) {
	card, err := scanCard(r.db.QueryRow(`
		SELECT `+cardColumns+`
		FROM cards
		WHERE id = $1 AND owner_id = $2
	`, cardID, ownerID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	return card, nil
}

// UpdateContent edits the card faces only; scheduling fields are never
// touched here.
func (r *CardRepo) UpdateContent(ownerID, cardID int64, front, back, hint string) (*domain.Card, error) {
	card, err := scanCard(r.db.QueryRow(`
		UPDATE cards
		SET front = $1, back = $2, hint = $3
		WHERE id = $4 AND owner_id = $5
		RETURNING `+cardColumns+`
	`, front, back, hint, cardID, ownerID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update card content: %w", err)
	}
	return card, nil
}

// UpdateScheduling persists a review result. The write only applies
// when the stored revision still matches the one the caller read, so
// two concurrent reviews of the same card cannot interleave; the loser
// gets domain.ErrConflict and retries from a fresh read.
func (r *CardRepo) UpdateScheduling(ownerID, cardID int64, revision int, easeFactor, interval, repetitions int,
	status domain.CardStatus, nextReview, lastReview time.Time) (*domain.Card, error) {
	card, err := scanCard(r.db.QueryRow(`
		UPDATE cards
		SET ease_factor = $1, interval_days = $2, repetitions = $3, status = $4,
			next_review_date = $5, last_review_date = $6, revision = revision + 1
		WHERE id = $7 AND owner_id = $8 AND revision = $9
		RETURNING `+cardColumns+`
	`, easeFactor, interval, repetitions, status, nextReview, lastReview, cardID, ownerID, revision))
	if err == sql.ErrNoRows {
		return nil, domain.ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("update card scheduling: %w", err)
	}
	return card, nil
}

// DeleteCard removes a card and decrements the deck counter in one
// transaction. The decrement is clamped at zero so a redundant delete
// can never drive the counter negative.
func (r *CardRepo) DeleteCard(ownerID, cardID, deckID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin delete card: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		DELETE FROM cards WHERE id = $1 AND deck_id = $2 AND owner_id = $3
	`, cardID, deckID, ownerID)
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(`
		UPDATE decks SET card_count = GREATEST(card_count - 1, 0)
		WHERE id = $1 AND owner_id = $2
	`, deckID, ownerID); err != nil {
		return fmt.Errorf("decrement card count: %w", err)
	}

	return tx.Commit()
}

// ListCards returns all cards in a deck, oldest first
func (r *CardRepo) ListCards(ownerID, deckID int64) ([]domain.Card, error) {
	rows, err := r.db.Query(`
		SELECT `+cardColumns+`
		FROM cards
		WHERE owner_id = $1 AND deck_id = $2
		ORDER BY created_at ASC
	`, ownerID, deckID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	return collectCards(rows)
}

// GetDueCards returns cards due on or before today, oldest due first,
// optionally narrowed to one deck. Read-only.
func (r *CardRepo) GetDueCards(ownerID int64, deckID *int64, today time.Time, limit int) ([]domain.Card, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if deckID != nil {
		rows, err = r.db.Query(`
			SELECT `+cardColumns+`
			FROM cards
			WHERE owner_id = $1 AND deck_id = $2 AND next_review_date <= $3
			ORDER BY next_review_date ASC
			LIMIT $4
		`, ownerID, *deckID, today, limit)
	} else {
		rows, err = r.db.Query(`
			SELECT `+cardColumns+`
			FROM cards
			WHERE owner_id = $1 AND next_review_date <= $2
			ORDER BY next_review_date ASC
			LIMIT $3
		`, ownerID, today, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}
	defer rows.Close()

	return collectCards(rows)
}

func collectCards(rows *sql.Rows) ([]domain.Card, error) {
	var cards []domain.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

// GetStats counts the user's cards by status plus the due backlog.
// Computed fresh on every call, nothing cached.
func (r *CardRepo) GetStats(ownerID int64, today time.Time) (*domain.FlashcardStats, error) {
	rows, err := r.db.Query(`
		SELECT status, COUNT(*)
		FROM cards
		WHERE owner_id = $1
		GROUP BY status
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("flashcard stats: %w", err)
	}
	defer rows.Close()

	stats := &domain.FlashcardStats{}
	for rows.Next() {
		var status domain.CardStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.Total += count
		switch status {
		case domain.StatusNew:
			stats.New = count
		case domain.StatusLearning:
			stats.Learning = count
		case domain.StatusReview:
			stats.Review = count
		case domain.StatusMastered:
			stats.Mastered = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.db.QueryRow(`
		SELECT COUNT(*) FROM cards WHERE owner_id = $1 AND next_review_date <= $2
	`, ownerID, today).Scan(&stats.DueToday)
	if err != nil {
		return nil, fmt.Errorf("due count: %w", err)
	}

	return stats, nil
}
