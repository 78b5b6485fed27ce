package postgres

import (
	"database/sql"
	"fmt"

	"cardbox/internal/domain"
)

// DeckRepo implements repository.DeckRepository
type DeckRepo struct {
	db *sql.DB
}

// NewDeckRepo creates a new deck repository
func NewDeckRepo(db *sql.DB) *DeckRepo {
	return &DeckRepo{db: db}
}

// CreateDeck inserts a new deck with a zero card count
func (r *DeckRepo) CreateDeck(ownerID int64, name, description, color string) (*domain.Deck, error) {
	query := `
		INSERT INTO decks (owner_id, name, description, color, card_count)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING id, created_at
	`
	deck := &domain.Deck{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Color:       color,
	}
	err := r.db.QueryRow(query, ownerID, name, description, color).Scan(&deck.ID, &deck.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}
	return deck, nil
}

// GetDeck returns a deck owned by the given user. A deck owned by
// someone else is reported as not found.
func (r *DeckRepo) GetDeck(ownerID, deckID int64) (*domain.Deck, error) {
	query := `
		SELECT id, owner_id, name, description, color, card_count, created_at
		FROM decks
		WHERE id = $1 AND owner_id = $2
	`
	var d domain.Deck
	err := r.db.QueryRow(query, deckID, ownerID).Scan(
		&d.ID, &d.OwnerID, &d.Name, &d.Description, &d.Color, &d.CardCount, &d.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}
	return &d, nil
}

// UpdateDeck writes the deck's editable fields
func (r *DeckRepo) UpdateDeck(deck *domain.Deck) error {
	query := `
		UPDATE decks
		SET name = $1, description = $2, color = $3
		WHERE id = $4 AND owner_id = $5
	`
	res, err := r.db.Exec(query, deck.Name, deck.Description, deck.Color, deck.ID, deck.OwnerID)
	if err != nil {
		return fmt.Errorf("update deck: %w", err)
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

// DeleteDeck removes a deck and all of its cards in one transaction
func (r *DeckRepo) DeleteDeck(ownerID, deckID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin delete deck: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM cards WHERE deck_id = $1 AND owner_id = $2`, deckID, ownerID); err != nil {
		return fmt.Errorf("delete deck cards: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM decks WHERE id = $1 AND owner_id = $2`, deckID, ownerID)
	if err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit()
}

// ListDecks returns all decks of a user, newest first
func (r *DeckRepo) ListDecks(ownerID int64) ([]domain.Deck, error) {
	query := `
		SELECT id, owner_id, name, description, color, card_count, created_at
		FROM decks
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	var decks []domain.Deck
	for rows.Next() {
		var d domain.Deck
		if err := rows.Scan(&d.ID, &d.OwnerID, &d.Name, &d.Description, &d.Color, &d.CardCount, &d.CreatedAt); err != nil {
			return nil, err
		}
		decks = append(decks, d)
	}

	return decks, rows.Err()
}
