package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cardbox/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleListDecks handles /decks and the decks menu button
func (h *Handler) handleListDecks(c tele.Context) error {
	userID := c.Sender().ID

	decks, err := h.deckService.ListDecks(userID)
	if err != nil {
		h.logger.Error("Failed to list decks", zap.Error(err), zap.Int64("user_id", userID))
		return h.reply(c, "Couldn't load your decks. Please try again.", nil)
	}

	if len(decks) == 0 {
		return h.reply(c, "You have no decks yet. Create one with /newdeck <name>.", nil)
	}

	var b strings.Builder
	b.WriteString("🗂 Your decks:\n\n")
	for _, deck := range decks {
		fmt.Fprintf(&b, "#%d %s — %d cards\n", deck.ID, deck.Name, deck.CardCount)
		if deck.Description != "" {
			fmt.Fprintf(&b, "   %s\n", deck.Description)
		}
	}
	b.WriteString("\n/cards <deckId> to see the cards, /study <deckId> to review.")

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))
	return h.reply(c, b.String(), markup)
}

// handleNewDeck handles /newdeck <name>
func (h *Handler) handleNewDeck(c tele.Context) error {
	userID := c.Sender().ID

	name := strings.TrimSpace(c.Message().Payload)
	if name == "" {
		return c.Send("Usage: /newdeck <name>")
	}

	deck, err := h.deckService.CreateDeck(userID, name, "", "")
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Send("Deck name cannot be empty.")
		}
		h.logger.Error("Failed to create deck", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Couldn't create the deck. Please try again.")
	}

	h.logger.Info("Deck created",
		zap.Int64("user_id", userID),
		zap.Int64("deck_id", deck.ID),
	)
	return c.Send(fmt.Sprintf("✅ Deck #%d %q created.\n\nAdd cards with /addcard %d.", deck.ID, deck.Name, deck.ID))
}

// handleRenameDeck handles /renamedeck <deckId> <name>
func (h *Handler) handleRenameDeck(c tele.Context) error {
	userID := c.Sender().ID

	payload := strings.TrimSpace(c.Message().Payload)
	idStr, name, found := strings.Cut(payload, " ")
	if !found {
		return c.Send("Usage: /renamedeck <deckId> <name>")
	}
	deckID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return c.Send("Usage: /renamedeck <deckId> <name>")
	}

	deck, err := h.deckService.UpdateDeck(userID, deckID, &name, nil, nil)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Send("You don't have a deck with that id.")
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Send("Deck name cannot be empty.")
		}
		h.logger.Error("Failed to rename deck", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Couldn't rename the deck. Please try again.")
	}

	return c.Send(fmt.Sprintf("✅ Deck #%d is now %q.", deck.ID, deck.Name))
}

// handleDeleteDeck handles /deldeck <deckId>
func (h *Handler) handleDeleteDeck(c tele.Context) error {
	userID := c.Sender().ID

	deckID, ok := h.parseIDArg(c, "Usage: /deldeck <deckId>")
	if !ok {
		return nil
	}

	if err := h.deckService.DeleteDeck(userID, deckID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Send("You don't have a deck with that id.")
		}
		h.logger.Error("Failed to delete deck", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Couldn't delete the deck. Please try again.")
	}

	h.logger.Info("Deck deleted",
		zap.Int64("user_id", userID),
		zap.Int64("deck_id", deckID),
	)
	return c.Send(fmt.Sprintf("🗑 Deck #%d and all its cards are gone.", deckID))
}

// parseIDArg reads a single numeric command argument. On failure it
// sends the usage line and reports false.
func (h *Handler) parseIDArg(c tele.Context, usage string) (int64, bool) {
	args := c.Args()
	if len(args) != 1 {
		_ = c.Send(usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		_ = c.Send(usage)
		return 0, false
	}
	return id, true
}

// reply edits the current message for callbacks and sends a new one
// for commands.
func (h *Handler) reply(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	var opts []interface{}
	if markup != nil {
		opts = append(opts, markup)
	}

	if c.Callback() != nil {
		if err := c.Edit(text, opts...); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil
			}
			return c.Send(text, opts...)
		}
		return c.Respond()
	}
	return c.Send(text, opts...)
}
