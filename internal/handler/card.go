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

// handleAddCard handles /addcard <deckId> — switches the user into
// card input mode for that deck.
func (h *Handler) handleAddCard(c tele.Context) error {
	userID := c.Sender().ID

	deckID, ok := h.parseIDArg(c, "Usage: /addcard <deckId>")
	if !ok {
		return nil
	}

	deck, err := h.deckService.GetDeck(userID, deckID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Send("You don't have a deck with that id.")
		}
		h.logger.Error("Failed to load deck", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Something went wrong. Please try again later.")
	}

	h.SetState(userID, &domain.StateData{
		State:  domain.StateWaitingCard,
		DeckID: deck.ID,
	})

	return c.Send(fmt.Sprintf("Adding cards to %q.\n\nSend each card as:\nfront | back\nor\nfront | back | hint", deck.Name), cancelMarkup())
}

// handleListCards handles /cards <deckId>
func (h *Handler) handleListCards(c tele.Context) error {
	userID := c.Sender().ID

	deckID, ok := h.parseIDArg(c, "Usage: /cards <deckId>")
	if !ok {
		return nil
	}

	cards, err := h.cardService.ListCards(userID, deckID)
	if err != nil {
		h.logger.Error("Failed to list cards", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Couldn't load the cards. Please try again.")
	}

	if len(cards) == 0 {
		return c.Send(fmt.Sprintf("No cards in that deck yet. Add some with /addcard %d.", deckID))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📇 Cards (%d):\n\n", len(cards))
	for _, card := range cards {
		fmt.Fprintf(&b, "#%d %s — %s", card.ID, card.Front, card.Back)
		if card.Hint != "" {
			fmt.Fprintf(&b, " (%s)", card.Hint)
		}
		fmt.Fprintf(&b, "\n   %s, next review %s\n", card.Status, card.NextReviewDate.Format("2006-01-02"))
	}

	return c.Send(b.String())
}

// handleEditCard handles /editcard <cardId> front | back | hint
func (h *Handler) handleEditCard(c tele.Context) error {
	userID := c.Sender().ID

	payload := strings.TrimSpace(c.Message().Payload)
	idStr, rest, found := strings.Cut(payload, " ")
	if !found {
		return c.Send("Usage: /editcard <cardId> front | back | hint")
	}
	cardID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return c.Send("Usage: /editcard <cardId> front | back | hint")
	}

	front, back, hint, err := parseCardInput(rest)
	if err != nil {
		return c.Send("Couldn't parse that: " + err.Error())
	}

	card, err := h.cardService.UpdateCard(userID, cardID, &front, &back, &hint)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Send("You don't have a card with that id.")
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Send("Card front and back cannot be empty.")
		}
		h.logger.Error("Failed to edit card", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Couldn't update the card. Please try again.")
	}

	return c.Send(fmt.Sprintf("✅ Card #%d is now: %s — %s", card.ID, card.Front, card.Back))
}

// handleDeleteCard handles /delcard <cardId> <deckId>
func (h *Handler) handleDeleteCard(c tele.Context) error {
	userID := c.Sender().ID

	args := c.Args()
	if len(args) != 2 {
		return c.Send("Usage: /delcard <cardId> <deckId>")
	}
	cardID, err1 := strconv.ParseInt(args[0], 10, 64)
	deckID, err2 := strconv.ParseInt(args[1], 10, 64)
	if err1 != nil || err2 != nil {
		return c.Send("Usage: /delcard <cardId> <deckId>")
	}

	if err := h.cardService.DeleteCard(userID, cardID, deckID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Send("You don't have a card with that id in that deck.")
		}
		h.logger.Error("Failed to delete card", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Couldn't delete the card. Please try again.")
	}

	h.logger.Info("Card deleted",
		zap.Int64("user_id", userID),
		zap.Int64("card_id", cardID),
	)
	return c.Send(fmt.Sprintf("🗑 Card #%d deleted.", cardID))
}
