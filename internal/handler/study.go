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

// handleStudy handles /study [deckId] and the study menu button. It
// shows one due card at a time; grading it pulls the next one.
func (h *Handler) handleStudy(c tele.Context) error {
	userID := c.Sender().ID

	var deckID *int64
	if c.Message() != nil && c.Callback() == nil {
		args := c.Args()
		if len(args) > 1 {
			return c.Send("Usage: /study [deckId]")
		}
		if len(args) == 1 {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return c.Send("Usage: /study [deckId]")
			}
			deckID = &id
		}
	}

	return h.sendNextDueCard(c, userID, deckID)
}

// sendNextDueCard fetches the oldest due card and presents its front
func (h *Handler) sendNextDueCard(c tele.Context, userID int64, deckID *int64) error {
	cards, err := h.cardService.GetDueCards(userID, deckID, 1)
	if err != nil {
		h.logger.Error("Failed to get due cards", zap.Error(err), zap.Int64("user_id", userID))
		return h.reply(c, "Couldn't load your due cards. Please try again.", nil)
	}

	if len(cards) == 0 {
		markup := &tele.ReplyMarkup{}
		markup.Inline(markup.Row(btnMainMenu))
		return h.reply(c, "🎉 All caught up! No cards due right now.", markup)
	}

	card := cards[0]
	text := "📖 " + card.Front
	if card.Hint != "" {
		text += "\n💡 " + card.Hint
	}

	var scopeID int64
	if deckID != nil {
		scopeID = *deckID
	}

	markup := &tele.ReplyMarkup{}
	reveal := markup.Data("Show answer", "reveal", fmt.Sprintf("%d_%d", card.ID, scopeID))
	markup.Inline(
		markup.Row(reveal),
		markup.Row(btnMainMenu),
	)

	return h.reply(c, text, markup)
}

// handleReveal shows the back of a card and the grading buttons.
// Payload format: <cardID>_<deckID>, deckID 0 meaning all decks.
func (h *Handler) handleReveal(c tele.Context, data string) error {
	userID := c.Sender().ID

	parts := strings.Split(data, "_")
	if len(parts) != 2 {
		return c.Respond(&tele.CallbackResponse{Text: "Bad card reference"})
	}
	cardID, err1 := strconv.ParseInt(parts[0], 10, 64)
	scopeID, err2 := strconv.ParseInt(parts[1], 10, 64)
	if err1 != nil || err2 != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Bad card reference"})
	}

	card, err := h.cardService.GetCard(userID, cardID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Respond(&tele.CallbackResponse{Text: "That card is gone", ShowAlert: true})
		}
		h.logger.Error("Failed to load card", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	text := fmt.Sprintf("📖 %s\n\n✅ %s\n\nHow well did you remember it?\n0 — not at all, 5 — perfectly", card.Front, card.Back)

	markup := &tele.ReplyMarkup{}
	low := tele.Row{}
	high := tele.Row{}
	for q := 0; q <= 5; q++ {
		btn := markup.Data(strconv.Itoa(q), "review", fmt.Sprintf("%d_%d_%d", card.ID, q, scopeID))
		if q < 3 {
			low = append(low, btn)
		} else {
			high = append(high, btn)
		}
	}
	markup.Inline(low, high)

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleReview applies a grade and moves on to the next due card.
// Payload format: <cardID>_<quality>_<deckID>.
func (h *Handler) handleReview(c tele.Context, data string) error {
	userID := c.Sender().ID

	parts := strings.Split(data, "_")
	if len(parts) != 3 {
		return c.Respond(&tele.CallbackResponse{Text: "Bad review reference"})
	}
	cardID, err1 := strconv.ParseInt(parts[0], 10, 64)
	quality, err2 := strconv.Atoi(parts[1])
	scopeID, err3 := strconv.ParseInt(parts[2], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Bad review reference"})
	}

	card, err := h.cardService.ReviewCard(userID, cardID, quality)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Respond(&tele.CallbackResponse{Text: "That card is gone", ShowAlert: true})
		case errors.Is(err, domain.ErrConflict):
			return c.Respond(&tele.CallbackResponse{Text: "Card was reviewed elsewhere, skipping", ShowAlert: true})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Respond(&tele.CallbackResponse{Text: "Bad grade"})
		}
		h.logger.Error("Failed to review card",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("card_id", cardID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	h.logger.Info("Card reviewed",
		zap.Int64("user_id", userID),
		zap.Int64("card_id", card.ID),
		zap.Int("quality", quality),
		zap.String("status", string(card.Status)),
		zap.Int("interval_days", card.Interval),
	)

	if err := c.Respond(&tele.CallbackResponse{
		Text: fmt.Sprintf("Next review in %d day(s)", card.Interval),
	}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	var deckID *int64
	if scopeID != 0 {
		deckID = &scopeID
	}
	return h.sendNextDueCard(c, userID, deckID)
}
