package handler

import (
	"errors"
	"fmt"
	"strings"

	"cardbox/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// parseCardInput splits "front | back" or "front | back | hint" into
// its parts. The hint is optional.
func parseCardInput(text string) (front, back, hint string, err error) {
	parts := strings.Split(text, "|")
	if len(parts) < 2 || len(parts) > 3 {
		return "", "", "", fmt.Errorf("expected \"front | back\" or \"front | back | hint\"")
	}

	front = strings.TrimSpace(parts[0])
	back = strings.TrimSpace(parts[1])
	if len(parts) == 3 {
		hint = strings.TrimSpace(parts[2])
	}
	if front == "" || back == "" {
		return "", "", "", fmt.Errorf("front and back cannot be empty")
	}
	return front, back, hint, nil
}

// parseWordPair splits "word - translation" into its parts. Only the
// first dash separates, so translations may contain dashes.
func parseWordPair(text string) (word, translation string, err error) {
	parts := strings.SplitN(text, "-", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("expected \"word - translation\"")
	}

	word = strings.TrimSpace(parts[0])
	translation = strings.TrimSpace(parts[1])
	if word == "" || translation == "" {
		return "", "", fmt.Errorf("word and translation cannot be empty")
	}
	return word, translation, nil
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Ensure user exists
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	// Check authorization first
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	// If not authorized, treat the message as a password attempt
	if !authorized {
		if h.authService.CheckPassword(text) {
			if err := h.authService.AuthorizeUser(userID); err != nil {
				h.logger.Error("Failed to authorize user", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			h.logger.Info("User authorized", zap.Int64("user_id", userID))
			h.ResetState(userID)
			return c.Send("✅ Access granted!\n\n🏠 Main menu\n\n"+helpText, mainMenuMarkup())
		}

		// Wrong password
		return c.Send("Wrong password, try again.")
	}

	// User is authorized, handle based on state
	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingCard:
		front, back, hint, err := parseCardInput(text)
		if err != nil {
			return c.Send("Couldn't parse that: "+err.Error(), cancelMarkup())
		}

		card, err := h.cardService.CreateCard(userID, state.DeckID, front, back, hint)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				h.ResetState(userID)
				return c.Send("That deck doesn't exist anymore.")
			}
			h.logger.Error("Failed to create card",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.Int64("deck_id", state.DeckID),
			)
			return c.Send("Couldn't save the card. Please try again.")
		}

		h.logger.Info("Card created",
			zap.Int64("user_id", userID),
			zap.Int64("card_id", card.ID),
			zap.Int64("deck_id", card.DeckID),
		)

		// Stay in card input mode so several cards can be added in a row
		return c.Send(fmt.Sprintf("✅ Card #%d saved!\n\nSend another card or cancel.", card.ID), cancelMarkup())

	case domain.StateWaitingWordPair:
		word, translation, err := parseWordPair(text)
		if err != nil {
			return c.Send("Couldn't parse that: "+err.Error(), cancelMarkup())
		}

		item, err := h.vocabService.AddItem(userID, word, translation, "", "", "", "")
		if err != nil {
			h.logger.Error("Failed to add vocabulary item",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
			return c.Send("Couldn't save the word. Please try again.")
		}

		if item.ReviewCount > 0 || item.Translation != translation {
			return c.Send(fmt.Sprintf("You already have %q — %s.\n\nSend another word or cancel.", item.Word, item.Translation), cancelMarkup())
		}

		h.logger.Info("Vocabulary item saved",
			zap.Int64("user_id", userID),
			zap.Int64("item_id", item.ID),
		)
		return c.Send(fmt.Sprintf("✅ %q saved!\n\nSend another word or cancel.", item.Word), cancelMarkup())

	default:
		return c.Send("I'm not sure what to do with that. See /help for the commands.")
	}
}
