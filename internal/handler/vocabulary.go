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

// masteryLabel maps mastery levels to display strings
func masteryLabel(m domain.MasteryLevel) string {
	switch m {
	case domain.MasteryMastered:
		return "🌟 mastered"
	case domain.MasteryFamiliar:
		return "👍 familiar"
	case domain.MasteryLearning:
		return "📚 learning"
	default:
		return "🆕 new"
	}
}

// handleAddWord handles /addword — switches the user into word input mode
func (h *Handler) handleAddWord(c tele.Context) error {
	userID := c.Sender().ID

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingWordPair})

	return c.Send("Send each word as:\nword - translation", cancelMarkup())
}

// handleListWords handles /words
func (h *Handler) handleListWords(c tele.Context) error {
	userID := c.Sender().ID

	items, err := h.vocabService.ListItems(userID)
	if err != nil {
		h.logger.Error("Failed to list vocabulary", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Couldn't load your words. Please try again.")
	}

	if len(items) == 0 {
		return c.Send("You have no words yet. Add some with /addword.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📝 Your words (%d):\n\n", len(items))
	for _, item := range items {
		fmt.Fprintf(&b, "#%d %s — %s (%s, %d/%d correct)\n",
			item.ID, item.Word, item.Translation, masteryLabel(item.Mastery), item.CorrectCount, item.ReviewCount)
	}

	return c.Send(b.String())
}

// handleQuiz handles /quiz and the quiz menu button. The least
// reviewed word goes first.
func (h *Handler) handleQuiz(c tele.Context) error {
	userID := c.Sender().ID

	items, err := h.vocabService.ListItems(userID)
	if err != nil {
		h.logger.Error("Failed to load quiz word", zap.Error(err), zap.Int64("user_id", userID))
		return h.reply(c, "Couldn't start the quiz. Please try again.", nil)
	}

	if len(items) == 0 {
		return h.reply(c, "You have no words yet. Add some with /addword.", nil)
	}

	item := items[0]
	text := fmt.Sprintf("🎲 Do you remember this word?\n\n📝 %s\n\nThink of the translation, then answer honestly.", item.Word)

	markup := &tele.ReplyMarkup{}
	knew := markup.Data("✅ I knew it", "vocab", fmt.Sprintf("%d_1", item.ID))
	forgot := markup.Data("❌ I forgot", "vocab", fmt.Sprintf("%d_0", item.ID))
	markup.Inline(
		markup.Row(knew, forgot),
		markup.Row(btnMainMenu),
	)

	return h.reply(c, text, markup)
}

// handleVocabAnswer records a quiz answer.
// Payload format: <itemID>_<0|1>.
func (h *Handler) handleVocabAnswer(c tele.Context, data string) error {
	userID := c.Sender().ID

	parts := strings.Split(data, "_")
	if len(parts) != 2 {
		return c.Respond(&tele.CallbackResponse{Text: "Bad word reference"})
	}
	itemID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || (parts[1] != "0" && parts[1] != "1") {
		return c.Respond(&tele.CallbackResponse{Text: "Bad word reference"})
	}
	correct := parts[1] == "1"

	item, err := h.vocabService.ReviewItem(userID, itemID, correct)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Respond(&tele.CallbackResponse{Text: "That word is gone", ShowAlert: true})
		}
		h.logger.Error("Failed to record quiz answer",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("item_id", itemID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	h.logger.Info("Vocabulary reviewed",
		zap.Int64("user_id", userID),
		zap.Int64("item_id", item.ID),
		zap.Bool("correct", correct),
		zap.String("mastery", string(item.Mastery)),
	)

	text := fmt.Sprintf("📝 %s — %s\n\n%s, %d/%d correct", item.Word, item.Translation,
		masteryLabel(item.Mastery), item.CorrectCount, item.ReviewCount)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnQuiz),
		markup.Row(btnMainMenu),
	)

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleDeleteWord handles /delword <itemId>
func (h *Handler) handleDeleteWord(c tele.Context) error {
	userID := c.Sender().ID

	itemID, ok := h.parseIDArg(c, "Usage: /delword <itemId>")
	if !ok {
		return nil
	}

	if err := h.vocabService.DeleteItem(userID, itemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Send("You don't have a word with that id.")
		}
		h.logger.Error("Failed to delete word", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Couldn't delete the word. Please try again.")
	}

	return c.Send(fmt.Sprintf("🗑 Word #%d deleted.", itemID))
}
