package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStats handles /stats and the stats menu button
func (h *Handler) handleStats(c tele.Context) error {
	userID := c.Sender().ID

	cardStats, err := h.statsService.GetFlashcardStats(userID)
	if err != nil {
		h.logger.Error("Failed to load flashcard stats", zap.Error(err), zap.Int64("user_id", userID))
		return h.reply(c, "Couldn't load your stats. Please try again.", nil)
	}

	vocabStats, err := h.statsService.GetVocabularyStats(userID)
	if err != nil {
		h.logger.Error("Failed to load vocabulary stats", zap.Error(err), zap.Int64("user_id", userID))
		return h.reply(c, "Couldn't load your stats. Please try again.", nil)
	}

	text := fmt.Sprintf(`📊 Your progress

Flashcards (%d total):
🆕 new: %d
📚 learning: %d
🔁 review: %d
🌟 mastered: %d
⏰ due today: %d

Vocabulary (%d total):
🆕 new: %d
📚 learning: %d
👍 familiar: %d
🌟 mastered: %d`,
		cardStats.Total, cardStats.New, cardStats.Learning, cardStats.Review,
		cardStats.Mastered, cardStats.DueToday,
		vocabStats.Total, vocabStats.New, vocabStats.Learning,
		vocabStats.Familiar, vocabStats.Mastered,
	)

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))
	return h.reply(c, text, markup)
}
