package handler

import (
	"sync"

	"cardbox/internal/domain"
	"cardbox/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	authService  *service.AuthService
	deckService  *service.DeckService
	cardService  *service.CardService
	vocabService *service.VocabularyService
	statsService *service.StatsService
	logger       *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	deckService *service.DeckService,
	cardService *service.CardService,
	vocabService *service.VocabularyService,
	statsService *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		authService:  authService,
		deckService:  deckService,
		cardService:  cardService,
		vocabService: vocabService,
		statsService: statsService,
		logger:       logger,
		states:       make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleStart)
	h.bot.Handle("/decks", h.handleListDecks)
	h.bot.Handle("/newdeck", h.handleNewDeck)
	h.bot.Handle("/renamedeck", h.handleRenameDeck)
	h.bot.Handle("/deldeck", h.handleDeleteDeck)
	h.bot.Handle("/addcard", h.handleAddCard)
	h.bot.Handle("/cards", h.handleListCards)
	h.bot.Handle("/editcard", h.handleEditCard)
	h.bot.Handle("/delcard", h.handleDeleteCard)
	h.bot.Handle("/study", h.handleStudy)
	h.bot.Handle("/stats", h.handleStats)
	h.bot.Handle("/addword", h.handleAddWord)
	h.bot.Handle("/words", h.handleListWords)
	h.bot.Handle("/quiz", h.handleQuiz)
	h.bot.Handle("/delword", h.handleDeleteWord)

	// Text messages (password + state machine input)
	h.bot.Handle(tele.OnText, h.handleText)

	// Static inline buttons
	h.bot.Handle(&btnStudy, h.handleStudy)
	h.bot.Handle(&btnQuiz, h.handleQuiz)
	h.bot.Handle(&btnDecks, h.handleListDecks)
	h.bot.Handle(&btnStats, h.handleStats)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnStudy = tele.Btn{
		Unique: "study",
		Text:   "📖 Study due cards",
	}
	btnQuiz = tele.Btn{
		Unique: "quiz",
		Text:   "🎲 Vocabulary quiz",
	}
	btnDecks = tele.Btn{
		Unique: "decks",
		Text:   "🗂 My decks",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 Progress",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnStudy),
		menu.Row(btnQuiz),
		menu.Row(btnDecks, btnStats),
	)
	return menu
}

// cancelMarkup returns a keyboard with a single cancel button
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

const helpText = `Your flashcards:
/decks — list your decks
/newdeck <name> — create a deck
/renamedeck <deckId> <name> — rename a deck
/deldeck <deckId> — delete a deck with all its cards
/addcard <deckId> — add a card (front | back | hint)
/cards <deckId> — list cards in a deck
/editcard <cardId> front | back | hint — edit a card
/delcard <cardId> <deckId> — delete a card
/study [deckId] — review cards that are due

Your vocabulary:
/addword — add a word (word - translation)
/words — list your words
/quiz — practice a word
/delword <itemId> — delete a word

/stats — your progress`
