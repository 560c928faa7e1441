package handlers

import (
	"log"
	"time"

	"computer-club-bot/internal/keyboards"
	"computer-club-bot/internal/models"
	"computer-club-bot/internal/session"
	"computer-club-bot/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the slice of tgbotapi.BotAPI the handlers use. Tests plug in
// a recording fake.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	Bot      Sender
	DB       *storage.DB
	Sessions *session.Store
	Now      func() time.Time
}

func New(bot Sender, db *storage.DB, sessions *session.Store) *Handler {
	return &Handler{Bot: bot, DB: db, Sessions: sessions, Now: time.Now}
}

func (h *Handler) HandleUpdate(upd tgbotapi.Update) {
	switch {
	case upd.Message != nil:
		if upd.Message.IsCommand() && upd.Message.Command() == "start" {
			h.HandleStart(upd.Message)
			return
		}
		h.HandleText(upd.Message)
	case upd.CallbackQuery != nil:
		h.HandleCallback(upd.CallbackQuery)
	}
}

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.Bot.Send(msg); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}

// showMenu returns the user to the idle state and renders the main menu.
func (h *Handler) showMenu(chatID int64, s *session.Session) {
	s.State = models.StateIdle
	h.sendWithKeyboard(chatID, msgChooseAction, keyboards.MainMenu())
}

// promptRegistration is the fallback for anyone without a user record.
func (h *Handler) promptRegistration(chatID int64, s *session.Session) {
	s.State = models.StateAwaitingYesNo
	h.sendWithKeyboard(chatID, msgGreetingNew, keyboards.YesNo())
}
