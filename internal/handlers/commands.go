package handlers

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleStart greets a registered user with the menu, everyone else with
// the registration question.
func (h *Handler) HandleStart(msg *tgbotapi.Message) {
	uid := msg.From.ID
	chatID := msg.Chat.ID
	s := h.Sessions.Get(uid)
	s.ResetBooking()

	u, err := h.DB.GetUser(uid)
	if err != nil {
		log.Printf("get user %d: %v", uid, err)
		h.send(chatID, msgGenericError)
		return
	}
	if u != nil {
		h.send(chatID, fmt.Sprintf(msgWelcomeNamed, u.Nickname))
		h.showMenu(chatID, s)
		return
	}
	h.promptRegistration(chatID, s)
}
