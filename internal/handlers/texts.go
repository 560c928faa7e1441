package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"computer-club-bot/internal/keyboards"
	"computer-club-bot/internal/models"
	"computer-club-bot/internal/session"
	"computer-club-bot/internal/utils"
	"computer-club-bot/internal/zones"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleText routes free-text replies to the state that expects them.
// Text arriving in any other state falls through to the menu (or to
// registration for unknown users).
func (h *Handler) HandleText(msg *tgbotapi.Message) {
	uid := msg.From.ID
	chatID := msg.Chat.ID
	s := h.Sessions.Get(uid)
	text := strings.TrimSpace(msg.Text)

	switch s.State {
	case models.StateAwaitingNewPhone:
		h.handleNewPhone(chatID, s, text)
	case models.StateAwaitingNewNickname:
		h.handleNewNickname(uid, chatID, s, text)
	case models.StateAwaitingMachineCount:
		h.handleMachineCount(chatID, s, text)
	default:
		u, err := h.DB.GetUser(uid)
		if err != nil {
			log.Printf("get user %d: %v", uid, err)
			h.send(chatID, msgGenericError)
			return
		}
		if u != nil {
			h.showMenu(chatID, s)
		} else {
			h.promptRegistration(chatID, s)
		}
	}
}

func (h *Handler) handleNewPhone(chatID int64, s *session.Session, phone string) {
	if !utils.ValidatePhone(phone) {
		h.send(chatID, msgBadPhone)
		return
	}
	s.Phone = phone
	s.State = models.StateAwaitingNewNickname
	h.send(chatID, msgAskNickname)
}

func (h *Handler) handleNewNickname(uid, chatID int64, s *session.Session, nickname string) {
	if s.Phone == "" {
		s.State = models.StateAwaitingNewPhone
		h.send(chatID, msgLostPhone)
		return
	}
	s.Nickname = nickname
	if err := h.DB.RegisterUser(uid, s.Phone, nickname); err != nil {
		log.Printf("register user %d: %v", uid, err)
		h.send(chatID, msgGenericError)
		return
	}
	h.send(chatID, fmt.Sprintf(msgNickSaved, nickname))
	h.showMenu(chatID, s)
}

func (h *Handler) handleMachineCount(chatID int64, s *session.Session, text string) {
	z := zones.ByID(s.Zone)
	if z == nil {
		h.send(chatID, msgGenericError)
		return
	}
	count, err := strconv.Atoi(text)
	if err != nil {
		h.send(chatID, msgEnterNumber)
		return
	}
	if count <= 0 || count > z.Ceiling {
		h.send(chatID, fmt.Sprintf(msgCountRange, z.Ceiling, z.ID))
		return
	}
	s.MachineCount = count
	s.State = models.StateAwaitingMachineSelection
	h.sendWithKeyboard(chatID, msgChooseMachines, keyboards.Machines(z))
}
