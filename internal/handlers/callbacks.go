package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"computer-club-bot/internal/events"
	"computer-club-bot/internal/keyboards"
	"computer-club-bot/internal/models"
	"computer-club-bot/internal/session"
	"computer-club-bot/internal/utils"
	"computer-club-bot/internal/zones"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleCallback validates a button press against the state that expects
// it. A press for a step the session has already left gets a transient
// notice and changes nothing, which absorbs double-taps on old keyboards.
func (h *Handler) HandleCallback(cq *tgbotapi.CallbackQuery) {
	uid := cq.From.ID
	chatID := cq.Message.Chat.ID
	s := h.Sessions.Get(uid)

	ev, err := events.Parse(cq.Data)
	if err != nil {
		log.Printf("callback from %d: %v", uid, err)
		h.answer(cq.ID, msgGenericError)
		return
	}

	switch ev.Kind {
	case events.KindYes, events.KindNo:
		if s.State != models.StateAwaitingYesNo {
			h.answer(cq.ID, msgStale)
			return
		}
		h.answer(cq.ID, "")
		h.handleRegistrationAnswer(uid, chatID, s)

	case events.KindBook:
		if s.State != models.StateIdle {
			h.answer(cq.ID, msgStale)
			return
		}
		h.answer(cq.ID, "")
		h.handleBook(uid, chatID, s)

	case events.KindZone:
		if s.State != models.StateAwaitingZone {
			h.answer(cq.ID, msgStale)
			return
		}
		h.answer(cq.ID, "")
		h.handleZone(chatID, s, ev.Zone)

	case events.KindMachine:
		if s.State != models.StateAwaitingMachineSelection {
			h.answer(cq.ID, msgStale)
			return
		}
		h.handleMachine(cq.ID, chatID, s, ev.Machine)

	case events.KindDate:
		if s.State != models.StateAwaitingDate {
			h.answer(cq.ID, msgStale)
			return
		}
		h.answer(cq.ID, "")
		h.handleDate(chatID, s, ev.Date)

	case events.KindTime:
		if s.State != models.StateAwaitingTime {
			h.answer(cq.ID, msgStale)
			return
		}
		h.answer(cq.ID, "")
		h.handleTime(chatID, s, ev.Date, ev.Time)

	case events.KindConfirm:
		if s.State != models.StateAwaitingConfirmation {
			h.answer(cq.ID, msgStale)
			return
		}
		h.answer(cq.ID, "")
		h.handleConfirm(uid, chatID, s)

	case events.KindCancelMenu:
		// reachable from the menu and from the confirmation keyboard
		if s.State != models.StateIdle && s.State != models.StateAwaitingConfirmation {
			h.answer(cq.ID, msgStale)
			return
		}
		h.answer(cq.ID, "")
		h.handleCancelMenu(uid, chatID, s)

	case events.KindCancelOne:
		if s.State != models.StateCancelling {
			h.answer(cq.ID, msgStale)
			return
		}
		h.answer(cq.ID, "")
		h.handleCancelOne(uid, chatID, s, ev.BookingID)

	case events.KindCancelAll:
		if s.State != models.StateCancelling {
			h.answer(cq.ID, msgStale)
			return
		}
		h.answer(cq.ID, "")
		h.handleCancelAll(uid, chatID, s)

	case events.KindRules:
		if s.State != models.StateIdle {
			h.answer(cq.ID, msgStale)
			return
		}
		h.answer(cq.ID, "")
		h.send(chatID, msgRules)
		h.showMenu(chatID, s)

	case events.KindBackToMenu:
		h.answer(cq.ID, "")
		h.handleBackToMenu(uid, chatID, s)

	case events.KindBackToZone:
		if s.State != models.StateAwaitingMachineCount {
			h.answer(cq.ID, msgStale)
			return
		}
		h.answer(cq.ID, "")
		s.ResetBooking()
		s.State = models.StateAwaitingZone
		h.sendWithKeyboard(chatID, msgChooseZone, keyboards.ZoneMenu())

	case events.KindBackToCount:
		if s.State != models.StateAwaitingMachineSelection {
			h.answer(cq.ID, msgStale)
			return
		}
		h.answer(cq.ID, "")
		s.MachineCount = 0
		s.SelectedMachines = nil
		s.Date = ""
		s.Time = ""
		s.State = models.StateAwaitingMachineCount
		h.sendWithKeyboard(chatID, msgAskCount, keyboards.BackToZone())

	case events.KindBackToMachines:
		z := zones.ByID(s.Zone)
		if s.State != models.StateAwaitingDate || z == nil || z.SingleMachine() {
			h.answer(cq.ID, msgStale)
			return
		}
		h.answer(cq.ID, "")
		s.SelectedMachines = nil
		s.Date = ""
		s.Time = ""
		s.State = models.StateAwaitingMachineSelection
		h.sendWithKeyboard(chatID, msgChooseMachines, keyboards.Machines(z))

	case events.KindBackToDate:
		if s.State != models.StateAwaitingTime {
			h.answer(cq.ID, msgStale)
			return
		}
		h.answer(cq.ID, "")
		s.Date = ""
		s.Time = ""
		s.State = models.StateAwaitingDate
		multi := false
		if z := zones.ByID(s.Zone); z != nil {
			multi = !z.SingleMachine()
		}
		h.sendWithKeyboard(chatID, msgChooseDate, keyboards.WeekDates(h.Now(), multi))
	}
}

// Both answers lead to the same place: the user record decides.
func (h *Handler) handleRegistrationAnswer(uid, chatID int64, s *session.Session) {
	u, err := h.DB.GetUser(uid)
	if err != nil {
		log.Printf("get user %d: %v", uid, err)
		h.send(chatID, msgGenericError)
		return
	}
	if u != nil {
		h.send(chatID, msgWelcomeBack)
		h.showMenu(chatID, s)
		return
	}
	s.State = models.StateAwaitingNewPhone
	h.send(chatID, msgAskPhone)
}

func (h *Handler) handleBook(uid, chatID int64, s *session.Session) {
	u, err := h.DB.GetUser(uid)
	if err != nil {
		log.Printf("get user %d: %v", uid, err)
		h.send(chatID, msgGenericError)
		return
	}
	if u == nil {
		h.promptRegistration(chatID, s)
		return
	}
	s.ResetBooking()
	s.State = models.StateAwaitingZone
	h.sendWithKeyboard(chatID, msgChooseZone, keyboards.ZoneMenu())
}

func (h *Handler) handleZone(chatID int64, s *session.Session, zoneID string) {
	z := zones.ByID(zoneID)
	if z == nil {
		h.send(chatID, msgGenericError)
		return
	}
	s.Zone = zoneID
	s.MachineCount = 0
	s.SelectedMachines = nil
	s.Date = ""
	s.Time = ""

	if z.SingleMachine() {
		s.State = models.StateAwaitingDate
		h.sendWithKeyboard(chatID, msgChooseDate, keyboards.WeekDates(h.Now(), false))
		return
	}
	s.State = models.StateAwaitingMachineCount
	h.sendWithKeyboard(chatID, msgAskCount, keyboards.BackToZone())
}

func (h *Handler) handleMachine(callbackID string, chatID int64, s *session.Session, machine int) {
	z := zones.ByID(s.Zone)
	if z == nil || !z.Contains(machine) {
		h.answer(callbackID, msgGenericError)
		return
	}
	if !s.AddMachine(machine) {
		h.alert(callbackID, fmt.Sprintf(msgMachineDup, machine))
		return
	}
	h.answer(callbackID, fmt.Sprintf(msgMachinePicked, machine))

	if len(s.SelectedMachines) >= s.MachineCount {
		s.State = models.StateAwaitingDate
		h.sendWithKeyboard(chatID, msgMachinesDone, keyboards.WeekDates(h.Now(), true))
	}
}

func (h *Handler) handleDate(chatID int64, s *session.Session, date string) {
	multi := false
	if z := zones.ByID(s.Zone); z != nil {
		multi = !z.SingleMachine()
	}

	// today late in the evening can have nothing left to offer; an empty
	// inline keyboard is rejected by Telegram, so re-offer the dates
	if len(keyboards.TimeSlots(date, h.Now())) == 0 {
		h.sendWithKeyboard(chatID, msgNoSlots, keyboards.WeekDates(h.Now(), multi))
		return
	}

	s.Date = date
	s.Time = "" // slot set is regenerated for the new date
	s.State = models.StateAwaitingTime
	h.sendWithKeyboard(chatID, fmt.Sprintf(msgChooseTime, date),
		keyboards.TimeSlotKeyboard(date, h.Now(), multi))
}

func (h *Handler) handleTime(chatID int64, s *session.Session, date, timeStr string) {
	s.Date = date
	s.Time = timeStr
	s.State = models.StateAwaitingConfirmation
	h.sendWithKeyboard(chatID, fmt.Sprintf(msgConfirmSlot, timeStr, date), keyboards.Confirm())
}

func (h *Handler) handleConfirm(uid, chatID int64, s *session.Session) {
	u, err := h.DB.GetUser(uid)
	if err != nil {
		log.Printf("get user %d: %v", uid, err)
		h.send(chatID, msgGenericError)
		return
	}
	if u == nil {
		h.promptRegistration(chatID, s)
		return
	}
	// the persisted record is authoritative, never the typed values
	s.Nickname = u.Nickname
	s.Phone = u.Phone

	z := zones.ByID(s.Zone)
	multi := z != nil && !z.SingleMachine()

	if missing := missingFields(s, multi); len(missing) > 0 {
		h.send(chatID, fmt.Sprintf(msgMissingFields, strings.Join(missing, ", ")))
		return
	}

	isoDate, err := utils.ToISODate(s.Date)
	if err != nil {
		log.Printf("bad booking date %q for %d: %v", s.Date, uid, err)
		h.send(chatID, msgGenericError)
		return
	}

	if multi {
		free, err := h.DB.CheckAvailability(s.SelectedMachines, isoDate, s.Time)
		if err != nil {
			log.Printf("availability check for %d: %v", uid, err)
			h.send(chatID, msgGenericError)
			return
		}
		if !free {
			h.send(chatID, msgMachinesTaken)
			return
		}
	}

	b := models.Booking{UserID: uid, Zone: s.Zone, Date: isoDate, Time: s.Time}
	if multi {
		b.MachineCount = s.MachineCount
		b.Machines = machinesCSV(s.SelectedMachines)
	}
	if err := h.DB.InsertBooking(&b); err != nil {
		log.Printf("insert booking for %d: %v", uid, err)
		h.send(chatID, msgGenericError)
		return
	}

	s.ResetBooking()
	h.send(chatID, msgBookingSaved)
	h.showMenu(chatID, s)
}

func (h *Handler) handleCancelMenu(uid, chatID int64, s *session.Session) {
	bookings, err := h.DB.ListBookings(uid)
	if err != nil {
		log.Printf("list bookings for %d: %v", uid, err)
		h.send(chatID, msgGenericError)
		return
	}
	if len(bookings) == 0 {
		h.send(chatID, msgNoBookings)
		h.showMenu(chatID, s)
		return
	}
	s.State = models.StateCancelling
	h.sendWithKeyboard(chatID, msgChooseCancel, keyboards.CancelList(bookings))
}

func (h *Handler) handleCancelOne(uid, chatID int64, s *session.Session, bookingID int64) {
	if err := h.DB.DeleteBooking(uid, bookingID); err != nil {
		log.Printf("delete booking %d: %v", bookingID, err)
		h.send(chatID, msgGenericError)
		return
	}
	h.send(chatID, msgBookingCancelled)
	h.handleCancelMenu(uid, chatID, s) // re-render the remaining list
}

func (h *Handler) handleCancelAll(uid, chatID int64, s *session.Session) {
	if err := h.DB.DeleteAllBookings(uid); err != nil {
		log.Printf("delete bookings for %d: %v", uid, err)
		h.send(chatID, msgGenericError)
		return
	}
	h.send(chatID, msgAllCancelled)
	h.showMenu(chatID, s)
}

func (h *Handler) handleBackToMenu(uid, chatID int64, s *session.Session) {
	u, err := h.DB.GetUser(uid)
	if err != nil {
		log.Printf("get user %d: %v", uid, err)
		h.send(chatID, msgGenericError)
		return
	}
	s.ResetBooking()
	if u == nil {
		h.promptRegistration(chatID, s)
		return
	}
	h.showMenu(chatID, s)
}

func missingFields(s *session.Session, multi bool) []string {
	var missing []string
	if s.Nickname == "" {
		missing = append(missing, "никнейм")
	}
	if s.Phone == "" {
		missing = append(missing, "телефон")
	}
	if s.Zone == "" {
		missing = append(missing, "зона")
	}
	if multi {
		if s.MachineCount == 0 {
			missing = append(missing, "количество компьютеров")
		}
		if len(s.SelectedMachines) == 0 {
			missing = append(missing, "компьютеры")
		}
	}
	if s.Date == "" {
		missing = append(missing, "дата")
	}
	if s.Time == "" {
		missing = append(missing, "время")
	}
	return missing
}

func machinesCSV(machines []int) string {
	parts := make([]string, len(machines))
	for i, n := range machines {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (h *Handler) answer(callbackID, text string) {
	if _, err := h.Bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Printf("answer callback: %v", err)
	}
}

func (h *Handler) alert(callbackID, text string) {
	if _, err := h.Bot.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		log.Printf("answer callback: %v", err)
	}
}
