package keyboards

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// WeekDates offers today plus the next six days. A back button to the
// machine list is added for multi-machine zones, where date selection
// follows machine selection.
func WeekDates(now time.Time, multiMachine bool) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < 7; i++ {
		d := now.AddDate(0, 0, i).Format("02.01.2006")
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(d, "date:"+d),
		))
	}
	if multiMachine {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Назад к выбору компьютеров", "back_to_computers"),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// TimeSlots lists every bookable HH:MM for the date in 30-minute steps.
// For today the first slot is the top of the next hour; other dates get
// the full 48.
func TimeSlots(date string, now time.Time) []string {
	startHour := 0
	if d, err := time.Parse("02.01.2006", date); err == nil {
		y, m, day := now.Date()
		if d.Year() == y && d.Month() == m && d.Day() == day {
			startHour = now.Hour() + 1
		}
	}

	var slots []string
	for hour := startHour; hour < 24; hour++ {
		for _, minute := range []int{0, 30} {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// TimeSlotKeyboard lays the slots out six per row. Multi-machine zones
// get a back button to re-pick the date.
func TimeSlotKeyboard(date string, now time.Time, multiMachine bool) tgbotapi.InlineKeyboardMarkup {
	slots := TimeSlots(date, now)

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, slot := range slots {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(slot, "time:"+date+":"+slot))
		if len(row) == 6 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	if multiMachine {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Назад к выбору даты", "back_to_date"),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func displayDate(iso string) string {
	if t, err := time.Parse("2006-01-02", iso); err == nil {
		return t.Format("02.01.2006")
	}
	return iso
}
