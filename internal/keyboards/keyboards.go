// Package keyboards builds every option set the bot renders. Builders are
// pure: they take state and a clock value, and return markup.
package keyboards

import (
	"fmt"
	"strconv"

	"computer-club-bot/internal/models"
	"computer-club-bot/internal/zones"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MainMenu is the idle-state action keyboard.
func MainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Забронировать", "book"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отменить бронь", "cancel_booking"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Правила", "rules"),
		),
	)
}

// YesNo asks whether the user has used the bot before.
func YesNo() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Да", "yes"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Нет", "no"),
		),
	)
}

// ZoneMenu lists every zone, one per row.
func ZoneMenu() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, z := range zones.Catalogue {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(z.Title, z.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// BackToZone accompanies the machine-count prompt.
func BackToZone() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Назад к выбору зоны", "back_to_zone"),
		),
	)
}

// Machines lists exactly the zone's machine numbers, one per row, plus a
// back button to the count prompt.
func Machines(z *zones.Zone) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, n := range z.Machines() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(strconv.Itoa(n), "computer:"+strconv.Itoa(n)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Назад к количеству", "back_to_number"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// Confirm offers the terminal confirm/cancel choice.
func Confirm() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Подтвердить бронь", "confirm_booking"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отменить бронь", "cancel_booking"),
		),
	)
}

// CancelList renders one button per existing booking, then cancel-all and
// a way back to the menu.
func CancelList(bookings []models.Booking) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, b := range bookings {
		machines := b.Machines
		if machines == "" {
			machines = "N/A"
		}
		label := fmt.Sprintf("%s %s | %s | ПК: %s", displayDate(b.Date), b.Time, b.Zone, machines)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "cancel:"+strconv.FormatInt(b.ID, 10)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Отменить все бронирования", "cancel_all"),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Назад", "back_to_menu"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
