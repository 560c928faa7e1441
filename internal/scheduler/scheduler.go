package scheduler

import (
	"fmt"
	"log"
	"time"

	"computer-club-bot/internal/storage"
	"computer-club-bot/internal/zones"

	"github.com/go-co-op/gocron/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

const reminderMsg = "Напоминание: сегодня в %s у вас бронь в зоне %s."

// Start runs a minute job that pings users whose booking starts within
// the next hour. A booking is marked reminded only after a successful
// send, so a failed send keeps retrying every tick until the booking
// starts.
func Start(bot Sender, db *storage.DB) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			remind(bot, db, time.Now())
		}),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	return s, nil
}

func remind(bot Sender, db *storage.DB, now time.Time) {
	due, err := db.ListDueReminders(now, now.Add(1*time.Hour))
	if err != nil {
		log.Println("list due reminders:", err)
		return
	}

	for _, b := range due {
		title := b.Zone
		if z := zones.ByID(b.Zone); z != nil {
			title = z.Title
		}
		msg := tgbotapi.NewMessage(b.UserID, fmt.Sprintf(reminderMsg, b.Time, title))
		if _, err := bot.Send(msg); err != nil {
			log.Printf("send reminder to %d: %v", b.UserID, err)
			continue
		}
		if err := db.MarkReminded(b.ID); err != nil {
			log.Printf("mark reminded %d: %v", b.ID, err)
		}
	}
}
