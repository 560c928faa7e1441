package scheduler

import (
	"errors"
	"testing"
	"time"

	"computer-club-bot/internal/models"
	"computer-club-bot/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, m)
	}
	return tgbotapi.Message{}, nil
}

func openTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRemindOneHourBefore(t *testing.T) {
	db := openTestDB(t)

	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.InsertBooking(&models.Booking{
		UserID: 100, Zone: "izi", MachineCount: 1, Machines: "1",
		Date: "2026-03-05", Time: "13:00",
	}))
	require.NoError(t, db.InsertBooking(&models.Booking{
		UserID: 100, Zone: "ps4", Date: "2026-03-05", Time: "20:00",
	}))

	bot := &fakeSender{}
	remind(bot, db, now)

	require.Len(t, bot.sent, 1, "the 20:00 booking is not due yet")
	assert.Equal(t, int64(100), bot.sent[0].ChatID)
	assert.Contains(t, bot.sent[0].Text, "13:00")
	assert.Contains(t, bot.sent[0].Text, "Изи-Лайн")

	// already reminded, later ticks are quiet
	for minute := 1; minute <= 10; minute++ {
		remind(bot, db, now.Add(time.Duration(minute)*time.Minute))
	}
	assert.Len(t, bot.sent, 1)
}

func TestRemindRetriesOnLaterTicks(t *testing.T) {
	db := openTestDB(t)

	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.InsertBooking(&models.Booking{
		UserID: 100, Zone: "ps5", Date: "2026-03-05", Time: "13:00",
	}))

	// telegram is down for the first tick of the window
	bot := &fakeSender{err: errors.New("telegram down")}
	remind(bot, db, now)
	require.Empty(t, bot.sent)

	// still unreminded
	pending, err := db.ListDueReminders(now, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	// the clock moves on; a later tick delivers it
	bot.err = nil
	remind(bot, db, now.Add(7*time.Minute))
	require.Len(t, bot.sent, 1)

	pending, err = db.ListDueReminders(now.Add(8*time.Minute), now.Add(68*time.Minute))
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRemindStopsAtBookingStart(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.InsertBooking(&models.Booking{
		UserID: 100, Zone: "ps5", Date: "2026-03-05", Time: "13:00",
	}))

	// every tick of the window fails, then the booking starts
	bot := &fakeSender{err: errors.New("telegram down")}
	start := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	for minute := 0; minute <= 59; minute++ {
		remind(bot, db, start.Add(time.Duration(minute)*time.Minute))
	}

	bot.err = nil
	remind(bot, db, start.Add(60*time.Minute))
	assert.Empty(t, bot.sent, "no reminder once the booking has started")
}
