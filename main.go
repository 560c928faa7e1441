package main

import (
	"computer-club-bot/internal/config"
	"computer-club-bot/internal/handlers"
	"computer-club-bot/internal/scheduler"
	"computer-club-bot/internal/session"
	"computer-club-bot/internal/storage"
	"computer-club-bot/internal/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // TELEGRAM_BOT_TOKEN etc.
	cfg := config.Load()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	utils.Must(err)
	bot.Debug = cfg.Debug

	db, err := storage.New(cfg.DBPath)
	utils.Must(err)

	h := handlers.New(bot, db, session.NewStore())

	_, err = scheduler.Start(bot, db)
	utils.Must(err)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	// one consumer goroutine keeps per-user event ordering
	for upd := range bot.GetUpdatesChan(updateConfig) {
		h.HandleUpdate(upd)
	}
}
