package config

import (
	"log"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const secretTokenPath = "/run/secrets/telegram_bot_token"

type Config struct {
	TelegramToken string `envconfig:"TELEGRAM_BOT_TOKEN"`
	DBPath        string `envconfig:"DB_PATH" default:"data/club.db"`
	Debug         bool   `envconfig:"DEBUG" default:"false"`
}

func Load() Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal(err)
	}

	// Docker Secret wins over the environment variable
	if data, err := os.ReadFile(secretTokenPath); err == nil {
		if token := strings.TrimSpace(string(data)); token != "" {
			cfg.TelegramToken = token
		}
	}
	if cfg.TelegramToken == "" {
		log.Fatal("❌ Токен не найден: отсутствует и Docker Secret, и переменная окружения")
	}
	return cfg
}
