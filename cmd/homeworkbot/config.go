package main

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Fornello2023/homework-bot/internal/poller"
	"github.com/Fornello2023/homework-bot/internal/practicum"
	"github.com/Fornello2023/homework-bot/internal/telegram"
	"github.com/Fornello2023/homework-bot/pkg/environment"
	"github.com/Fornello2023/homework-bot/pkg/errors"
)

// Credentials are env-only (optionally via a local .env file); the
// yaml file carries the non-secret knobs.
const (
	envPracticumToken = "PRACTICUM_TOKEN"
	envTelegramToken  = "TELEGRAM_TOKEN"
	envTelegramChatID = "TELEGRAM_CHAT_ID"
)

type Config struct {
	Environment environment.Env  `yaml:"environment"`
	Practicum   practicum.Config `yaml:"practicum"`
	Poller      poller.Config    `yaml:"poller"`
	Telegram    telegram.Config  `yaml:"-"`
}

func loadConfig() (*Config, error) {
	configPath := flag.String("config", "config.yaml", "path to yaml config")
	rawEnv := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()

	_ = godotenv.Load()

	var cfg Config

	path, err := filepath.Abs(*configPath)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.WrapFail(err, "parse yaml")
		}
	case os.IsNotExist(err):
		// env-only setup
	default:
		return nil, errors.WrapFail(err, "read config file")
	}

	cfg.Practicum.Token = os.Getenv(envPracticumToken)
	cfg.Telegram.Token = os.Getenv(envTelegramToken)
	if raw := os.Getenv(envTelegramChatID); raw != "" {
		cfg.Telegram.ChatID, _ = strconv.ParseInt(raw, 10, 64)
	}

	if *rawEnv != "" {
		cfg.Environment = environment.FromString(*rawEnv)
	}

	return &cfg, nil
}

// missingVars reports the names of required variables without a
// usable value, all of them at once.
func (c *Config) missingVars() []string {
	var missing []string

	if c.Practicum.Token == "" {
		missing = append(missing, envPracticumToken)
	}
	if c.Telegram.Token == "" {
		missing = append(missing, envTelegramToken)
	}
	if c.Telegram.ChatID == 0 {
		missing = append(missing, envTelegramChatID)
	}

	return missing
}
