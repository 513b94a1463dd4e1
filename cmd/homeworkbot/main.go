package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Fornello2023/homework-bot/internal/poller"
	"github.com/Fornello2023/homework-bot/internal/practicum"
	"github.com/Fornello2023/homework-bot/internal/telegram"
	"github.com/Fornello2023/homework-bot/pkg/errors"
	"github.com/Fornello2023/homework-bot/pkg/logger"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	if missing := cfg.missingVars(); len(missing) > 0 {
		errs := make([]error, 0, len(missing))
		for _, name := range missing {
			log.Errorf("required environment variable %s is not set", name)
			errs = append(errs, errors.Failf(" read %s", name))
		}
		log.Panic(errors.WrapFail(errors.Collapse(errs), "validate credentials"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bot, err := telegram.New(log, cfg.Telegram)
	if err != nil {
		log.Panic(errors.WrapFail(err, "initialize telegram notifier"))
	}

	api := practicum.NewClient(log, cfg.Practicum)

	log.Infof("start polling homework statuses")

	err = poller.New(log, cfg.Poller, api, bot).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Panic(err)
	}

	stdlog.Println("Shutdown complete")
}
