package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/Fornello2023/homework-bot/internal/practicum"
	"github.com/Fornello2023/homework-bot/pkg/logger"
)

const DefaultInterval = 600 * time.Second

type Config struct {
	Interval time.Duration `yaml:"interval"`
}

// Poller runs the fetch → check → notify cycle until its context is
// cancelled.
type Poller struct {
	api statuses
	out notifier
	clk clock
	log logger.Logger

	interval time.Duration
	cursor   int64
}

func New(log logger.Logger, cfg Config, api statuses, out notifier) *Poller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		api:      api,
		out:      out,
		clk:      stdClock{},
		log:      log.With("poller"),
		interval: interval,
	}
}

func (p *Poller) Run(ctx context.Context) error {
	p.cursor = p.clk.Now().Unix()

	for {
		err := p.cycle(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			p.log.Error(err)
			p.out.Notify(userMessage(err))
		}

		if !p.clk.Sleep(ctx, p.interval) {
			return ctx.Err()
		}
	}
}

// cycle performs one poll. The cursor advances only when the whole
// cycle succeeds, so a failed window is re-queried on the next wake-up.
func (p *Poller) cycle(ctx context.Context) error {
	payload, err := p.api.Fetch(ctx, p.cursor)
	if err != nil {
		return err
	}

	homeworks, err := practicum.CheckResponse(payload)
	if err != nil {
		return err
	}

	if len(homeworks) == 0 {
		p.log.Debugf("no new homework statuses")
	} else {
		for _, hw := range homeworks {
			msg, err := practicum.ParseStatus(hw)
			if err != nil {
				return err
			}
			p.out.Notify(msg)
		}
	}

	p.cursor = p.clk.Now().Unix()
	return nil
}

// userMessage is the chat-facing description of a failed cycle.
func userMessage(err error) string {
	switch practicum.KindOf(err) {
	case practicum.KindTransport:
		return fmt.Sprintf("Ошибка API: %s", err)
	case practicum.KindRecordFormat:
		return fmt.Sprintf("Не найдены данные: %s", err)
	case practicum.KindResponseFormat, practicum.KindUnknownStatus:
		return fmt.Sprintf("Ошибка обработки ответа: %s", err)
	default:
		return fmt.Sprintf("Неизвестная ошибка: %s", err)
	}
}
