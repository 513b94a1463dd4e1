package telegram

import (
	"gopkg.in/telebot.v3"

	"github.com/Fornello2023/homework-bot/pkg/errors"
	"github.com/Fornello2023/homework-bot/pkg/logger"
)

type sender interface {
	Send(to telebot.Recipient, what any, opts ...any) (*telebot.Message, error)
}

// Notifier delivers messages to a single chat. Delivery is
// best-effort: a failed send is logged and swallowed.
type Notifier struct {
	bot  sender
	chat telebot.ChatID
	log  logger.Logger
}

func New(log logger.Logger, cfg Config) (*Notifier, error) {
	b, err := telebot.NewBot(telebot.Settings{Token: cfg.Token})
	if err != nil {
		return nil, errors.WrapFail(err, "create telegram bot")
	}

	return &Notifier{
		bot:  b,
		chat: telebot.ChatID(cfg.ChatID),
		log:  log.With("telegram"),
	}, nil
}

func (n *Notifier) Notify(msg string) {
	_, err := n.bot.Send(n.chat, msg)
	if err != nil {
		n.log.Error(errors.WrapFail(err, "send message to chat"))
		return
	}

	n.log.Debugf("bot sent message %q", msg)
}
