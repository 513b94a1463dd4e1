package telegram

type Config struct {
	Token  string `yaml:"-"`
	ChatID int64  `yaml:"-"`
}
