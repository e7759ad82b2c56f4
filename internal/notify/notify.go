package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"freeship-watcher/config"
)

// ErrNotConfigured is returned when Telegram credentials are missing;
// no network call is attempted in that case.
var ErrNotConfigured = errors.New("telegram credentials not configured")

const defaultAPIBase = "https://api.telegram.org"

// Notifier delivers a message to a preconfigured destination.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Telegram sends messages through the Telegram Bot API.
type Telegram struct {
	http    *resty.Client
	apiBase string
	token   string
	chatID  string
}

func NewTelegram(cfg config.Config) *Telegram {
	client := resty.New()
	client.SetTimeout(cfg.HTTPTimeout)

	return &Telegram{
		http:    client,
		apiBase: defaultAPIBase,
		token:   strings.TrimSpace(cfg.TelegramBotToken),
		chatID:  strings.TrimSpace(cfg.TelegramChatID),
	}
}

func (t *Telegram) Send(ctx context.Context, text string) error {
	if t.token == "" || t.chatID == "" {
		return ErrNotConfigured
	}

	res, err := t.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"chat_id":    t.chatID,
			"text":       text,
			"parse_mode": "HTML",
		}).
		Post(fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token))
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("telegram send: status %d", res.StatusCode())
	}
	return nil
}
