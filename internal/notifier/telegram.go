// Package notifier delivers price-change messages via the Telegram Bot
// API.
package notifier

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultAPIBase = "https://api.telegram.org"

// APIError reports a rejected sendMessage call.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram API error %d: %s", e.Status, e.Body)
}

// TelegramNotifier sends messages to a single chat.
type TelegramNotifier struct {
	BotToken string
	ChatID   string
	APIBase  string
	Client   *http.Client
}

// New creates a notifier for the given bot and chat.
func New(botToken, chatID string, timeout time.Duration) *TelegramNotifier {
	return &TelegramNotifier{
		BotToken: botToken,
		ChatID:   chatID,
		APIBase:  defaultAPIBase,
		Client:   &http.Client{Timeout: timeout},
	}
}

// Send posts a plain-text message to the configured chat. There is no
// retry; a failed send surfaces to the caller.
func (t *TelegramNotifier) Send(text string) error {
	apiURL := fmt.Sprintf("%s/bot%s/sendMessage", t.APIBase, t.BotToken)
	form := url.Values{
		"chat_id": {t.ChatID},
		"text":    {text},
	}
	resp, err := t.Client.PostForm(apiURL, form)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return nil
}
