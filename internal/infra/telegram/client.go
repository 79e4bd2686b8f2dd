// internal/infra/telegram/client.go
package telegram

import (
	"errors"
	"net/http"

	"gopkg.in/telebot.v3"
)

// FailureKind classifies a failed send for logging. No kind is ever retried
// within a cycle; the distinction only tells the operator what to fix.
type FailureKind string

const (
	// FailureAuth means the bot token or chat access is rejected. Persistent:
	// it will not heal until the credentials are corrected.
	FailureAuth FailureKind = "auth"
	// FailureBadRequest means a malformed chat id or message.
	FailureBadRequest FailureKind = "bad_request"
	// FailureTransport covers every other messaging-service failure.
	FailureTransport FailureKind = "transport"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a plain-text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(recipientChatID int64, text string) error {
	_, err := tba.bot.Send(telebot.ChatID(recipientChatID), text)
	return err
}

// Classify maps a send error to its failure kind by the Telegram API HTTP code.
func Classify(err error) FailureKind {
	var tErr *telebot.Error
	if errors.As(err, &tErr) {
		switch tErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return FailureAuth
		case http.StatusBadRequest:
			return FailureBadRequest
		}
	}
	return FailureTransport
}
