// internal/app/poller.go
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram" // Import from domain
	infraTelegram "homework_status_bot/internal/infra/telegram"   // For send failure classification

	"github.com/sirupsen/logrus"
)

// HomeworkAPI defines the operations the poller needs from the homework-review
// service: fetch the feed of statuses changed since a Unix timestamp.
type HomeworkAPI interface {
	Fetch(ctx context.Context, since int64) (*homework.Envelope, error)
}

// Poller drives one poll cycle: fetch, validate, format, notify. It is the
// sole owner of the cursor timestamp, which lives only in process memory and
// advances to the server-reported current_date after each successful cycle.
type Poller struct {
	api            HomeworkAPI
	telegramClient domainTelegram.Client // Use the interface from the domain package
	chatID         int64
	logger         *logrus.Logger
	cursor         int64
}

func NewPoller(
	api HomeworkAPI,
	tc domainTelegram.Client, // Use the interface from the domain package
	chatID int64,
	logger *logrus.Logger,
	startFrom int64, // Initial cursor, normally time.Now().Unix()
) *Poller {
	return &Poller{
		api:            api,
		telegramClient: tc,
		chatID:         chatID,
		logger:         logger,
		cursor:         startFrom,
	}
}

// Cursor returns the current watermark timestamp.
func (p *Poller) Cursor() int64 {
	return p.cursor
}

// RunCycle performs one fetch-validate-notify pass. Only the first (most
// recent) record is announced. The cursor moves only when fetch and validation
// both succeeded; a failed notification still advances it, since a lost
// message must not cause the same verdict to be re-fetched forever.
func (p *Poller) RunCycle(ctx context.Context) error {
	p.logger.Debugf("Requesting homework statuses changed since %d", p.cursor)

	envelope, err := p.api.Fetch(ctx, p.cursor)
	if err != nil {
		return fmt.Errorf("fetch homework statuses: %w", err)
	}
	p.logger.Debug("Response received, checking the envelope")

	homeworks, err := envelope.Validate()
	if err != nil {
		// The service saying "nothing for you" is a valid quiet cycle,
		// not a failure; everything else bubbles up to the boundary.
		var notice *homework.RemoteNotice
		if errors.As(err, &notice) {
			p.logger.Infof("Service notice (code %s): %s", notice.Code, notice.Message)
			return nil
		}
		return fmt.Errorf("validate response: %w", err)
	}

	if len(homeworks) > 0 {
		first := homeworks[0]
		message, known := homework.StatusMessage(first)
		if !known {
			p.logger.Warnf("Undocumented homework status %q for %q, using the raw status as verdict", first.Status, first.Name)
		}
		p.notify(message)
	} else {
		p.logger.Info("No new homeworks")
	}

	p.cursor = envelope.CurrentDate
	return nil
}

// Job is the loop boundary: it runs one cycle and absorbs any error so that a
// bad cycle can never take the process down. The scheduler decides when the
// next cycle runs, success or failure alike.
func (p *Poller) Job(ctx context.Context) {
	if err := p.RunCycle(ctx); err != nil {
		p.logger.WithField("cycle", "poll").Errorf("Poll cycle failed: %v", err)
	}
}

// notify sends the message to the configured chat and swallows every delivery
// failure: a lost notification must not stop polling or roll back the cursor.
func (p *Poller) notify(message string) {
	p.logger.Debugf("Sending telegram message: %s", strings.ReplaceAll(message, "\n", ""))

	err := p.telegramClient.SendMessage(p.chatID, message)
	if err == nil {
		return
	}

	switch kind := infraTelegram.Classify(err); kind {
	case infraTelegram.FailureAuth:
		p.logger.Errorf("Telegram rejected the credentials (chat %d); sends will keep failing until the token or chat id is fixed: %v", p.chatID, err)
	case infraTelegram.FailureBadRequest:
		p.logger.Errorf("Telegram rejected the message (chat %d): %v", p.chatID, err)
	default:
		p.logger.Errorf("Failed to send telegram message (%s): %v", kind, err)
	}
}
