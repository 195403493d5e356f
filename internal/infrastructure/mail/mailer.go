// Package mail implements the fire-and-forget email side-channel. No real
// SMTP delivery happens; a send is logged and surfaced as an email
// notification so the inbox shows what would have gone out.
package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// Mailer implements ports.Mailer.
type Mailer struct {
	notifs ports.NotificationRepository
	logger zerolog.Logger
}

func NewMailer(notifs ports.NotificationRepository, logger zerolog.Logger) *Mailer {
	return &Mailer{notifs: notifs, logger: logger}
}

// Send records the outgoing mail and always reports success; delivery
// failure is not modeled.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) bool {
	m.logger.Info().Str("to", to).Str("subject", subject).Msg("email sent")

	_, err := m.notifs.Create(ctx, &domain.Notification{
		Type:     domain.NotificationEmail,
		Subject:  subject,
		Body:     body,
		Metadata: map[string]string{"to": to},
	})
	if err != nil {
		m.logger.Warn().Err(err).Msg("failed to record email notification")
	}
	return true
}
