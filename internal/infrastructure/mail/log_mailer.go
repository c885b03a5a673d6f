// Package mail holds outbound notification adapters. Actual SMTP delivery
// is an external collaborator; the shipped adapter records what would have
// been sent.
package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/accountsvc/user-service/internal/core/ports"
)

// LogMailer satisfies ports.Mailer by logging the notification. The reset
// token itself is never logged.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, n ports.ResetNotification) error {
	m.log.Info().
		Str("email", n.Email).
		Time("expires_at", n.ExpiresAt).
		Msg("password reset notification queued for delivery")
	return nil
}
