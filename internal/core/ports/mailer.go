package ports

import (
	"context"
	"time"
)

// ResetNotification is everything an outbound channel needs to tell a user
// how to finish a password reset. The core never sends mail itself.
type ResetNotification struct {
	Email     string
	FullName  string
	Token     string
	ExpiresAt time.Time
}

// Mailer delivers a single reset notification.
type Mailer interface {
	SendPasswordReset(ctx context.Context, n ResetNotification) error
}

// ResetNotifier accepts notifications for asynchronous delivery.
type ResetNotifier interface {
	Enqueue(n ResetNotification)
}
