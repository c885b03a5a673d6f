package ports

import (
	"context"

	"github.com/accountsvc/user-service/internal/core/domain"
)

// AuthService owns credential checks, token issuance and the
// token-to-user resolution that fronts every authenticated request.
type AuthService interface {
	// Login verifies the credentials and returns a signed access token
	// along with the authenticated user. Unknown email, inactive account
	// and wrong password all fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// RequestPasswordReset issues a reset-purpose token for an active
	// account and queues the notification. Fails with
	// domain.ErrInvalidCredentials for unknown or inactive emails.
	RequestPasswordReset(ctx context.Context, email string) (string, error)

	// ResetPassword consumes a reset token and stores a new password hash.
	ResetPassword(ctx context.Context, resetToken, newPassword string) (*domain.User, error)

	// ResolveUser verifies an access token and returns the live user
	// record behind its subject.
	ResolveUser(ctx context.Context, accessToken string) (*domain.User, error)
}
