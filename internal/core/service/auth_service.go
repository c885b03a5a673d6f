package service

import (
	"context"
	"time"

	"github.com/accountsvc/user-service/internal/core/domain"
	"github.com/accountsvc/user-service/internal/core/password"
	"github.com/accountsvc/user-service/internal/core/ports"
	"github.com/accountsvc/user-service/internal/core/token"
)

const (
	defaultAccessTTL = 60 * time.Minute
	defaultResetTTL  = 48 * time.Hour
)

// AuthService implements login, password reset and token-to-user
// resolution. It holds no per-session state: access tokens verify purely
// by signature and expiry.
type AuthService struct {
	repo      ports.UserRepository
	hasher    password.Hasher
	codec     *token.Codec
	guard     ports.ResetGuard
	notifier  ports.ResetNotifier
	accessTTL time.Duration
	resetTTL  time.Duration
}

// NewAuthService wires the auth core. guard and notifier may be nil when
// reset-token replay protection or notification delivery is not configured.
func NewAuthService(repo ports.UserRepository, hasher password.Hasher, codec *token.Codec,
	guard ports.ResetGuard, notifier ports.ResetNotifier, accessTTL, resetTTL time.Duration) *AuthService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if resetTTL <= 0 {
		resetTTL = defaultResetTTL
	}
	return &AuthService{
		repo:      repo,
		hasher:    hasher,
		codec:     codec,
		guard:     guard,
		notifier:  notifier,
		accessTTL: accessTTL,
		resetTTL:  resetTTL,
	}
}

// Login checks the credentials and issues an access token with the user's
// email as subject. All failure modes collapse into ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, pass string) (string, *domain.User, error) {
	if email == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !s.hasher.Verify(pass, user.HashedPassword) {
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.codec.Issue(user.Email, token.PurposeAccess, s.accessTTL)
	if err != nil {
		return "", nil, err
	}
	return tok, user, nil
}

// RequestPasswordReset issues a reset-purpose token for an active account
// and queues the outbound notification. The generic error keeps the
// endpoint useless for probing which emails are registered.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil || !user.IsActive {
		return "", domain.ErrInvalidCredentials
	}

	tok, err := s.codec.Issue(user.Email, token.PurposeReset, s.resetTTL)
	if err != nil {
		return "", err
	}

	if s.notifier != nil {
		s.notifier.Enqueue(ports.ResetNotification{
			Email:     user.Email,
			FullName:  user.FullName,
			Token:     tok,
			ExpiresAt: time.Now().UTC().Add(s.resetTTL),
		})
	}
	return tok, nil
}

// ResetPassword consumes a reset token and stores the new password hash.
// A token that already went through here once is refused.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) (*domain.User, error) {
	if newPassword == "" {
		return nil, domain.ErrInvalidCredentials
	}

	subject, err := s.codec.Verify(resetToken, token.PurposeReset)
	if err != nil {
		return nil, err
	}

	if s.guard != nil {
		used, err := s.guard.IsUsed(ctx, resetToken)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, domain.ErrTokenInvalid
		}
	}

	user, err := s.repo.FindByEmail(ctx, subject)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = hash

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	if s.guard != nil {
		if err := s.guard.MarkUsed(ctx, resetToken, s.resetTTL); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

// ResolveUser turns a presented access token into the live user behind it.
func (s *AuthService) ResolveUser(ctx context.Context, accessToken string) (*domain.User, error) {
	subject, err := s.codec.Verify(accessToken, token.PurposeAccess)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, subject)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	return user, nil
}
