package service

import (
	"context"
	"testing"
	"time"

	"github.com/accountsvc/user-service/internal/core/domain"
	"github.com/accountsvc/user-service/internal/core/password"
	"github.com/accountsvc/user-service/internal/core/ports"
	"github.com/accountsvc/user-service/internal/core/token"
)

type authFixture struct {
	repo     *stubUserRepo
	users    *UserService
	auth     *AuthService
	guard    *stubResetGuard
	notifier *stubNotifier
	codec    *token.Codec
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	repo := newStubUserRepo()
	hasher := password.NewHasher(4)
	codec := token.NewCodec("test-secret")
	guard := newStubResetGuard()
	notifier := &stubNotifier{}
	return &authFixture{
		repo:     repo,
		users:    NewUserService(repo, hasher),
		auth:     NewAuthService(repo, hasher, codec, guard, notifier, time.Hour, time.Hour),
		guard:    guard,
		notifier: notifier,
		codec:    codec,
	}
}

func (f *authFixture) mustCreate(t *testing.T, email, pass string, role domain.Role) *domain.User {
	t.Helper()
	user, err := f.users.Create(context.Background(), ports.CreateUserInput{
		Email: email, Password: pass, Role: role,
	})
	if err != nil {
		t.Fatalf("create %s failed: %v", email, err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture(t)
	f.mustCreate(t, "a@x.com", "pw123456", domain.RoleClient)

	tok, user, err := f.auth.Login(context.Background(), "a@x.com", "pw123456")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected token")
	}
	if user.Email != "a@x.com" || user.Role != domain.RoleClient {
		t.Fatalf("unexpected user: %+v", user)
	}

	resolved, err := f.auth.ResolveUser(context.Background(), tok)
	if err != nil {
		t.Fatalf("ResolveUser returned error: %v", err)
	}
	if resolved.ID != user.ID || resolved.Role != domain.RoleClient {
		t.Fatalf("resolved user mismatch: %+v", resolved)
	}
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	f := newAuthFixture(t)
	created := f.mustCreate(t, "dave@example.com", "goodpass", domain.RoleStaff)

	inactive := false
	if _, err := f.users.Update(context.Background(), created.ID, ports.UpdateUserInput{IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	f.mustCreate(t, "live@example.com", "goodpass", domain.RoleStaff)

	cases := []struct {
		name            string
		email, password string
	}{
		{"wrong password", "live@example.com", "badpass"},
		{"unknown email", "ghost@example.com", "goodpass"},
		{"inactive user", "dave@example.com", "goodpass"},
		{"empty credentials", "", ""},
	}
	for _, tc := range cases {
		if _, _, err := f.auth.Login(context.Background(), tc.email, tc.password); err != domain.ErrInvalidCredentials {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}

func TestAuthService_ResolveUser_Failures(t *testing.T) {
	f := newAuthFixture(t)
	created := f.mustCreate(t, "carol@example.com", "pw123456", domain.RoleStaff)

	tok, _, err := f.auth.Login(context.Background(), "carol@example.com", "pw123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := f.auth.ResolveUser(context.Background(), "garbage"); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}

	inactive := false
	if _, err := f.users.Update(context.Background(), created.ID, ports.UpdateUserInput{IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if _, err := f.auth.ResolveUser(context.Background(), tok); err != domain.ErrUserInactive {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}

	if err := f.users.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := f.auth.ResolveUser(context.Background(), tok); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_ResetFlow(t *testing.T) {
	f := newAuthFixture(t)
	f.mustCreate(t, "bob@example.com", "old-pass-1", domain.RoleStaff)

	resetToken, err := f.auth.RequestPasswordReset(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("RequestPasswordReset returned error: %v", err)
	}
	if f.notifier.count() != 1 {
		t.Fatalf("expected one queued notification, got %d", f.notifier.count())
	}

	// A reset token must not open a session.
	if _, err := f.auth.ResolveUser(context.Background(), resetToken); err != domain.ErrTokenInvalid {
		t.Fatalf("reset token accepted as access token: %v", err)
	}

	if _, err := f.auth.ResetPassword(context.Background(), resetToken, "new-pass-2"); err != nil {
		t.Fatalf("ResetPassword returned error: %v", err)
	}

	if _, _, err := f.auth.Login(context.Background(), "bob@example.com", "old-pass-1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("old password still accepted: %v", err)
	}
	if _, _, err := f.auth.Login(context.Background(), "bob@example.com", "new-pass-2"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}

	// Single use: the same reset token is refused the second time.
	if _, err := f.auth.ResetPassword(context.Background(), resetToken, "third-pass-3"); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid on reuse, got %v", err)
	}
}

func TestAuthService_RequestPasswordReset_Generic(t *testing.T) {
	f := newAuthFixture(t)
	created := f.mustCreate(t, "off@example.com", "pw123456", domain.RoleStaff)

	inactive := false
	if _, err := f.users.Update(context.Background(), created.ID, ports.UpdateUserInput{IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	if _, err := f.auth.RequestPasswordReset(context.Background(), "nobody@example.com"); err != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := f.auth.RequestPasswordReset(context.Background(), "off@example.com"); err != domain.ErrInvalidCredentials {
		t.Fatalf("inactive user: expected ErrInvalidCredentials, got %v", err)
	}
	if f.notifier.count() != 0 {
		t.Fatalf("no notification should be queued on failure")
	}
}

func TestAuthService_ResetPassword_Expired(t *testing.T) {
	f := newAuthFixture(t)
	f.mustCreate(t, "late@example.com", "pw123456", domain.RoleStaff)

	expired, err := f.codec.Issue("late@example.com", token.PurposeReset, -time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := f.auth.ResetPassword(context.Background(), expired, "new-pass-2"); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthService_ResetPassword_AccessTokenRejected(t *testing.T) {
	f := newAuthFixture(t)
	f.mustCreate(t, "swap@example.com", "pw123456", domain.RoleStaff)

	access, _, err := f.auth.Login(context.Background(), "swap@example.com", "pw123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := f.auth.ResetPassword(context.Background(), access, "new-pass-2"); err != domain.ErrTokenInvalid {
		t.Fatalf("access token accepted for reset: %v", err)
	}
}
