package token

import (
	"testing"
	"time"

	"github.com/accountsvc/user-service/internal/core/domain"
)

func TestCodec_IssueAndVerify(t *testing.T) {
	c := NewCodec("secret")

	tok, err := c.Issue("alice@example.com", PurposeAccess, time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := c.Verify(tok, PurposeAccess)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %q", subject)
	}
}

func TestCodec_Expired(t *testing.T) {
	c := NewCodec("secret")

	tok, err := c.Issue("alice@example.com", PurposeAccess, -time.Minute)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := c.Verify(tok, PurposeAccess); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	issuer := NewCodec("secret-a")
	verifier := NewCodec("secret-b")

	tok, err := issuer.Issue("alice@example.com", PurposeAccess, time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(tok, PurposeAccess); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestCodec_PurposeIsolation(t *testing.T) {
	c := NewCodec("secret")

	reset, err := c.Issue("alice@example.com", PurposeReset, time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := c.Verify(reset, PurposeAccess); err != domain.ErrTokenInvalid {
		t.Fatalf("reset token accepted as access token: %v", err)
	}

	access, err := c.Issue("alice@example.com", PurposeAccess, time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := c.Verify(access, PurposeReset); err != domain.ErrTokenInvalid {
		t.Fatalf("access token accepted as reset token: %v", err)
	}
}

func TestCodec_Malformed(t *testing.T) {
	c := NewCodec("secret")

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := c.Verify(tok, PurposeAccess); err != domain.ErrTokenInvalid {
			t.Fatalf("token %q: expected ErrTokenInvalid, got %v", tok, err)
		}
	}
}
