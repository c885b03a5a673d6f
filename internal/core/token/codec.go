// Package token signs and verifies the compact bearer tokens the service
// hands out. Tokens are HS256 JWTs carrying the subject, expiry and a
// purpose claim that separates login sessions from password-reset grants.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/accountsvc/user-service/internal/core/domain"
)

// Purpose tags what a token may be used for. A reset token is never
// accepted where an access token is expected, and vice versa.
type Purpose string

const (
	PurposeAccess Purpose = "access"
	PurposeReset  Purpose = "password_reset"
)

// Claims is the signed payload: registered claims plus the purpose tag.
type Claims struct {
	Purpose Purpose `json:"purpose"`
	jwt.RegisteredClaims
}

// Codec issues and verifies tokens with a single process-wide secret.
// The secret is read-only after construction, so a Codec is safe for
// concurrent use.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue signs a token for subject expiring ttl from now.
func (c *Codec) Issue(subject string, purpose Purpose, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify checks signature, expiry and purpose and returns the subject.
// Expired tokens fail with domain.ErrTokenExpired; every other defect
// (bad signature, wrong algorithm, malformed payload, wrong purpose)
// fails with domain.ErrTokenInvalid.
func (c *Codec) Verify(tokenString string, want Purpose) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" || claims.Purpose != want {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
