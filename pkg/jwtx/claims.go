// Package jwtx issues and verifies the EdDSA-signed tokens used for
// interactive sessions and password resets.
package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token use values carried in the "use" claim. Access tokens must never be
// accepted where a reset token is expected and vice versa.
const (
	UseAccess = "access"
	UseReset  = "reset"
)

// DefaultAccessTokenTTL is the default lifetime for login tokens.
const DefaultAccessTokenTTL = 24 * time.Hour

// DefaultResetTokenTTL is the default lifetime for password reset tokens.
const DefaultResetTokenTTL = time.Hour

// Claims are the token claims used across the service.
type Claims struct {
	jwt.RegisteredClaims

	// Use distinguishes access tokens from reset tokens.
	Use string `json:"use,omitempty"`

	// Email of the authenticated user, for logging and display.
	Email string `json:"email,omitempty"`

	// Name is the display name for the user.
	Name string `json:"name,omitempty"`
}

// NewClaims builds minimally-correct claims bound to a user id.
func NewClaims(subject, use, email, name string, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        newJTI(),
		},
		Use:   use,
		Email: email,
		Name:  name,
	}
}

// newJTI returns a URL-safe random identifier for the "jti" claim.
func newJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks the issuer matches the expected value. Empty expected
// means nothing to enforce.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used before
// it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}

// ValidateUse ensures the token was minted for the expected purpose.
func (c *Claims) ValidateUse(expected string) error {
	if c.Use != expected {
		return ErrWrongUse
	}
	return nil
}
