package cryptox

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"

	"github.com/pquerna/otp/hotp"
)

// GenerateOTPCode returns a 6-digit RFC 4226 one-time code derived from a
// fresh random secret. Each call produces an independent code; the secret is
// discarded, so the code itself is the credential and is matched verbatim
// against the stored copy until it expires.
func GenerateOTPCode() (string, error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate otp secret: %w", err)
	}
	secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(raw)

	code, err := hotp.GenerateCode(secret, 0)
	if err != nil {
		return "", fmt.Errorf("failed to derive otp code: %w", err)
	}
	return code, nil
}
