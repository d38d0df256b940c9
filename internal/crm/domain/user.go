package domain

import "time"

// User is an account record. A user is created unverified at signup and
// flips to verified exactly once, on a successful OTP match before expiry.
//
// A nil APIKeyHash means no key was ever issued; when present, APIKeyActive
// and APIKeyExpiresAt describe the key's state. Revocation keeps the hash but
// clears the active flag, so a revoked key can never authenticate again.
type User struct {
	ID           string
	Email        string
	PasswordHash string // argon2id encoded
	Name         string

	Verified     bool
	OTPCode      *string    // pending verification code (nullable)
	OTPExpiresAt *time.Time // nullable

	APIKeyHash      *string // SHA-256 fingerprint (nullable)
	APIKeyActive    bool
	APIKeyExpiresAt *time.Time // nullable

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasActiveAPIKey reports whether the user's API key can authenticate at the
// given instant.
func (u User) HasActiveAPIKey(now time.Time) bool {
	if u.APIKeyHash == nil || !u.APIKeyActive {
		return false
	}
	return u.APIKeyExpiresAt != nil && now.Before(*u.APIKeyExpiresAt)
}
