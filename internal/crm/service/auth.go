package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sellside/prospectd/internal/crm/domain"
	"github.com/sellside/prospectd/internal/crm/mail"
	"github.com/sellside/prospectd/internal/crm/store"
	"github.com/sellside/prospectd/pkg/cryptox"
	"github.com/sellside/prospectd/pkg/idx"
	"github.com/sellside/prospectd/pkg/jwtx"
	"github.com/sellside/prospectd/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailTaken         = errors.New("email_taken")
	ErrAlreadyVerified    = errors.New("already_verified")
	ErrInvalidCode        = errors.New("invalid_code")
	ErrCodeExpired        = errors.New("code_expired")
	ErrInvalidToken       = errors.New("invalid_token")
)

const (
	// DefaultOTPTTL is how long a signup verification code stays valid.
	DefaultOTPTTL = 10 * time.Minute

	// DefaultAPIKeyTTL is the lifetime of an issued API key.
	DefaultAPIKeyTTL = 90 * 24 * time.Hour
)

type AuthService struct {
	Store     store.Store
	Signer    *jwtx.Signer
	Verifier  *jwtx.Verifier
	Mail      mail.Sender
	Issuer    string
	AccessTTL time.Duration
	ResetTTL  time.Duration
	OTPTTL    time.Duration
	APIKeyTTL time.Duration
}

func (s *AuthService) otpTTL() time.Duration {
	if s.OTPTTL > 0 {
		return s.OTPTTL
	}
	return DefaultOTPTTL
}

func (s *AuthService) accessTTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

func (s *AuthService) resetTTL() time.Duration {
	if s.ResetTTL > 0 {
		return s.ResetTTL
	}
	return jwtx.DefaultResetTokenTTL
}

func (s *AuthService) apiKeyTTL() time.Duration {
	if s.APIKeyTTL > 0 {
		return s.APIKeyTTL
	}
	return DefaultAPIKeyTTL
}

// Signup registers a new unverified user and mails them a verification code.
//
// Re-signup with an unverified email regenerates the code rather than
// failing, so an abandoned signup never locks an address out. A verified
// email is a hard conflict.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (time.Time, error) {
	l := slogx.FromContext(ctx)
	email = normalizeEmail(email)
	now := time.Now().UTC()
	expiresAt := now.Add(s.otpTTL())

	code, err := cryptox.GenerateOTPCode()
	if err != nil {
		return time.Time{}, err
	}

	// Hash before the transaction so the writer lock is never held across an
	// argon2 derivation.
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return time.Time{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Users().GetUserByEmail(ctx, email)
		switch {
		case err == nil && existing.Verified:
			return ErrEmailTaken

		case err == nil:
			// Unverified account from an earlier attempt: issue a fresh code.
			return tx.Users().UpdateOTP(ctx, existing.ID, code, expiresAt)

		case errors.Is(err, store.ErrNotFound):
			return tx.Users().CreateUser(ctx, domain.User{
				ID:           idx.New().String(),
				Email:        email,
				PasswordHash: hash,
				Name:         name,
				Verified:     false,
				OTPCode:      &code,
				OTPExpiresAt: &expiresAt,
				CreatedAt:    now,
				UpdatedAt:    now,
			})

		default:
			return err
		}
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return time.Time{}, ErrEmailTaken
		}
		return time.Time{}, err
	}

	// Mail delivery stays outside the transaction; a delivery failure is
	// recoverable via resend-code.
	if err := s.Mail.SendVerificationCode(ctx, email, name, code, expiresAt); err != nil {
		l.Error("verification code delivery failed", slog.String("email", email), slog.Any("error", err))
	}

	return expiresAt, nil
}

// ResendCode issues a fresh verification code for a pending signup.
func (s *AuthService) ResendCode(ctx context.Context, email string) (time.Time, error) {
	email = normalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		return time.Time{}, err
	}
	if user.Verified {
		return time.Time{}, ErrAlreadyVerified
	}

	code, err := cryptox.GenerateOTPCode()
	if err != nil {
		return time.Time{}, err
	}
	expiresAt := time.Now().UTC().Add(s.otpTTL())

	if err := s.Store.Users().UpdateOTP(ctx, user.ID, code, expiresAt); err != nil {
		return time.Time{}, err
	}

	if err := s.Mail.SendVerificationCode(ctx, email, user.Name, code, expiresAt); err != nil {
		slogx.FromContext(ctx).Error("verification code delivery failed",
			slog.String("email", email), slog.Any("error", err))
	}

	return expiresAt, nil
}

// VerifyCode consumes a pending verification code, marking the user verified.
// The code is single-use: of two concurrent attempts only one succeeds.
func (s *AuthService) VerifyCode(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.Verified {
		return ErrAlreadyVerified
	}
	if user.OTPCode == nil || user.OTPExpiresAt == nil {
		return ErrInvalidCode
	}
	if time.Now().UTC().After(*user.OTPExpiresAt) {
		return ErrCodeExpired
	}

	ok, err := s.Store.Users().ConsumeOTP(ctx, user.ID, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCode
	}
	return nil
}

// Login authenticates a verified user and issues an access token. All
// failure modes collapse into ErrInvalidCredentials so responses cannot be
// used to probe which emails are registered or verified.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Duration, error) {
	l := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a hash comparison anyway to keep timing flat.
			_ = cryptox.VerifyPassword(password, dummyHash)
			return "", 0, ErrInvalidCredentials
		}
		return "", 0, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", slog.String("email", email))
		return "", 0, ErrInvalidCredentials
	}

	if !user.Verified {
		l.Info("login attempt on unverified account", slog.String("email", email))
		return "", 0, ErrInvalidCredentials
	}

	ttl := s.accessTTL()
	claims := jwtx.NewClaims(user.ID, jwtx.UseAccess, user.Email, user.Name, ttl, s.Issuer, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", 0, err
	}
	return token, ttl, nil
}

// RequestReset mails a short-lived reset token to the given address. It
// always reports success so the endpoint cannot be used for enumeration.
func (s *AuthService) RequestReset(ctx context.Context, email string) error {
	l := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	if !user.Verified {
		return nil
	}

	claims := jwtx.NewClaims(user.ID, jwtx.UseReset, user.Email, user.Name, s.resetTTL(), s.Issuer, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return err
	}

	if err := s.Mail.SendPasswordReset(ctx, email, user.Name, token); err != nil {
		l.Error("reset token delivery failed", slog.String("email", email), slog.Any("error", err))
	}
	return nil
}

// ResetPassword validates a reset token and replaces the user's password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return ErrInvalidToken
	}
	if err := claims.ValidateUse(jwtx.UseReset); err != nil {
		return ErrInvalidToken
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.Store.Users().UpdatePasswordHash(ctx, claims.Subject, hash)
}

// GenerateAPIKey mints a fresh API key for the user, replacing any previous
// one. Only the SHA-256 fingerprint is stored; the raw key is returned once.
func (s *AuthService) GenerateAPIKey(ctx context.Context, userID string) (string, time.Time, error) {
	raw, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", time.Time{}, err
	}

	expiresAt := time.Now().UTC().Add(s.apiKeyTTL())
	if err := s.Store.Users().SetAPIKey(ctx, userID, cryptox.FingerprintToken(raw), expiresAt); err != nil {
		return "", time.Time{}, err
	}
	return raw, expiresAt, nil
}

// RevokeAPIKey deactivates the user's API key immediately.
func (s *AuthService) RevokeAPIKey(ctx context.Context, userID string) error {
	return s.Store.Users().RevokeAPIKey(ctx, userID)
}

// GetUserByID fetches a user by id.
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// AuthenticateBearer resolves a Bearer access token to its user id.
func (s *AuthService) AuthenticateBearer(ctx context.Context, token string) (string, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	if err := claims.ValidateUse(jwtx.UseAccess); err != nil {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// AuthenticateAPIKey resolves a raw API key to its user id. Revoked and
// expired keys fail even before housekeeping has flipped their active flag.
func (s *AuthService) AuthenticateAPIKey(ctx context.Context, rawKey string) (string, error) {
	user, err := s.Store.Users().GetUserByAPIKeyHash(ctx, cryptox.FingerprintToken(rawKey))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if !user.HasActiveAPIKey(time.Now().UTC()) {
		return "", ErrInvalidToken
	}
	return user.ID, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// dummyHash is compared against when the email is unknown so lookups and
// misses take comparable time.
var dummyHash = func() string {
	h, err := cryptox.HashPassword("not-a-real-password")
	if err != nil {
		return ""
	}
	return h
}()
