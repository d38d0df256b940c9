// Package mail abstracts outbound email delivery. The service layer only
// depends on the Sender interface, so delivery can be swapped between the
// log-based development sender and a real provider without touching callers.
// Delivery always happens outside database transactions.
package mail

import (
	"context"
	"log/slog"
	"time"
)

type Sender interface {
	// SendVerificationCode delivers a signup verification code.
	SendVerificationCode(ctx context.Context, email, name, code string, expiresAt time.Time) error

	// SendPasswordReset delivers a password reset token.
	SendPasswordReset(ctx context.Context, email, name, token string) error
}

// LogSender writes outbound mail to the structured log instead of delivering
// it. Used in development and in tests.
type LogSender struct {
	Logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{Logger: logger}
}

func (s *LogSender) SendVerificationCode(ctx context.Context, email, name, code string, expiresAt time.Time) error {
	s.Logger.Info("sending verification code",
		slog.String("email", email),
		slog.String("name", name),
		slog.String("code", code),
		slog.Time("expires_at", expiresAt),
	)
	return nil
}

func (s *LogSender) SendPasswordReset(ctx context.Context, email, name, token string) error {
	s.Logger.Info("sending password reset",
		slog.String("email", email),
		slog.String("name", name),
		slog.String("token", token),
	)
	return nil
}
