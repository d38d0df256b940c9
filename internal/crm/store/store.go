package store

import (
	"context"
	"errors"
	"time"

	"github.com/sellside/prospectd/internal/crm/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Prospects() Prospects
	Deals() Deals
	Payments() Payments
	Interactions() Interactions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rolled back if fn errors,
	// committed otherwise. Every cascade delete and every credential state
	// transition goes through here.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store: the same repositories plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during signup, verification and login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByAPIKeyHash resolves an API key fingerprint to its user,
	// regardless of the key's active/expiry state (the service checks those).
	GetUserByAPIKeyHash(ctx context.Context, hash string) (domain.User, error)

	// CreateUser inserts a new unverified user (id is a ULID provided by the
	// service). Returns ErrAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateOTP replaces the pending verification code and its expiry.
	UpdateOTP(ctx context.Context, userID, code string, expiresAt time.Time) error

	// ConsumeOTP marks the user verified and clears the OTP fields, but only
	// if the stored code still matches and the user is unverified. Returns
	// false when the code was wrong or already consumed — the single-use
	// guarantee for concurrent verify attempts.
	ConsumeOTP(ctx context.Context, userID, code string) (bool, error)

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// SetAPIKey stores a new key fingerprint with active=1, replacing any
	// previous key.
	SetAPIKey(ctx context.Context, userID, hash string, expiresAt time.Time) error

	// RevokeAPIKey clears the active flag. The hash is retained so the key
	// can never be replayed into a fresh-looking record.
	RevokeAPIKey(ctx context.Context, userID string) error

	// ClearExpiredOTPs drops pending codes past their expiry (housekeeping).
	ClearExpiredOTPs(ctx context.Context) error

	// DeactivateExpiredAPIKeys flips active=0 for keys past their expiry
	// (housekeeping; expiry is also checked at use time).
	DeactivateExpiredAPIKeys(ctx context.Context) error
}

// All CRM repositories are tenant-scoped: row lookups take the owning user's
// id and rows owned by other users behave as missing.

type Prospects interface {
	CreateProspect(ctx context.Context, p domain.Prospect) error
	GetProspect(ctx context.Context, userID, id string) (domain.Prospect, error)
	ListProspects(ctx context.Context, userID string) ([]domain.Prospect, error)

	// ListRecentProspects returns the newest prospects first, up to limit.
	ListRecentProspects(ctx context.Context, userID string, limit int) ([]domain.Prospect, error)

	UpdateProspect(ctx context.Context, p domain.Prospect) error

	// DeleteProspect removes the prospect row only; cascades are composed in
	// the service inside a transaction.
	DeleteProspect(ctx context.Context, userID, id string) error

	CountProspects(ctx context.Context, userID string) (int, error)
}

type Deals interface {
	CreateDeal(ctx context.Context, d domain.Deal) error
	GetDeal(ctx context.Context, userID, id string) (domain.Deal, error)
	ListDeals(ctx context.Context, userID string) ([]domain.Deal, error)
	UpdateDeal(ctx context.Context, d domain.Deal) error
	DeleteDeal(ctx context.Context, userID, id string) error

	// DeleteDealsByProspect removes every deal under a prospect.
	DeleteDealsByProspect(ctx context.Context, userID, prospectID string) error

	// CountDealsByProspect drives the conditional upward cascade on deal
	// deletion.
	CountDealsByProspect(ctx context.Context, userID, prospectID string) (int, error)

	CountDeals(ctx context.Context, userID string) (int, error)
}

type Payments interface {
	CreatePayment(ctx context.Context, p domain.Payment) error
	GetPayment(ctx context.Context, userID, id string) (domain.Payment, error)
	ListPayments(ctx context.Context, userID string) ([]domain.Payment, error)
	UpdatePayment(ctx context.Context, p domain.Payment) error
	DeletePayment(ctx context.Context, userID, id string) error

	// DeletePaymentsByDeal removes every payment under a deal.
	DeletePaymentsByDeal(ctx context.Context, userID, dealID string) error

	// DeletePaymentsByProspect removes the payments of all of a prospect's
	// deals in one statement.
	DeletePaymentsByProspect(ctx context.Context, userID, prospectID string) error

	// CompletedTotal sums amount over payments with status=completed: the
	// revenue figure reported on the dashboard.
	CompletedTotal(ctx context.Context, userID string) (float64, error)
}

type Interactions interface {
	CreateInteraction(ctx context.Context, in domain.Interaction) error
	GetInteraction(ctx context.Context, userID, id string) (domain.Interaction, error)
	ListInteractions(ctx context.Context, userID string) ([]domain.Interaction, error)
	UpdateInteraction(ctx context.Context, in domain.Interaction) error
	DeleteInteraction(ctx context.Context, userID, id string) error

	// DeleteInteractionsByProspect removes every interaction under a
	// prospect.
	DeleteInteractionsByProspect(ctx context.Context, userID, prospectID string) error

	// CountAttempted counts interactions with attempt_number > 0.
	CountAttempted(ctx context.Context, userID string) (int, error)
}
