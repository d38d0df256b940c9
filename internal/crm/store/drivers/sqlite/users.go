package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sellside/prospectd/internal/crm/domain"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, email, password_hash, name, verified, otp_code, otp_expires_at,
	api_key_hash, api_key_active, api_key_expires_at, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u            domain.User
		otpCode      sql.NullString
		otpExpires   sql.NullTime
		apiKeyHash   sql.NullString
		apiKeyActive sql.NullBool
		apiKeyExp    sql.NullTime
	)

	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Verified,
		&otpCode, &otpExpires,
		&apiKeyHash, &apiKeyActive, &apiKeyExp,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.OTPCode = mapNullStringPtr(otpCode)
	u.OTPExpiresAt = mapNullTimePtr(otpExpires)
	u.APIKeyHash = mapNullStringPtr(apiKeyHash)
	u.APIKeyActive = apiKeyActive.Valid && apiKeyActive.Bool
	u.APIKeyExpiresAt = mapNullTimePtr(apiKeyExp)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) GetUserByAPIKeyHash(ctx context.Context, hash string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE api_key_hash = ?`, hash)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, name, verified, otp_code, otp_expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Verified,
		mapOptionalString(u.OTPCode), mapOptionalTime(u.OTPExpiresAt),
		u.CreatedAt, u.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateOTP(ctx context.Context, userID, code string, expiresAt time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET otp_code = ?, otp_expires_at = ?, updated_at = ?
		WHERE id = ?`,
		code, expiresAt, time.Now().UTC(), userID,
	)
	return checkAffected(res, err)
}

func (r *usersRepo) ConsumeOTP(ctx context.Context, userID, code string) (bool, error) {
	// Conditional update: only one concurrent verify attempt can win.
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET verified = 1, otp_code = NULL, otp_expires_at = NULL, updated_at = ?
		WHERE id = ? AND verified = 0 AND otp_code = ?`,
		time.Now().UTC(), userID, code,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), userID,
	)
	return checkAffected(res, err)
}

func (r *usersRepo) SetAPIKey(ctx context.Context, userID, hash string, expiresAt time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET api_key_hash = ?, api_key_active = 1, api_key_expires_at = ?, updated_at = ?
		WHERE id = ?`,
		hash, expiresAt, time.Now().UTC(), userID,
	)
	return checkAffected(res, err)
}

func (r *usersRepo) RevokeAPIKey(ctx context.Context, userID string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET api_key_active = 0, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), userID,
	)
	return checkAffected(res, err)
}

func (r *usersRepo) ClearExpiredOTPs(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET otp_code = NULL, otp_expires_at = NULL
		WHERE otp_expires_at IS NOT NULL AND otp_expires_at < ?`,
		time.Now().UTC(),
	)
	return err
}

func (r *usersRepo) DeactivateExpiredAPIKeys(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET api_key_active = 0
		WHERE api_key_active = 1 AND api_key_expires_at IS NOT NULL AND api_key_expires_at < ?`,
		time.Now().UTC(),
	)
	return err
}
