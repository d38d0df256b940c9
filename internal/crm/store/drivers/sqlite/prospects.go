package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sellside/prospectd/internal/crm/domain"
)

type prospectsRepo struct {
	q querier
}

const prospectColumns = `id, user_id, name, email, website, phone, pain, pain_score, status, created_at, updated_at`

func scanProspect(sc interface{ Scan(...any) error }) (domain.Prospect, error) {
	var (
		p         domain.Prospect
		website   sql.NullString
		phone     sql.NullString
		pain      sql.NullString
		painScore sql.NullInt64
		updatedAt sql.NullTime
	)

	err := sc.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Email,
		&website, &phone, &pain, &painScore,
		&p.Status, &p.CreatedAt, &updatedAt,
	)
	if err != nil {
		return domain.Prospect{}, mapNotFound(err)
	}

	p.Website = mapNullString(website)
	p.Phone = mapNullString(phone)
	p.Pain = mapNullString(pain)
	p.PainScore = mapNullIntPtr(painScore)
	p.UpdatedAt = mapNullTimePtr(updatedAt)
	return p, nil
}

func (r *prospectsRepo) CreateProspect(ctx context.Context, p domain.Prospect) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO prospects (id, user_id, name, email, website, phone, pain, pain_score, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Name, p.Email,
		mapStringNull(p.Website), mapStringNull(p.Phone), mapStringNull(p.Pain),
		mapOptionalInt(p.PainScore), p.Status, p.CreatedAt,
	)
	return err
}

func (r *prospectsRepo) GetProspect(ctx context.Context, userID, id string) (domain.Prospect, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+prospectColumns+` FROM prospects WHERE user_id = ? AND id = ?`,
		userID, id)
	return scanProspect(row)
}

func (r *prospectsRepo) ListProspects(ctx context.Context, userID string) ([]domain.Prospect, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+prospectColumns+` FROM prospects WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProspects(rows)
}

func (r *prospectsRepo) ListRecentProspects(ctx context.Context, userID string, limit int) ([]domain.Prospect, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+prospectColumns+` FROM prospects WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProspects(rows)
}

func collectProspects(rows *sql.Rows) ([]domain.Prospect, error) {
	out := make([]domain.Prospect, 0)
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *prospectsRepo) UpdateProspect(ctx context.Context, p domain.Prospect) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE prospects
		SET name = ?, email = ?, website = ?, phone = ?, pain = ?, pain_score = ?, status = ?, updated_at = ?
		WHERE user_id = ? AND id = ?`,
		p.Name, p.Email,
		mapStringNull(p.Website), mapStringNull(p.Phone), mapStringNull(p.Pain),
		mapOptionalInt(p.PainScore), p.Status, time.Now().UTC(),
		p.UserID, p.ID,
	)
	return checkAffected(res, err)
}

func (r *prospectsRepo) DeleteProspect(ctx context.Context, userID, id string) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM prospects WHERE user_id = ? AND id = ?`, userID, id)
	return checkAffected(res, err)
}

func (r *prospectsRepo) CountProspects(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM prospects WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}
