package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sellside/prospectd/internal/crm/domain"
)

type dealsRepo struct {
	q querier
}

const dealColumns = `id, user_id, prospect_id, deal_value, stage, stage_reason, created_at, updated_at`

func scanDeal(sc interface{ Scan(...any) error }) (domain.Deal, error) {
	var (
		d           domain.Deal
		stageReason sql.NullString
		updatedAt   sql.NullTime
	)

	err := sc.Scan(
		&d.ID, &d.UserID, &d.ProspectID, &d.DealValue,
		&d.Stage, &stageReason, &d.CreatedAt, &updatedAt,
	)
	if err != nil {
		return domain.Deal{}, mapNotFound(err)
	}

	d.StageReason = mapNullString(stageReason)
	d.UpdatedAt = mapNullTimePtr(updatedAt)
	return d, nil
}

func (r *dealsRepo) CreateDeal(ctx context.Context, d domain.Deal) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO deals (id, user_id, prospect_id, deal_value, stage, stage_reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.UserID, d.ProspectID, d.DealValue,
		d.Stage, mapStringNull(d.StageReason), d.CreatedAt,
	)
	return err
}

func (r *dealsRepo) GetDeal(ctx context.Context, userID, id string) (domain.Deal, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+dealColumns+` FROM deals WHERE user_id = ? AND id = ?`,
		userID, id)
	return scanDeal(row)
}

func (r *dealsRepo) ListDeals(ctx context.Context, userID string) ([]domain.Deal, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+dealColumns+` FROM deals WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Deal, 0)
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *dealsRepo) UpdateDeal(ctx context.Context, d domain.Deal) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE deals
		SET deal_value = ?, stage = ?, stage_reason = ?, updated_at = ?
		WHERE user_id = ? AND id = ?`,
		d.DealValue, d.Stage, mapStringNull(d.StageReason), time.Now().UTC(),
		d.UserID, d.ID,
	)
	return checkAffected(res, err)
}

func (r *dealsRepo) DeleteDeal(ctx context.Context, userID, id string) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM deals WHERE user_id = ? AND id = ?`, userID, id)
	return checkAffected(res, err)
}

func (r *dealsRepo) DeleteDealsByProspect(ctx context.Context, userID, prospectID string) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM deals WHERE user_id = ? AND prospect_id = ?`, userID, prospectID)
	return err
}

func (r *dealsRepo) CountDealsByProspect(ctx context.Context, userID, prospectID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM deals WHERE user_id = ? AND prospect_id = ?`,
		userID, prospectID).Scan(&n)
	return n, err
}

func (r *dealsRepo) CountDeals(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM deals WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}
