package sqlite

import (
	"context"
	"database/sql"

	"github.com/sellside/prospectd/internal/crm/domain"
)

type paymentsRepo struct {
	q querier
}

const paymentColumns = `id, user_id, deal_id, amount, method, status, created_at`

func scanPayment(sc interface{ Scan(...any) error }) (domain.Payment, error) {
	var p domain.Payment
	err := sc.Scan(&p.ID, &p.UserID, &p.DealID, &p.Amount, &p.Method, &p.Status, &p.CreatedAt)
	if err != nil {
		return domain.Payment{}, mapNotFound(err)
	}
	return p, nil
}

func (r *paymentsRepo) CreatePayment(ctx context.Context, p domain.Payment) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO payments (id, user_id, deal_id, amount, method, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.DealID, p.Amount, p.Method, p.Status, p.CreatedAt,
	)
	return err
}

func (r *paymentsRepo) GetPayment(ctx context.Context, userID, id string) (domain.Payment, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE user_id = ? AND id = ?`,
		userID, id)
	return scanPayment(row)
}

func (r *paymentsRepo) ListPayments(ctx context.Context, userID string) ([]domain.Payment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *paymentsRepo) UpdatePayment(ctx context.Context, p domain.Payment) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE payments
		SET amount = ?, method = ?, status = ?
		WHERE user_id = ? AND id = ?`,
		p.Amount, p.Method, p.Status, p.UserID, p.ID,
	)
	return checkAffected(res, err)
}

func (r *paymentsRepo) DeletePayment(ctx context.Context, userID, id string) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM payments WHERE user_id = ? AND id = ?`, userID, id)
	return checkAffected(res, err)
}

func (r *paymentsRepo) DeletePaymentsByDeal(ctx context.Context, userID, dealID string) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM payments WHERE user_id = ? AND deal_id = ?`, userID, dealID)
	return err
}

func (r *paymentsRepo) DeletePaymentsByProspect(ctx context.Context, userID, prospectID string) error {
	_, err := r.q.ExecContext(ctx, `
		DELETE FROM payments
		WHERE user_id = ? AND deal_id IN (
			SELECT id FROM deals WHERE user_id = ? AND prospect_id = ?
		)`,
		userID, userID, prospectID)
	return err
}

func (r *paymentsRepo) CompletedTotal(ctx context.Context, userID string) (float64, error) {
	var total sql.NullFloat64
	err := r.q.QueryRowContext(ctx, `
		SELECT SUM(amount) FROM payments WHERE user_id = ? AND status = ?`,
		userID, domain.PaymentStatusCompleted).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}
