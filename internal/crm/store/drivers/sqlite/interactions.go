package sqlite

import (
	"context"
	"database/sql"

	"github.com/sellside/prospectd/internal/crm/domain"
)

type interactionsRepo struct {
	q querier
}

const interactionColumns = `id, user_id, prospect_id, channel, type, attempt_number, content, response_type, success, created_at`

func scanInteraction(sc interface{ Scan(...any) error }) (domain.Interaction, error) {
	var (
		in       domain.Interaction
		content  sql.NullString
		response sql.NullString
	)

	err := sc.Scan(
		&in.ID, &in.UserID, &in.ProspectID, &in.Channel, &in.Type,
		&in.AttemptNumber, &content, &response, &in.Success, &in.CreatedAt,
	)
	if err != nil {
		return domain.Interaction{}, mapNotFound(err)
	}

	in.Content = mapNullString(content)
	in.ResponseType = mapNullString(response)
	return in, nil
}

func (r *interactionsRepo) CreateInteraction(ctx context.Context, in domain.Interaction) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO interactions (id, user_id, prospect_id, channel, type, attempt_number, content, response_type, success, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.UserID, in.ProspectID, in.Channel, in.Type,
		in.AttemptNumber, mapStringNull(in.Content), mapStringNull(in.ResponseType),
		in.Success, in.CreatedAt,
	)
	return err
}

func (r *interactionsRepo) GetInteraction(ctx context.Context, userID, id string) (domain.Interaction, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+interactionColumns+` FROM interactions WHERE user_id = ? AND id = ?`,
		userID, id)
	return scanInteraction(row)
}

func (r *interactionsRepo) ListInteractions(ctx context.Context, userID string) ([]domain.Interaction, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+interactionColumns+` FROM interactions WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Interaction, 0)
	for rows.Next() {
		in, err := scanInteraction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (r *interactionsRepo) UpdateInteraction(ctx context.Context, in domain.Interaction) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE interactions
		SET channel = ?, type = ?, attempt_number = ?, content = ?, response_type = ?, success = ?
		WHERE user_id = ? AND id = ?`,
		in.Channel, in.Type, in.AttemptNumber,
		mapStringNull(in.Content), mapStringNull(in.ResponseType), in.Success,
		in.UserID, in.ID,
	)
	return checkAffected(res, err)
}

func (r *interactionsRepo) DeleteInteraction(ctx context.Context, userID, id string) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM interactions WHERE user_id = ? AND id = ?`, userID, id)
	return checkAffected(res, err)
}

func (r *interactionsRepo) DeleteInteractionsByProspect(ctx context.Context, userID, prospectID string) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM interactions WHERE user_id = ? AND prospect_id = ?`, userID, prospectID)
	return err
}

func (r *interactionsRepo) CountAttempted(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM interactions WHERE user_id = ? AND attempt_number > 0`,
		userID).Scan(&n)
	return n, err
}
