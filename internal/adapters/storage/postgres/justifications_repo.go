package postgres

import (
	"context"
	"database/sql"

	"prenatal-clinical-history/internal/domain/justifications"
)

type JustificationsRepo struct {
	db *sql.DB
}

func NewJustificationsRepo(db *sql.DB) *JustificationsRepo {
	return &JustificationsRepo{db: db}
}

const justificationColumns = `
	id, pregnancy_id, reason, expected_visit_by, notes, status, created_at, updated_at
`

func (r *JustificationsRepo) Create(ctx context.Context, j justifications.Justification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO justifications (`+justificationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		j.ID,
		j.PregnancyID,
		string(j.Reason),
		j.ExpectedVisitBy,
		j.Notes,
		string(j.Status),
		j.CreatedAt,
		j.UpdatedAt,
	)
	return err
}

func (r *JustificationsRepo) Update(ctx context.Context, j justifications.Justification) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE justifications SET
			reason = $2, expected_visit_by = $3, notes = $4,
			status = $5, updated_at = $6
		WHERE id = $1
	`,
		j.ID,
		string(j.Reason),
		j.ExpectedVisitBy,
		j.Notes,
		string(j.Status),
		j.UpdatedAt,
	)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return justifications.ErrNotFound
	}
	return nil
}

func (r *JustificationsRepo) GetActiveByPregnancy(ctx context.Context, pregnancyID string) (justifications.Justification, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+justificationColumns+`
		FROM justifications
		WHERE pregnancy_id = $1 AND status = 'active'
		ORDER BY created_at DESC
		LIMIT 1
	`, pregnancyID)

	var j justifications.Justification
	var reason, status string
	err := row.Scan(
		&j.ID,
		&j.PregnancyID,
		&reason,
		&j.ExpectedVisitBy,
		&j.Notes,
		&status,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return justifications.Justification{}, justifications.ErrNotFound
	}
	if err != nil {
		return justifications.Justification{}, err
	}

	j.Reason = justifications.Reason(reason)
	j.Status = justifications.Status(status)
	return j, nil
}
