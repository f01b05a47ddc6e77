package postgres

import (
	"context"
	"database/sql"
	"time"

	"prenatal-clinical-history/internal/domain/visits"
)

type VisitsRepo struct {
	db *sql.DB
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

const visitColumns = `
	id, pregnancy_id, visit_date,
	weight_kg, systolic_bp, diastolic_bp, fundal_height_cm, fetal_heart_rate,
	urgent, notes, recorded_at
`

func (r *VisitsRepo) Create(ctx context.Context, v visits.Visit) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO visits (`+visitColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		v.ID,
		v.PregnancyID,
		v.VisitDate,
		v.WeightKg,
		v.SystolicBP,
		v.DiastolicBP,
		v.FundalHeightCm,
		v.FetalHeartRate,
		v.Urgent,
		v.Notes,
		v.RecordedAt,
	)
	return err
}

func (r *VisitsRepo) ListByPregnancy(ctx context.Context, pregnancyID string) ([]visits.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+visitColumns+`
		FROM visits
		WHERE pregnancy_id = $1
		ORDER BY visit_date DESC
	`, pregnancyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]visits.Visit, 0)
	for rows.Next() {
		var v visits.Visit
		if err := rows.Scan(
			&v.ID,
			&v.PregnancyID,
			&v.VisitDate,
			&v.WeightKg,
			&v.SystolicBP,
			&v.DiastolicBP,
			&v.FundalHeightCm,
			&v.FetalHeartRate,
			&v.Urgent,
			&v.Notes,
			&v.RecordedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VisitsRepo) LatestDate(ctx context.Context, pregnancyID string) (*time.Time, error) {
	var latest sql.NullTime
	err := r.db.QueryRowContext(ctx, `
		SELECT MAX(visit_date) FROM visits WHERE pregnancy_id = $1
	`, pregnancyID).Scan(&latest)
	if err != nil {
		return nil, err
	}
	if !latest.Valid {
		return nil, nil
	}
	d := latest.Time
	return &d, nil
}
