package postgres

import (
	"context"
	"database/sql"
	"strings"

	"prenatal-clinical-history/internal/domain/pregnancies"
)

type PregnanciesRepo struct {
	db *sql.DB
}

func NewPregnanciesRepo(db *sql.DB) *PregnanciesRepo {
	return &PregnanciesRepo{db: db}
}

const pregnancyColumns = `
	id, patient_name, phone, email,
	lmp_date, ultrasound_date, ultrasound_ga_weeks, ultrasound_ga_days,
	programmed_delivery_date, desired_delivery_type,
	high_risk, notes, status,
	created_at, updated_at
`

func (r *PregnanciesRepo) Create(ctx context.Context, p pregnancies.Pregnancy) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pregnancies (`+pregnancyColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		p.ID,
		p.PatientName,
		p.Phone,
		p.Email,
		p.LMPDate,
		p.UltrasoundDate,
		p.UltrasoundGAWeeks,
		p.UltrasoundGADays,
		p.ProgrammedDeliveryDate,
		string(p.DesiredDeliveryType),
		p.HighRisk,
		p.Notes,
		string(p.Status),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PregnanciesRepo) GetByID(ctx context.Context, id string) (pregnancies.Pregnancy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pregnancies.Pregnancy{}, pregnancies.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+pregnancyColumns+`
		FROM pregnancies
		WHERE id = $1
	`, id)

	p, err := scanPregnancy(row)
	if err == sql.ErrNoRows {
		return pregnancies.Pregnancy{}, pregnancies.ErrNotFound
	}
	return p, err
}

func (r *PregnanciesRepo) ListActive(ctx context.Context) ([]pregnancies.Pregnancy, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+pregnancyColumns+`
		FROM pregnancies
		WHERE status = 'active'
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pregnancies.Pregnancy, 0)
	for rows.Next() {
		p, err := scanPregnancy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PregnanciesRepo) Update(ctx context.Context, p pregnancies.Pregnancy) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pregnancies SET
			patient_name = $2, phone = $3, email = $4,
			lmp_date = $5, ultrasound_date = $6,
			ultrasound_ga_weeks = $7, ultrasound_ga_days = $8,
			programmed_delivery_date = $9, desired_delivery_type = $10,
			high_risk = $11, notes = $12, status = $13,
			updated_at = $14
		WHERE id = $1
	`,
		p.ID,
		p.PatientName,
		p.Phone,
		p.Email,
		p.LMPDate,
		p.UltrasoundDate,
		p.UltrasoundGAWeeks,
		p.UltrasoundGADays,
		p.ProgrammedDeliveryDate,
		string(p.DesiredDeliveryType),
		p.HighRisk,
		p.Notes,
		string(p.Status),
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pregnancies.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPregnancy(row rowScanner) (pregnancies.Pregnancy, error) {
	var p pregnancies.Pregnancy
	var deliveryType, status string

	if err := row.Scan(
		&p.ID,
		&p.PatientName,
		&p.Phone,
		&p.Email,
		&p.LMPDate,
		&p.UltrasoundDate,
		&p.UltrasoundGAWeeks,
		&p.UltrasoundGADays,
		&p.ProgrammedDeliveryDate,
		&deliveryType,
		&p.HighRisk,
		&p.Notes,
		&status,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pregnancies.Pregnancy{}, err
	}

	p.DesiredDeliveryType = pregnancies.DeliveryType(deliveryType)
	p.Status = pregnancies.Status(status)
	return p, nil
}
