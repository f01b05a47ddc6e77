package visits

import "time"

// Visit es una consulta prenatal registrada. Los campos clínicos son
// opcionales: una consulta de urgencia puede cargar solo fecha y notas.
type Visit struct {
	ID          string
	PregnancyID string

	VisitDate time.Time

	WeightKg       *float64
	SystolicBP     *int
	DiastolicBP    *int
	FundalHeightCm *float64
	FetalHeartRate *int

	Urgent bool
	Notes  string

	RecordedAt time.Time
}
