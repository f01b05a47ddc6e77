package pregnancies

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"prenatal-clinical-history/internal/domain/gestation"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	PatientName string
	Phone       string
	Email       string

	LMPDate           *time.Time
	UltrasoundDate    *time.Time
	UltrasoundGAWeeks *int
	UltrasoundGADays  *int

	ProgrammedDeliveryDate *time.Time
	DesiredDeliveryType    DeliveryType

	HighRisk bool
	Notes    string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pregnancy, error) {
	if strings.TrimSpace(in.PatientName) == "" {
		return Pregnancy{}, ErrInvalidInput
	}
	// IG de ultrasonido sin fecha de ultrasonido no significa nada.
	if in.UltrasoundGAWeeks != nil && in.UltrasoundDate == nil {
		return Pregnancy{}, ErrInvalidInput
	}

	dt := in.DesiredDeliveryType
	if dt == "" {
		dt = DeliveryUndecided
	}

	now := s.now()
	p := Pregnancy{
		ID:                     uuid.NewString(),
		PatientName:            strings.TrimSpace(in.PatientName),
		Phone:                  strings.TrimSpace(in.Phone),
		Email:                  strings.TrimSpace(in.Email),
		LMPDate:                in.LMPDate,
		UltrasoundDate:         in.UltrasoundDate,
		UltrasoundGAWeeks:      in.UltrasoundGAWeeks,
		UltrasoundGADays:       in.UltrasoundGADays,
		ProgrammedDeliveryDate: in.ProgrammedDeliveryDate,
		DesiredDeliveryType:    dt,
		HighRisk:               in.HighRisk,
		Notes:                  strings.TrimSpace(in.Notes),
		Status:                 StatusActive,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pregnancy{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pregnancy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pregnancy{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListActive(ctx context.Context) ([]Pregnancy, error) {
	return s.repo.ListActive(ctx)
}

// UpdateDatingInput usa punteros-a-puntero vía flags de presencia simples:
// nil = no tocar; puntero a nil no se soporta (para limpiar un campo de
// datación el staff recarga el registro completo, caso raro en la práctica).
type UpdateDatingInput struct {
	LMPDate           *time.Time
	UltrasoundDate    *time.Time
	UltrasoundGAWeeks *int
	UltrasoundGADays  *int

	ProgrammedDeliveryDate *time.Time
	DesiredDeliveryType    *DeliveryType
	Status                 *Status
	Notes                  *string
}

// UpdateDating corrige los datos de datación/estado de un embarazo.
func (s *Service) UpdateDating(ctx context.Context, id string, in UpdateDatingInput) (Pregnancy, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pregnancy{}, err
	}

	if in.LMPDate != nil {
		p.LMPDate = in.LMPDate
	}
	if in.UltrasoundDate != nil {
		p.UltrasoundDate = in.UltrasoundDate
	}
	if in.UltrasoundGAWeeks != nil {
		p.UltrasoundGAWeeks = in.UltrasoundGAWeeks
	}
	if in.UltrasoundGADays != nil {
		p.UltrasoundGADays = in.UltrasoundGADays
	}
	if in.ProgrammedDeliveryDate != nil {
		p.ProgrammedDeliveryDate = in.ProgrammedDeliveryDate
	}
	if in.DesiredDeliveryType != nil {
		p.DesiredDeliveryType = *in.DesiredDeliveryType
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Notes != nil {
		p.Notes = strings.TrimSpace(*in.Notes)
	}

	if p.UltrasoundGAWeeks != nil && p.UltrasoundDate == nil {
		return Pregnancy{}, ErrInvalidInput
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pregnancy{}, err
	}
	return p, nil
}

// EstimateAt devuelve la datación canónica del embarazo a una fecha de
// referencia explícita. ok=false cuando el embarazo no tiene datación.
func (s *Service) EstimateAt(ctx context.Context, id string, referenceDate time.Time) (Pregnancy, gestation.Estimate, bool, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pregnancy{}, gestation.Estimate{}, false, err
	}
	est, ok := gestation.EstimateDating(p.Dating(), referenceDate)
	return p, est, ok, nil
}
