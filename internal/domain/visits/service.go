package visits

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
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
	VisitDate time.Time

	WeightKg       *float64
	SystolicBP     *int
	DiastolicBP    *int
	FundalHeightCm *float64
	FetalHeartRate *int

	Urgent bool
	Notes  string
}

func (s *Service) Create(ctx context.Context, pregnancyID string, in CreateInput) (Visit, error) {
	if strings.TrimSpace(pregnancyID) == "" {
		return Visit{}, ErrInvalidInput
	}
	if in.VisitDate.IsZero() {
		return Visit{}, ErrInvalidInput
	}

	v := Visit{
		ID:             uuid.NewString(),
		PregnancyID:    pregnancyID,
		VisitDate:      in.VisitDate,
		WeightKg:       in.WeightKg,
		SystolicBP:     in.SystolicBP,
		DiastolicBP:    in.DiastolicBP,
		FundalHeightCm: in.FundalHeightCm,
		FetalHeartRate: in.FetalHeartRate,
		Urgent:         in.Urgent,
		Notes:          strings.TrimSpace(in.Notes),
		RecordedAt:     s.now(),
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Visit{}, err
	}
	return v, nil
}

func (s *Service) ListByPregnancy(ctx context.Context, pregnancyID string) ([]Visit, error) {
	return s.repo.ListByPregnancy(ctx, pregnancyID)
}

func (s *Service) LatestDate(ctx context.Context, pregnancyID string) (*time.Time, error) {
	return s.repo.LatestDate(ctx, pregnancyID)
}
