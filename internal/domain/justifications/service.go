package justifications

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
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
	Reason          Reason
	ExpectedVisitBy *time.Time
	Notes           string
}

// Create registra una justificación para el embarazo. Si ya había una
// activa, la reemplaza: el flujo clínico trabaja con una sola vigente.
func (s *Service) Create(ctx context.Context, pregnancyID string, in CreateInput) (Justification, error) {
	pregnancyID = strings.TrimSpace(pregnancyID)
	if pregnancyID == "" {
		return Justification{}, ErrInvalidInput
	}
	if !ValidReason(in.Reason) {
		return Justification{}, ErrInvalidInput
	}

	now := s.now()

	if prev, err := s.repo.GetActiveByPregnancy(ctx, pregnancyID); err == nil {
		prev.Status = StatusRemoved
		prev.UpdatedAt = now
		if err := s.repo.Update(ctx, prev); err != nil {
			return Justification{}, err
		}
	}

	j := Justification{
		ID:              uuid.NewString(),
		PregnancyID:     pregnancyID,
		Reason:          in.Reason,
		ExpectedVisitBy: in.ExpectedVisitBy,
		Notes:           strings.TrimSpace(in.Notes),
		Status:          StatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, j); err != nil {
		return Justification{}, err
	}
	return j, nil
}

func (s *Service) GetActive(ctx context.Context, pregnancyID string) (Justification, error) {
	return s.repo.GetActiveByPregnancy(ctx, pregnancyID)
}

// Remove marca la justificación activa como removida (no se borra).
func (s *Service) Remove(ctx context.Context, pregnancyID string) error {
	j, err := s.repo.GetActiveByPregnancy(ctx, pregnancyID)
	if err != nil {
		return ErrNotFound
	}
	j.Status = StatusRemoved
	j.UpdatedAt = s.now()
	return s.repo.Update(ctx, j)
}
