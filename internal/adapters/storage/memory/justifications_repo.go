package memory

import (
	"context"
	"errors"
	"sync"

	"prenatal-clinical-history/internal/domain/justifications"
)

type justificationsRepo struct {
	mu   sync.RWMutex
	byID map[string]justifications.Justification
}

func NewJustificationsRepo() justifications.Repository {
	return &justificationsRepo{
		byID: make(map[string]justifications.Justification),
	}
}

func (r *justificationsRepo) Create(ctx context.Context, j justifications.Justification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if j.ID == "" {
		return errors.New("justification id required")
	}
	if _, exists := r.byID[j.ID]; exists {
		return errors.New("justification already exists")
	}

	r.byID[j.ID] = j
	return nil
}

func (r *justificationsRepo) Update(ctx context.Context, j justifications.Justification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[j.ID]; !ok {
		return justifications.ErrNotFound
	}
	r.byID[j.ID] = j
	return nil
}

func (r *justificationsRepo) GetActiveByPregnancy(ctx context.Context, pregnancyID string) (justifications.Justification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, j := range r.byID {
		if j.PregnancyID == pregnancyID && j.Status == justifications.StatusActive {
			return j, nil
		}
	}
	return justifications.Justification{}, justifications.ErrNotFound
}
