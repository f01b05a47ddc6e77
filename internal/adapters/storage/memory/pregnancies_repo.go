package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"prenatal-clinical-history/internal/domain/pregnancies"
)

type pregnanciesRepo struct {
	mu   sync.RWMutex
	byID map[string]pregnancies.Pregnancy
}

func NewPregnanciesRepo() pregnancies.Repository {
	return &pregnanciesRepo{
		byID: make(map[string]pregnancies.Pregnancy),
	}
}

func (r *pregnanciesRepo) Create(ctx context.Context, p pregnancies.Pregnancy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		return errors.New("pregnancy id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pregnancy already exists")
	}

	r.byID[p.ID] = p
	return nil
}

func (r *pregnanciesRepo) GetByID(ctx context.Context, id string) (pregnancies.Pregnancy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pregnancies.Pregnancy{}, pregnancies.ErrNotFound
	}
	return p, nil
}

func (r *pregnanciesRepo) ListActive(ctx context.Context) ([]pregnancies.Pregnancy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pregnancies.Pregnancy, 0)
	for _, p := range r.byID {
		if p.Status != pregnancies.StatusActive {
			continue
		}
		out = append(out, p)
	}

	// Orden estable por fecha de alta (útil en tests y listados).
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *pregnanciesRepo) Update(ctx context.Context, p pregnancies.Pregnancy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; !ok {
		return pregnancies.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}
