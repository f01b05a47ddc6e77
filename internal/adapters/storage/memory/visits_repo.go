package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"prenatal-clinical-history/internal/domain/visits"
)

type visitsRepo struct {
	mu   sync.RWMutex
	byID map[string]visits.Visit
}

func NewVisitsRepo() visits.Repository {
	return &visitsRepo{
		byID: make(map[string]visits.Visit),
	}
}

func (r *visitsRepo) Create(ctx context.Context, v visits.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.ID == "" {
		return errors.New("visit id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("visit already exists")
	}

	r.byID[v.ID] = v
	return nil
}

func (r *visitsRepo) ListByPregnancy(ctx context.Context, pregnancyID string) ([]visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]visits.Visit, 0)
	for _, v := range r.byID {
		if v.PregnancyID == pregnancyID {
			out = append(out, v)
		}
	}

	// Más reciente primero.
	sort.Slice(out, func(i, j int) bool {
		return out[i].VisitDate.After(out[j].VisitDate)
	})

	return out, nil
}

func (r *visitsRepo) LatestDate(ctx context.Context, pregnancyID string) (*time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *time.Time
	for _, v := range r.byID {
		if v.PregnancyID != pregnancyID {
			continue
		}
		if latest == nil || v.VisitDate.After(*latest) {
			d := v.VisitDate
			latest = &d
		}
	}
	return latest, nil
}
