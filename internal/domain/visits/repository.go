package visits

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, v Visit) error
	ListByPregnancy(ctx context.Context, pregnancyID string) ([]Visit, error)

	// LatestDate devuelve la fecha de la consulta más reciente, o nil si
	// la paciente nunca consultó.
	LatestDate(ctx context.Context, pregnancyID string) (*time.Time, error)
}
