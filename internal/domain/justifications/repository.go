package justifications

import "context"

type Repository interface {
	Create(ctx context.Context, j Justification) error
	Update(ctx context.Context, j Justification) error

	// GetActiveByPregnancy devuelve la justificación activa del embarazo.
	// A lo sumo hay una activa por embarazo.
	GetActiveByPregnancy(ctx context.Context, pregnancyID string) (Justification, error)
}
