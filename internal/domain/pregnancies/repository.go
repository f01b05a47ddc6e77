package pregnancies

import "context"

type Repository interface {
	Create(ctx context.Context, p Pregnancy) error
	GetByID(ctx context.Context, id string) (Pregnancy, error)
	ListActive(ctx context.Context) ([]Pregnancy, error)
	Update(ctx context.Context, p Pregnancy) error
}
