package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/search"
)

// MaterialRepository puerto de persistencia para materiales.
// GetByCode devuelve (nil, nil) si el material no existe: la ausencia es un
// resultado normal, no un error.
type MaterialRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Material, error)
	// GetByCodeForUpdate bloquea la fila del material (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetByCodeForUpdate(ctx context.Context, code string) (*entity.Material, error)
	Upsert(ctx context.Context, m *entity.Material) error
	Delete(ctx context.Context, code string) error
	// List devuelve materiales según el término parseado, ordenados por
	// last_updated descendente.
	List(ctx context.Context, term search.Term) ([]*entity.Material, error)
	// ResetQuantities pone la cantidad de todos los materiales en 0 y
	// actualiza last_updated. No toca logs ni transacciones.
	ResetQuantities(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
