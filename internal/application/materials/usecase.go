// Package materials contiene los casos de uso de consulta y mantenimiento
// de materiales (listado con búsqueda, detalle, borrado, reinicio de inventario).
package materials

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/search"
)

// UseCase operaciones sobre materiales que no pasan por el motor de movimientos.
type UseCase struct {
	materialRepo repository.MaterialRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(materialRepo repository.MaterialRepository) *UseCase {
	return &UseCase{materialRepo: materialRepo}
}

// List devuelve materiales según el término de búsqueda (ver dominio search).
// Sin término devuelve todos, ordenados por last_updated descendente.
func (uc *UseCase) List(ctx context.Context, rawTerm string) ([]*entity.Material, error) {
	return uc.materialRepo.List(ctx, search.Parse(rawTerm))
}

// Get devuelve el material o (nil, nil) si no existe; la ausencia no es error.
func (uc *UseCase) Get(ctx context.Context, code string) (*entity.Material, error) {
	return uc.materialRepo.GetByCode(ctx, code)
}

// Delete elimina la fila del material. Los logs y transacciones de ubicación
// permanecen como histórico referenciando un material ya ausente.
func (uc *UseCase) Delete(ctx context.Context, code string) error {
	return uc.materialRepo.Delete(ctx, code)
}

// Reset pone en 0 la cantidad de todos los materiales (no los borra) y
// actualiza last_updated. Logs y transacciones quedan intactos.
func (uc *UseCase) Reset(ctx context.Context) error {
	return uc.materialRepo.ResetQuantities(ctx)
}
