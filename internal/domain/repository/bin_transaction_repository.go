package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// BinTransactionRepository puerto de persistencia del libro mayor por ubicación.
type BinTransactionRepository interface {
	Create(ctx context.Context, tx *entity.BinTransaction) error
	// ListByMaterial devuelve todas las transacciones de un material,
	// de la más reciente a la más antigua.
	ListByMaterial(ctx context.Context, materialCode string) ([]*entity.BinTransaction, error)
}
