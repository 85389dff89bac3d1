// Package logs contiene los casos de uso del rastro de auditoría.
package logs

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Límites del listado de logs.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// UseCase consultas y borrado del log de movimientos y del libro por ubicación.
type UseCase struct {
	logRepo   repository.MovementLogRepository
	binTxRepo repository.BinTransactionRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(logRepo repository.MovementLogRepository, binTxRepo repository.BinTransactionRepository) *UseCase {
	return &UseCase{logRepo: logRepo, binTxRepo: binTxRepo}
}

// List devuelve los `limit` logs más recientes (defecto 50, tope 200), del más nuevo al más viejo.
func (uc *UseCase) List(ctx context.Context, limit int) ([]*entity.MovementLog, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return uc.logRepo.ListRecent(ctx, limit)
}

// Clear elimina todos los logs incondicionalmente. Irreversible.
func (uc *UseCase) Clear(ctx context.Context) error {
	return uc.logRepo.Clear(ctx)
}

// ListBinTransactions devuelve las transacciones de ubicación de un material,
// de la más reciente a la más antigua.
func (uc *UseCase) ListBinTransactions(ctx context.Context, materialCode string) ([]*entity.BinTransaction, error) {
	return uc.binTxRepo.ListByMaterial(ctx, materialCode)
}
