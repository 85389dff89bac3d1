package inventory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que mutación de material, log y transacción de ubicación se aplican juntos o no se aplican.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		logRepo repository.MovementLogRepository,
		binTxRepo repository.BinTransactionRepository,
	) error) error
}
