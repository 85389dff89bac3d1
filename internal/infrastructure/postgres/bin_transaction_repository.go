package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.BinTransactionRepository = (*BinTransactionRepo)(nil)

// BinTransactionRepo implementación de BinTransactionRepository sobre PostgreSQL (usable con pool o tx).
type BinTransactionRepo struct {
	q Querier
}

// NewBinTransactionRepository construye el adaptador del libro por ubicación. Pasar pool o tx (Querier).
func NewBinTransactionRepository(q Querier) *BinTransactionRepo {
	return &BinTransactionRepo{q: q}
}

// Create persiste una nueva transacción de ubicación.
func (r *BinTransactionRepo) Create(ctx context.Context, tx *entity.BinTransaction) error {
	query := `
		INSERT INTO bin_transactions (id, material_code, bin_location, received_qty, issued_qty, balance_qty, person_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.MaterialCode, tx.BinLocation, tx.ReceivedQty, tx.IssuedQty,
		tx.BalanceQty, tx.PersonName, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bin transaction: %w", err)
	}
	return nil
}

// ListByMaterial devuelve las transacciones de un material, la más reciente primero.
func (r *BinTransactionRepo) ListByMaterial(ctx context.Context, materialCode string) ([]*entity.BinTransaction, error) {
	query := `
		SELECT id, material_code, bin_location, received_qty, issued_qty, balance_qty, person_name, created_at
		FROM bin_transactions WHERE material_code = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, materialCode)
	if err != nil {
		return nil, fmt.Errorf("list bin transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.BinTransaction
	for rows.Next() {
		var t entity.BinTransaction
		if err := rows.Scan(&t.ID, &t.MaterialCode, &t.BinLocation, &t.ReceivedQty,
			&t.IssuedQty, &t.BalanceQty, &t.PersonName, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bin transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
