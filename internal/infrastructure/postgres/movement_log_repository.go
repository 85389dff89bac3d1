package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.MovementLogRepository = (*MovementLogRepo)(nil)

// MovementLogRepo implementación de MovementLogRepository sobre PostgreSQL (usable con pool o tx).
type MovementLogRepo struct {
	q Querier
}

// NewMovementLogRepository construye el adaptador del log de movimientos. Pasar pool o tx (Querier).
func NewMovementLogRepository(q Querier) *MovementLogRepo {
	return &MovementLogRepo{q: q}
}

// Create persiste un nuevo log. Los logs nunca se actualizan.
func (r *MovementLogRepo) Create(ctx context.Context, log *entity.MovementLog) error {
	query := `
		INSERT INTO movement_logs (id, material_code, action, quantity, rack, bin, balance_qty, entered_by, issued_by, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		log.ID, log.MaterialCode, log.Action, log.Quantity, log.Rack, log.Bin,
		log.BalanceQty, log.EnteredBy, log.IssuedBy, log.UserID, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement log: %w", err)
	}
	return nil
}

// ListRecent devuelve los `limit` logs más recientes, del más nuevo al más viejo.
func (r *MovementLogRepo) ListRecent(ctx context.Context, limit int) ([]*entity.MovementLog, error) {
	query := `
		SELECT id, material_code, action, quantity, rack, bin, balance_qty, entered_by, issued_by, user_id, created_at
		FROM movement_logs ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list movement logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementLog
	for rows.Next() {
		var l entity.MovementLog
		if err := rows.Scan(&l.ID, &l.MaterialCode, &l.Action, &l.Quantity, &l.Rack, &l.Bin,
			&l.BalanceQty, &l.EnteredBy, &l.IssuedBy, &l.UserID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// CountByActionSince cuenta logs de una acción creados desde `since`.
func (r *MovementLogRepo) CountByActionSince(ctx context.Context, action string, since time.Time) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM movement_logs WHERE action = $1 AND created_at >= $2`,
		action, since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movement logs: %w", err)
	}
	return n, nil
}

// Clear elimina todos los logs.
func (r *MovementLogRepo) Clear(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `DELETE FROM movement_logs`)
	if err != nil {
		return fmt.Errorf("clear movement logs: %w", err)
	}
	return nil
}
