package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/search"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de materiales. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = "code, quantity, rack, bin, last_updated"

// GetByCode obtiene un material por código. (nil, nil) si no existe.
func (r *MaterialRepo) GetByCode(ctx context.Context, code string) (*entity.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials WHERE code = $1`
	return r.scanOne(ctx, query, code)
}

// GetByCodeForUpdate obtiene el material y bloquea la fila (SELECT FOR UPDATE).
// (nil, nil) si no existe; bloquear nada no es un error.
func (r *MaterialRepo) GetByCodeForUpdate(ctx context.Context, code string) (*entity.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials WHERE code = $1
		FOR UPDATE`
	return r.scanOne(ctx, query, code)
}

func (r *MaterialRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Material, error) {
	var m entity.Material
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&m.Code, &m.Quantity, &m.Rack, &m.Bin, &m.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// Upsert inserta o actualiza el material por código.
func (r *MaterialRepo) Upsert(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (code, quantity, rack, bin, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code)
		DO UPDATE SET quantity = EXCLUDED.quantity, rack = EXCLUDED.rack,
		              bin = EXCLUDED.bin, last_updated = EXCLUDED.last_updated`
	_, err := r.q.Exec(ctx, query, m.Code, m.Quantity, m.Rack, m.Bin, m.LastUpdated)
	if err != nil {
		return fmt.Errorf("upsert material: %w", err)
	}
	return nil
}

// Delete elimina un material por código. Logs y transacciones no se tocan.
func (r *MaterialRepo) Delete(ctx context.Context, code string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM materials WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

// List devuelve materiales según el término parseado, del actualizado más
// recientemente al más antiguo.
func (r *MaterialRepo) List(ctx context.Context, term search.Term) ([]*entity.Material, error) {
	base := `SELECT ` + materialColumns + ` FROM materials `
	order := ` ORDER BY last_updated DESC`

	var (
		query string
		args  []any
	)
	switch {
	case term.Empty:
		query = base + order
	case term.Kind == search.ExactRackBin:
		query = base + `WHERE LOWER(rack) = LOWER($1) AND LOWER(bin) = LOWER($2)` + order
		args = []any{term.Rack, term.Bin}
	case term.Kind == search.RackPrefix:
		query = base + `WHERE rack ILIKE $1 || '%'` + order
		args = []any{term.Rack}
	default: // FreeText: substring sobre código, rack, bin o "rack-bin"
		query = base + `
			WHERE code ILIKE '%' || $1 || '%'
			   OR rack ILIKE '%' || $1 || '%'
			   OR bin  ILIKE '%' || $1 || '%'
			   OR (rack || '-' || bin) ILIKE '%' || $1 || '%'` + order
		args = []any{term.Text}
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.Code, &m.Quantity, &m.Rack, &m.Bin, &m.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ResetQuantities pone la cantidad de todos los materiales en 0 y actualiza last_updated.
func (r *MaterialRepo) ResetQuantities(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `UPDATE materials SET quantity = 0, last_updated = now()`)
	if err != nil {
		return fmt.Errorf("reset materials: %w", err)
	}
	return nil
}

// Count devuelve el número de materiales registrados.
func (r *MaterialRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM materials`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count materials: %w", err)
	}
	return n, nil
}
