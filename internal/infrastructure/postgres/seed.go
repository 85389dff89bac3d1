package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// SeedDemoMaterials siembra materiales de demostración una sola vez: si la tabla
// ya tiene filas no hace nada. Pensado para entornos de desarrollo (SEED_DEMO=true).
// No genera logs ni transacciones: es estado inicial, no movimiento.
func SeedDemoMaterials(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	repo := NewMaterialRepository(pool)
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: contar materiales: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now()
	demo := []entity.Material{
		{Code: "TRIM-001", Quantity: 100, Rack: "A1", Bin: "01", LastUpdated: now},
		{Code: "TRIM-002", Quantity: 250, Rack: "A1", Bin: "02", LastUpdated: now},
		{Code: "BOLT-010", Quantity: 500, Rack: "B2", Bin: "03", LastUpdated: now},
		{Code: "WASH-020", Quantity: 75, Rack: "C3", Bin: "01", LastUpdated: now},
	}
	for i := range demo {
		if err := repo.Upsert(ctx, &demo[i]); err != nil {
			return i, fmt.Errorf("seed: insertar %s: %w", demo[i].Code, err)
		}
	}
	return len(demo), nil
}
