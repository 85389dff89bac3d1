package repository

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// MovementLogRepository puerto de persistencia para el log de auditoría.
// Los logs solo se crean o se borran en bloque; nunca se actualizan.
type MovementLogRepository interface {
	Create(ctx context.Context, log *entity.MovementLog) error
	// ListRecent devuelve los `limit` logs más recientes, del más nuevo al más viejo.
	ListRecent(ctx context.Context, limit int) ([]*entity.MovementLog, error)
	// CountByActionSince cuenta logs de una acción creados desde `since`.
	CountByActionSince(ctx context.Context, action string, since time.Time) (int64, error)
	// Clear elimina todos los logs. Irreversible.
	Clear(ctx context.Context) error
}
