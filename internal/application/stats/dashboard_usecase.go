// Package stats contiene el caso de uso del dashboard de inventario.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const dashboardRecentLogs = 5 // número de logs en el widget del dashboard

// DashboardUseCase calcula el resumen del día bajo demanda.
//
// Sin caché ni estado materializado: cada llamada consulta el store, de modo
// que el resumen refleja siempre la última mutación.
type DashboardUseCase struct {
	materialRepo repository.MaterialRepository
	logRepo      repository.MovementLogRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(materialRepo repository.MaterialRepository, logRepo repository.MovementLogRepository) *DashboardUseCase {
	return &DashboardUseCase{materialRepo: materialRepo, logRepo: logRepo}
}

// GetStats construye el DashboardStatsDTO.
//
// Cuatro consultas en paralelo:
//  1. Count de materiales            → TotalMaterials
//  2. Count de entradas desde las 00:00 → EnteredToday
//  3. Count de salidas desde las 00:00  → IssuedToday
//  4. Logs recientes (5)             → RecentLogs
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	type countResult struct {
		n   int64
		err error
	}
	type logsResult struct {
		logs []*entity.MovementLog
		err  error
	}

	totalCh := make(chan countResult, 1)
	enteredCh := make(chan countResult, 1)
	issuedCh := make(chan countResult, 1)
	recentCh := make(chan logsResult, 1)

	go func() {
		n, err := uc.materialRepo.Count(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.logRepo.CountByActionSince(ctx, entity.ActionEntry, dayStart)
		enteredCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.logRepo.CountByActionSince(ctx, entity.ActionIssue, dayStart)
		issuedCh <- countResult{n, err}
	}()
	go func() {
		logs, err := uc.logRepo.ListRecent(ctx, dashboardRecentLogs)
		recentCh <- logsResult{logs, err}
	}()

	total := <-totalCh
	entered := <-enteredCh
	issued := <-issuedCh
	recent := <-recentCh

	if total.err != nil {
		return nil, fmt.Errorf("dashboard: total de materiales: %w", total.err)
	}
	if entered.err != nil {
		return nil, fmt.Errorf("dashboard: entradas de hoy: %w", entered.err)
	}
	if issued.err != nil {
		return nil, fmt.Errorf("dashboard: salidas de hoy: %w", issued.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: logs recientes: %w", recent.err)
	}

	return &dto.DashboardStatsDTO{
		TotalMaterials: total.n,
		EnteredToday:   entered.n,
		IssuedToday:    issued.n,
		RecentLogs:     dto.NewLogListResponse(recent.logs),
	}, nil
}
