package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// statsService contrato mínimo del dashboard para el handler.
type statsService interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

// DashboardHandler maneja el endpoint del dashboard (protegido).
type DashboardHandler struct {
	svc statsService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(svc statsService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetStats devuelve el resumen del día calculado en fresco contra el store.
// GET /api/stats
//
// Respuesta: DashboardStatsDTO (totalMaterials, enteredToday, issuedToday,
// recentLogs[5]). Sin parámetros; las fechas se calculan en el servidor.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	statsDTO, err := h.svc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(statsDTO)
}
