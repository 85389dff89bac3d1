package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// logService contrato mínimo del rastro de auditoría para el handler.
type logService interface {
	List(ctx context.Context, limit int) ([]*entity.MovementLog, error)
	Clear(ctx context.Context) error
	ListBinTransactions(ctx context.Context, materialCode string) ([]*entity.BinTransaction, error)
}

// LogHandler maneja las peticiones HTTP de logs y transacciones (protegido).
type LogHandler struct {
	svc logService
}

// NewLogHandler construye el handler.
func NewLogHandler(svc logService) *LogHandler {
	return &LogHandler{svc: svc}
}

// List godoc
// @Summary      Logs recientes
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de logs (defecto 50, tope 200)"
// @Success      200  {array}  dto.LogResponse
// @Router       /api/logs [get]
func (h *LogHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.List(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewLogListResponse(list))
}

// Clear godoc
// @Summary      Borrar todos los logs
// @Description  Irreversible. Las transacciones por ubicación no se tocan.
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/logs [delete]
func (h *LogHandler) Clear(c *fiber.Ctx) error {
	if err := h.svc.Clear(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "logs eliminados"})
}

// BinTransactions godoc
// @Summary      Transacciones por ubicación de un material
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "código del material"
// @Success      200  {array}  dto.BinTransactionResponse
// @Router       /api/materials/{code}/transactions [get]
func (h *LogHandler) BinTransactions(c *fiber.Ctx) error {
	list, err := h.svc.ListBinTransactions(c.Context(), c.Params("code"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewBinTransactionListResponse(list))
}
