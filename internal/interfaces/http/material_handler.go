package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// materialService contrato mínimo de materiales para el handler.
type materialService interface {
	List(ctx context.Context, rawTerm string) ([]*entity.Material, error)
	Get(ctx context.Context, code string) (*entity.Material, error)
	Delete(ctx context.Context, code string) error
	Reset(ctx context.Context) error
}

// MaterialHandler maneja las peticiones HTTP de materiales (protegido).
type MaterialHandler struct {
	svc materialService
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(svc materialService) *MaterialHandler {
	return &MaterialHandler{svc: svc}
}

// List godoc
// @Summary      Listar materiales
// @Description  Sin search devuelve todo. "rack:A1-bin:01" filtra por ubicación exacta,
// @Description  "rack:A1" por prefijo de rack, cualquier otro texto busca por substring.
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "término de búsqueda"
// @Success      200  {array}   dto.MaterialResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.List(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewMaterialListResponse(list))
}

// Get godoc
// @Summary      Detalle de un material
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "código del material"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{code} [get]
func (h *MaterialHandler) Get(c *fiber.Ctx) error {
	material, err := h.svc.Get(c.Context(), c.Params("code"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if material == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
	}
	return c.JSON(dto.NewMaterialResponse(material))
}

// Delete godoc
// @Summary      Eliminar un material
// @Description  Solo borra la fila del material; sus logs y transacciones quedan como histórico.
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "código del material"
// @Success      200  {object}  map[string]string
// @Router       /api/materials/{code} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("code")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "material eliminado"})
}

// Reset godoc
// @Summary      Reiniciar inventario
// @Description  Pone la cantidad de todos los materiales en 0. No borra materiales ni logs.
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/materials/reset [post]
func (h *MaterialHandler) Reset(c *fiber.Ctx) error {
	if err := h.svc.Reset(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "inventario reiniciado"})
}
