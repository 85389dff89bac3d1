package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// entryIssueService contrato mínimo del motor de movimientos para el handler.
// El uso de interfaz permite stubs en tests sin tocar el caso de uso real.
type entryIssueService interface {
	RecordEntry(ctx context.Context, in inventory.EntryInput) (*inventory.EntryResult, error)
	RecordIssue(ctx context.Context, in inventory.IssueInput) (*entity.Material, error)
}

// ActionHandler maneja las peticiones HTTP de entradas y salidas (protegido).
type ActionHandler struct {
	svc entryIssueService
}

// NewActionHandler construye el handler.
func NewActionHandler(svc entryIssueService) *ActionHandler {
	return &ActionHandler{svc: svc}
}

// Entry godoc
// @Summary      Registrar entrada de material
// @Tags         actions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntryRequest  true  "materialCode, quantity, rack, bin, enteredBy"
// @Success      200   {object}  dto.MaterialResponse  "material existente actualizado"
// @Success      201   {object}  dto.MaterialResponse  "material creado"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/actions/entry [post]
func (h *ActionHandler) Entry(c *fiber.Ctx) error {
	var in dto.EntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationError(err))
	}
	result, err := h.svc.RecordEntry(c.Context(), inventory.EntryInput{
		MaterialCode: in.MaterialCode,
		Quantity:     in.Quantity,
		Rack:         in.Rack,
		Bin:          in.Bin,
		EnteredBy:    in.EnteredBy,
		UserID:       GetUserID(c),
	})
	if err != nil {
		return mapActionError(c, err)
	}
	status := fiber.StatusOK
	if result.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.NewMaterialResponse(result.Material))
}

// Issue godoc
// @Summary      Registrar salida de material
// @Tags         actions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueRequest  true  "materialCode, quantity, rack, bin, issuedBy"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse  "cantidad insuficiente o ubicación no coincide"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/actions/issue [post]
func (h *ActionHandler) Issue(c *fiber.Ctx) error {
	var in dto.IssueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationError(err))
	}
	material, err := h.svc.RecordIssue(c.Context(), inventory.IssueInput{
		MaterialCode: in.MaterialCode,
		Quantity:     in.Quantity,
		Rack:         in.Rack,
		Bin:          in.Bin,
		IssuedBy:     in.IssuedBy,
		UserID:       GetUserID(c),
	})
	if err != nil {
		return mapActionError(c, err)
	}
	return c.JSON(dto.NewMaterialResponse(material))
}

// mapActionError traduce errores de dominio del motor a respuestas HTTP.
func mapActionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_QUANTITY", Message: "cantidad insuficiente en inventario"})
	case errors.Is(err, domain.ErrLocationMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "LOCATION_MISMATCH", Message: "la ubicación no coincide con la registrada para el material"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
