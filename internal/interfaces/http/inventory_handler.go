package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/inventory"
)

// InventoryHandler ajustes y consultas del ledger de inventario.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Adjust godoc
// @Summary      Ajustar inventario (agrega un delta con signo al ledger)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventoryRequest  true  "instanceId y amount (puede ser negativo)"
// @Success      201   {object}  dto.WriteResponse
// @Failure      400   {object}  dto.WriteResponse
// @Failure      503   {object}  dto.WriteResponse
// @Router       /api/v1/products/AdjustInventory [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.InventoryRequest
	if err := bindBody(c, &in); err != nil {
		return writeFailed(c, "adjust inventory", err)
	}
	if err := h.uc.Adjust(c.Context(), in); err != nil {
		return writeFailed(c, "adjust inventory", err)
	}
	requestLogger(c).Info().Int64("product_id", in.InstanceID).Str("amount", in.Amount.String()).Msg("ajuste de inventario")
	return c.Status(fiber.StatusCreated).JSON(dto.WriteResponse{Success: true})
}

// Count godoc
// @Summary      Cantidad actual (suma de los deltas INV)
// @Tags         inventory
// @Produce      json
// @Param        InstanceId  path  int  true  "InstanceId del producto"
// @Success      200  {object}  dto.InventoryCountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/products/GetInventoryCountForItem/{InstanceId} [get]
func (h *InventoryHandler) Count(c *fiber.Ctx) error {
	id, err := paramID(c, "InstanceId")
	if err == nil {
		var out *dto.InventoryCountResponse
		if out, err = h.uc.Count(c.Context(), id); err == nil {
			return c.JSON(out)
		}
	}
	return readFailed(c, "inventory count", err, func(e *dto.ErrorResponse) any { return e })
}

// Ledger godoc
// @Summary      Deltas INV del producto en orden de inserción
// @Tags         inventory
// @Produce      json
// @Param        InstanceId  path  int  true  "InstanceId del producto"
// @Success      200  {object}  dto.InventoryLedgerResponse
// @Router       /api/v1/products/GetInventoryLedgerForItem/{InstanceId} [get]
func (h *InventoryHandler) Ledger(c *fiber.Ctx) error {
	id, err := paramID(c, "InstanceId")
	if err == nil {
		var out *dto.InventoryLedgerResponse
		if out, err = h.uc.Ledger(c.Context(), id); err == nil {
			return c.JSON(out)
		}
	}
	return readFailed(c, "inventory ledger", err, func(e *dto.ErrorResponse) any { return e })
}
