package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/apetitox-inventario/internal/application/dto"
	"github.com/jhoicas/apetitox-inventario/internal/application/inventory"
	"github.com/jhoicas/apetitox-inventario/pkg/logger"
)

// InventoryHandler maneja ingresos de material y consulta de stock.
type InventoryHandler struct {
	receiver MaterialReceiver
	query    LedgerQuerier
	log      *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(receiver MaterialReceiver, query LedgerQuerier, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{receiver: receiver, query: query, log: log}
}

// Ingreso godoc
// @Summary      Registrar ingreso de material
// @Description  Bloquea el material, registra un movimiento IN (compra) y recalcula stock y costo promedio ponderado. No es idempotente.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body      dto.IngresoRequest  true  "material_sku, cantidad, costo_unit, referencia?, user_id?"
// @Success      200   {object}  dto.IngresoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /inventory/ingreso [post]
func (h *InventoryHandler) Ingreso(c *fiber.Ctx) error {
	var in dto.IngresoRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	movID, err := h.receiver.Receive(c.UserContext(), inventory.ReceiveInput{
		MaterialSKU: in.MaterialSKU,
		Quantity:    in.Cantidad,
		UnitCost:    in.CostoUnit,
		Reference:   in.Referencia,
		UserID:      in.UserID,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.IngresoResponse{OK: true, MovID: movID})
}

// Stock godoc
// @Summary      Consultar stock de un material
// @Tags         inventory
// @Produce      json
// @Param        material_sku  query     string  true  "SKU del material"
// @Success      200           {object}  dto.StockResponse
// @Failure      400           {object}  dto.ErrorResponse
// @Failure      404           {object}  dto.ErrorResponse
// @Router       /inventory/stock [get]
func (h *InventoryHandler) Stock(c *fiber.Ctx) error {
	sku := c.Query("material_sku")
	if sku == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "material_sku requerido"})
	}
	mat, err := h.query.Stock(c.UserContext(), sku)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.StockResponse{
		SKU:         mat.SKU,
		Name:        mat.Name,
		Unidad:      mat.Unit,
		StockActual: mat.StockActual,
		AvgCost:     mat.AvgCost,
	})
}
