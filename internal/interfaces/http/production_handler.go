package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/apetitox-inventario/internal/application/dto"
	"github.com/jhoicas/apetitox-inventario/internal/application/inventory"
	"github.com/jhoicas/apetitox-inventario/pkg/logger"
)

// ProductionHandler maneja el registro de lotes de producción.
type ProductionHandler struct {
	registrar BatchRegistrar
	log       *logger.Logger
}

// NewProductionHandler construye el handler.
func NewProductionHandler(registrar BatchRegistrar, log *logger.Logger) *ProductionHandler {
	return &ProductionHandler{registrar: registrar, log: log}
}

// Lote godoc
// @Summary      Registrar lote de producción
// @Description  Registra el lote y consume los materiales del BOM (un movimiento OUT por material) en una sola transacción.
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoteRequest  true  "producto_sku, cantidad_producida, merma?, lote, user_id?"
// @Success      200   {object}  dto.LoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /production/lote [post]
func (h *ProductionHandler) Lote(c *fiber.Ctx) error {
	var in dto.LoteRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	loteID, err := h.registrar.Register(c.UserContext(), inventory.BatchInput{
		ProductSKU:       in.ProductoSKU,
		QuantityProduced: in.CantidadProducida,
		Merma:            in.Merma,
		Lot:              in.Lote,
		UserID:           in.UserID,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.LoteResponse{OK: true, LoteID: loteID})
}
