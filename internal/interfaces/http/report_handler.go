package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/apetitox-inventario/internal/application/dto"
	"github.com/jhoicas/apetitox-inventario/internal/domain/repository"
	"github.com/jhoicas/apetitox-inventario/pkg/logger"
)

// ReportHandler expone el kardex en JSON y PDF.
type ReportHandler struct {
	query LedgerQuerier
	log   *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(query LedgerQuerier, log *logger.Logger) *ReportHandler {
	return &ReportHandler{query: query, log: log}
}

func kardexFilter(c *fiber.Ctx) (repository.KardexFilter, bool) {
	f := repository.KardexFilter{
		MaterialSKU: c.Query("material_sku"),
		Desde:       optionalQuery(c, "desde"),
		Hasta:       optionalQuery(c, "hasta"),
	}
	return f, f.MaterialSKU != ""
}

// Kardex godoc
// @Summary      Kardex de un material
// @Description  Movimientos en orden cronológico ascendente. Un SKU desconocido devuelve lista vacía (no 404).
// @Tags         reports
// @Produce      json
// @Param        material_sku  query     string  true   "SKU del material"
// @Param        desde         query     string  false  "Cota inferior inclusiva de created_at"
// @Param        hasta         query     string  false  "Cota superior inclusiva de created_at"
// @Success      200           {object}  dto.KardexResponse
// @Failure      400           {object}  dto.ErrorResponse
// @Router       /reports/kardex [get]
func (h *ReportHandler) Kardex(c *fiber.Ctx) error {
	filter, ok := kardexFilter(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "material_sku requerido"})
	}
	entries, err := h.query.Kardex(c.UserContext(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	movs := make([]dto.KardexMovimiento, 0, len(entries))
	for _, e := range entries {
		movs = append(movs, dto.KardexMovimiento{
			CreatedAt:  e.CreatedAt,
			Tipo:       e.Type,
			Cantidad:   e.Quantity,
			CostoUnit:  e.UnitCost,
			Origen:     e.Origin,
			Referencia: e.Reference,
		})
	}
	return c.JSON(dto.KardexResponse{Material: filter.MaterialSKU, Movimientos: movs})
}

// KardexPDF godoc
// @Summary      Kardex de un material en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        material_sku  query  string  true   "SKU del material"
// @Param        desde         query  string  false  "Cota inferior inclusiva de created_at"
// @Param        hasta         query  string  false  "Cota superior inclusiva de created_at"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /reports/kardex/pdf [get]
func (h *ReportHandler) KardexPDF(c *fiber.Ctx) error {
	filter, ok := kardexFilter(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "material_sku requerido"})
	}
	doc, err := h.query.KardexPDF(c.UserContext(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="kardex-%s.pdf"`, filter.MaterialSKU))
	return c.Send(doc)
}
