package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oleo-stock/internal/application/dto"
	"github.com/tu-usuario/oleo-stock/internal/application/stock"
	"github.com/tu-usuario/oleo-stock/internal/domain"
)

// StockHandler maneja la grilla de stock y sus mutaciones (protegido).
type StockHandler struct {
	uc       *stock.UseCase
	reportUC *stock.ReportUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase, reportUC *stock.ReportUseCase) *StockHandler {
	return &StockHandler{uc: uc, reportUC: reportUC}
}

// Grid godoc
// @Summary      Grilla de stock con totales
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        X-Team-ID  header  string  true   "Equipo activo"
// @Param        year       query   int     false  "Filtrar por año"
// @Param        search     query   string  false  "Búsqueda libre (año, lote o formato)"
// @Param        warehouse  query   string  false  "Filtrar por bodega"
// @Param        lot        query   string  false  "Filtrar por lote"
// @Param        format     query   string  false  "Filtrar por formato"
// @Success      200  {object}  dto.GridResponse
// @Router       /api/stock/grid [get]
func (h *StockHandler) Grid(c *fiber.Ctx) error {
	filters := stock.GridFilters{
		Year:        c.QueryInt("year", 0),
		Search:      c.Query("search"),
		WarehouseID: c.Query("warehouse"),
		Lot:         c.Query("lot"),
		Format:      c.Query("format"),
	}
	out, err := h.uc.Grid(c.Context(), GetTeamID(c), filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetCell godoc
// @Summary      Fijar cantidad de una celda
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        X-Team-ID  header  string  true  "Equipo activo"
// @Param        body       body    dto.SetCellRequest  true  "Coordenada y cantidad"
// @Success      200  {object}  dto.CellResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/cells [put]
func (h *StockHandler) SetCell(c *fiber.Ctx) error {
	var in dto.SetCellRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetCell(c.Context(), GetTeamID(c), in)
	if err != nil {
		return cellError(c, err)
	}
	return c.JSON(out)
}

// AdjustCell godoc
// @Summary      Sumar un delta a una celda
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        X-Team-ID  header  string  true  "Equipo activo"
// @Param        body       body    dto.AdjustCellRequest  true  "Coordenada y delta"
// @Success      200  {object}  dto.CellResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/cells/adjust [post]
func (h *StockHandler) AdjustCell(c *fiber.Ctx) error {
	var in dto.AdjustCellRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AdjustCell(c.Context(), GetTeamID(c), in)
	if err != nil {
		return cellError(c, err)
	}
	return c.JSON(out)
}

// cellError mapea los errores de mutación de celda a HTTP.
func cellError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "coordenada inválida (año 2000-2100, lote A/B/C, formato 500ml/250ml/5L)"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega no encontrada o inactiva"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Rehydrate godoc
// @Summary      Recargar el snapshot del equipo desde el almacén
// @Tags         stock
// @Security     Bearer
// @Param        X-Team-ID  header  string  true  "Equipo activo"
// @Success      204  "Sin contenido"
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock/rehydrate [post]
func (h *StockHandler) Rehydrate(c *fiber.Ctx) error {
	if err := h.uc.Rehydrate(c.Context(), GetTeamID(c)); err != nil {
		// El snapshot previo queda intacto; el cliente conserva su última vista buena.
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "REHYDRATE_FAILED", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddYear godoc
// @Summary      Registrar un año en el selector de la grilla
// @Tags         stock
// @Security     Bearer
// @Param        X-Team-ID  header  string  true  "Equipo activo"
// @Param        year       path    int     true  "Año (2000-2100)"
// @Success      204  "Sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/years/{year} [post]
func (h *StockHandler) AddYear(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "año inválido"})
	}
	if err := h.uc.AddYear(c.Context(), GetTeamID(c), year); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "año fuera de rango (2000-2100)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Report godoc
// @Summary      Reporte PDF de la grilla
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Param        X-Team-ID  header  string  true   "Equipo activo"
// @Param        year       query   int     false  "Filtrar por año"
// @Success      200  {file}  binary
// @Router       /api/stock/report [get]
func (h *StockHandler) Report(c *fiber.Ctx) error {
	filename, pdfBytes, err := h.reportUC.Generate(c.Context(), GetTeamID(c), c.QueryInt("year", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "REPORT_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
