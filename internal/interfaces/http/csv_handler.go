package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oleo-stock/internal/application/dto"
	"github.com/tu-usuario/oleo-stock/internal/application/stock"
	"github.com/tu-usuario/oleo-stock/internal/domain"
)

// CSVHandler maneja export e import del snapshot plano como CSV (protegido).
type CSVHandler struct {
	uc *stock.CSVUseCase
}

// NewCSVHandler construye el handler.
func NewCSVHandler(uc *stock.CSVUseCase) *CSVHandler {
	return &CSVHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar el snapshot como CSV
// @Tags         stock
// @Security     Bearer
// @Produce      text/csv
// @Param        X-Team-ID  header  string  true  "Equipo activo"
// @Success      200  {string}  string  "CSV"
// @Router       /api/stock/export [get]
func (h *CSVHandler) Export(c *fiber.Ctx) error {
	filename, text, err := h.uc.Export(c.Context(), GetTeamID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, stock.CSVMimeType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(text)
}

// Import godoc
// @Summary      Importar celdas desde CSV (éxito parcial por fila)
// @Tags         stock
// @Security     Bearer
// @Accept       text/csv
// @Produce      json
// @Param        X-Team-ID  header  string  true  "Equipo activo"
// @Param        file       formData  file  false  "Archivo CSV (alternativa: cuerpo crudo)"
// @Success      200  {object}  dto.ImportResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/import [post]
func (h *CSVHandler) Import(c *fiber.Ctx) error {
	text, err := importBody(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el CSV"})
	}
	if text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BODY", Message: "CSV vacío"})
	}
	out, err := h.uc.Import(c.Context(), GetTeamID(c), text)
	if err != nil {
		if errors.Is(err, domain.ErrCSVHeader) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CSV_HEADER", Message: "cabecera incompleta: se requieren year, lot, format, warehouse y qty"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "IMPORT_FAILED", Message: err.Error()})
	}
	return c.JSON(out)
}

// importBody acepta el CSV como multipart (campo "file") o como cuerpo crudo.
func importBody(c *fiber.Ctx) (string, error) {
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return string(c.Body()), nil
}
