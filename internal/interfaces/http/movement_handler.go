package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oleo-stock/internal/application/dto"
	"github.com/tu-usuario/oleo-stock/internal/application/movement"
	"github.com/tu-usuario/oleo-stock/internal/domain"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/repository"
)

// MovementHandler maneja el log append-only de movimientos (protegido).
type MovementHandler struct {
	uc *movement.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movement.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar ingreso o egreso
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        X-Team-ID  header  string  true  "Equipo activo"
// @Param        body       body    dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), GetTeamID(c), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movimiento inválido: tipo ingress/egress, piezas > 0, coordenada válida"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega no encontrada o inactiva"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos con filtros exactos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        X-Team-ID  header  string  true   "Equipo activo"
// @Param        year       query   int     false  "Filtrar por año"
// @Param        lot        query   string  false  "Filtrar por lote"
// @Param        format     query   string  false  "Filtrar por formato"
// @Param        warehouse  query   string  false  "Filtrar por bodega"
// @Param        kind       query   string  false  "ingress | egress"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetTeamID(c), movementFilter(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen por formato derivado del log (piezas y litros)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        X-Team-ID  header  string  true   "Equipo activo"
// @Param        year       query   int     false  "Filtrar por año"
// @Param        lot        query   string  false  "Filtrar por lote"
// @Param        format     query   string  false  "Filtrar por formato"
// @Param        warehouse  query   string  false  "Filtrar por bodega"
// @Success      200  {object}  dto.MovementSummaryResponse
// @Router       /api/movements/summary [get]
func (h *MovementHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), GetTeamID(c), movementFilter(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func movementFilter(c *fiber.Ctx) repository.MovementFilter {
	return repository.MovementFilter{
		Year:        c.QueryInt("year", 0),
		Lot:         entity.Lot(c.Query("lot")),
		Format:      entity.Format(c.Query("format")),
		WarehouseID: c.Query("warehouse"),
		Kind:        c.Query("kind"),
	}
}
