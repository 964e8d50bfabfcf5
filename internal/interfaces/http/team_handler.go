package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oleo-stock/internal/application/dto"
	"github.com/tu-usuario/oleo-stock/internal/application/usecase"
	"github.com/tu-usuario/oleo-stock/internal/domain"
)

// TeamHandler maneja equipos y membresías (protegido por auth, sin equipo
// activo: es la ruta por la que el cliente descubre sus equipos).
type TeamHandler struct {
	uc *usecase.TeamUseCase
}

// NewTeamHandler construye el handler.
func NewTeamHandler(uc *usecase.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// Create godoc
// @Summary      Crear equipo
// @Tags         teams
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTeamRequest  true  "Nombre del equipo"
// @Success      201   {object}  dto.MembershipResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/teams [post]
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	var in dto.CreateTeamRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar equipos del usuario con su rol
// @Tags         teams
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MembershipResponse
// @Router       /api/teams [get]
func (h *TeamHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	out, err := h.uc.Memberships(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
