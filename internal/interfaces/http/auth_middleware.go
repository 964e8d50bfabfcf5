package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oleo-stock/internal/application/dto"
	"github.com/tu-usuario/oleo-stock/internal/domain"
	"github.com/tu-usuario/oleo-stock/pkg/jwt"
)

// Locals keys para UserID, TeamID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalTeamID = "team_id"
	LocalRole   = "role"
)

// HeaderTeamID cabecera con el equipo activo de la petición.
const HeaderTeamID = "X-Team-ID"

// AuthMiddleware valida el Bearer Token JWT y extrae el UserID a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// membershipChecker es el contrato mínimo que necesita el middleware de
// equipo. Lo implementa *usecase.TeamUseCase; la interfaz evita el import
// circular.
type membershipChecker interface {
	Membership(ctx context.Context, teamID, userID string) (*dto.MembershipResponse, error)
}

// TeamMiddleware valida que el usuario autenticado pertenezca al equipo de la
// cabecera X-Team-ID y deja team_id y role en c.Locals. El rol es solo
// informativo: acá no se autoriza nada con él (la política vive en el almacén
// externo).
// Debe usarse DESPUÉS de AuthMiddleware.
func TeamMiddleware(teams membershipChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
		}
		teamID := strings.TrimSpace(c.Get(HeaderTeamID))
		if teamID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_TEAM", Message: "cabecera " + HeaderTeamID + " requerida"})
		}
		membership, err := teams.Membership(c.Context(), teamID, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotMember) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NOT_MEMBER", Message: "el usuario no pertenece al equipo"})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "MEMBERSHIP_CHECK_FAILED", Message: "no se pudo verificar la membresía, intente más tarde"})
		}
		c.Locals(LocalTeamID, teamID)
		c.Locals(LocalRole, membership.Role)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetTeamID devuelve el TeamID del contexto (después del middleware de equipo).
func GetTeamID(c *fiber.Ctx) string {
	v := c.Locals(LocalTeamID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del usuario en el equipo activo (solo display).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
