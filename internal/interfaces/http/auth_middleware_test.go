package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/oleo-stock/internal/application/dto"
	"github.com/tu-usuario/oleo-stock/internal/domain"
	apphttp "github.com/tu-usuario/oleo-stock/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/oleo-stock/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testTeamID    = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "oleo-stock-test"
	testExpMin    = 60
)

// fakeMemberships responde la verificación de membresía sin base de datos.
type fakeMemberships struct {
	memberships map[string]string // teamID:userID → role
	err         error
}

func (f *fakeMemberships) Membership(_ context.Context, teamID, userID string) (*dto.MembershipResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	role, ok := f.memberships[teamID+":"+userID]
	if !ok {
		return nil, domain.ErrNotMember
	}
	return &dto.MembershipResponse{TeamID: teamID, Role: role}, nil
}

// buildTestApp arma una app Fiber mínima con AuthMiddleware + TeamMiddleware y
// un handler dummy que expone los locals cargados.
func buildTestApp(teams *fakeMemberships) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.TeamMiddleware(teams),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id": apphttp.GetUserID(c),
				"team_id": apphttp.GetTeamID(c),
				"role":    apphttp.GetRole(c),
			})
		},
	)
	return app
}

func testToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza GET /protected con los headers dados y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader, teamHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if teamHeader != "" {
		req.Header.Set(apphttp.HeaderTeamID, teamHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TeamMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: miembro del equipo → pasa y los locals quedan cargados.
func TestTeamMiddleware_MiembroAccede(t *testing.T) {
	teams := &fakeMemberships{memberships: map[string]string{
		testTeamID + ":" + testUserID: "editor",
	}}
	app := buildTestApp(teams)

	resp := doRequest(t, app, testToken(t), testTeamID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testTeamID, body["team_id"])
	assert.Equal(t, "editor", body["role"])
}

// Caso 2: usuario autenticado pero NO miembro del equipo → 403 NOT_MEMBER.
func TestTeamMiddleware_NoMiembro_Retorna403(t *testing.T) {
	teams := &fakeMemberships{memberships: map[string]string{}}
	app := buildTestApp(teams)

	resp := doRequest(t, app, testToken(t), testTeamID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"quien no pertenece al equipo no debe acceder a sus datos")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_MEMBER")
}

// Caso 3: sin cabecera X-Team-ID → 400 MISSING_TEAM.
func TestTeamMiddleware_SinCabeceraEquipo_Retorna400(t *testing.T) {
	teams := &fakeMemberships{memberships: map[string]string{}}
	app := buildTestApp(teams)

	resp := doRequest(t, app, testToken(t), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TEAM")
}

// Caso 4: la verificación de membresía falla por infraestructura → 503, no 403.
func TestTeamMiddleware_FalloDeVerificacion_Retorna503(t *testing.T) {
	teams := &fakeMemberships{err: context.DeadlineExceeded}
	app := buildTestApp(teams)

	resp := doRequest(t, app, testToken(t), testTeamID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode,
		"un fallo transitorio no debe confundirse con falta de permiso")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeMemberships{})
	resp := doRequest(t, app, "", testTeamID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeMemberships{})
	resp := doRequest(t, app, "Bearer token.invalido.aqui", testTeamID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoSinBearer_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeMemberships{})
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, tok, testTeamID) // sin el prefijo "Bearer "
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
