package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oleo-stock/internal/application/auth"
	"github.com/tu-usuario/oleo-stock/internal/application/movement"
	"github.com/tu-usuario/oleo-stock/internal/application/stock"
	"github.com/tu-usuario/oleo-stock/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	TeamUC      *usecase.TeamUseCase
	WarehouseUC *usecase.WarehouseUseCase
	StockUC     *stock.UseCase
	CSVUC       *stock.CSVUseCase
	ReportUC    *stock.ReportUseCase
	MovementUC  *movement.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas con usuario autenticado pero sin equipo activo: descubrimiento de equipos.
	authed := api.Group("/", AuthMiddleware(deps.JWTSecret))
	teams := authed.Group("/teams")
	teamHandler := NewTeamHandler(deps.TeamUC)
	teams.Post("/", teamHandler.Create)
	teams.Get("/", teamHandler.List)

	// Rutas atadas al equipo activo (cabecera X-Team-ID validada contra membresías).
	scoped := authed.Group("/", TeamMiddleware(deps.TeamUC))

	warehouses := scoped.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Put("/:id", warehouseHandler.Rename)
	warehouses.Delete("/:id", warehouseHandler.Deactivate)

	stockGroup := scoped.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.ReportUC)
	csvHandler := NewCSVHandler(deps.CSVUC)
	stockGroup.Get("/grid", stockHandler.Grid)
	stockGroup.Put("/cells", stockHandler.SetCell)
	stockGroup.Post("/cells/adjust", stockHandler.AdjustCell)
	stockGroup.Post("/rehydrate", stockHandler.Rehydrate)
	stockGroup.Post("/years/:year", stockHandler.AddYear)
	stockGroup.Get("/export", csvHandler.Export)
	stockGroup.Post("/import", csvHandler.Import)
	stockGroup.Get("/report", stockHandler.Report)

	movements := scoped.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	movements.Get("/summary", movementHandler.Summary)
}
