package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/oleo-stock/internal/application/auth"
	"github.com/tu-usuario/oleo-stock/internal/application/movement"
	"github.com/tu-usuario/oleo-stock/internal/application/stock"
	"github.com/tu-usuario/oleo-stock/internal/application/usecase"
	infrapdf "github.com/tu-usuario/oleo-stock/internal/infrastructure/pdf"
	"github.com/tu-usuario/oleo-stock/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/oleo-stock/internal/interfaces/http"
	"github.com/tu-usuario/oleo-stock/pkg/config"
	"github.com/tu-usuario/oleo-stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	teamRepo := postgres.NewTeamRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	cellRepo := postgres.NewStockCellRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	teamUC := usecase.NewTeamUseCase(teamRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	stockUC := stock.NewUseCase(cellRepo, warehouseRepo, log)
	csvUC := stock.NewCSVUseCase(stockUC, txRunner, log)
	reportUC := stock.NewReportUseCase(stockUC, warehouseRepo, teamRepo, infrapdf.NewMarotoGridReport())
	movementUC := movement.NewUseCase(movementRepo, warehouseRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Oleo Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		TeamUC:      teamUC,
		WarehouseUC: warehouseUC,
		StockUC:     stockUC,
		CSVUC:       csvUC,
		ReportUC:    reportUC,
		MovementUC:  movementUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
