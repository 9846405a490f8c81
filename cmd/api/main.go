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

	"github.com/rvaldez/repairshop-pro/internal/application/auth"
	appOrders "github.com/rvaldez/repairshop-pro/internal/application/orders"
	"github.com/rvaldez/repairshop-pro/internal/application/usecase"
	infrapdf "github.com/rvaldez/repairshop-pro/internal/infrastructure/pdf"
	"github.com/rvaldez/repairshop-pro/internal/infrastructure/postgres"
	httpRouter "github.com/rvaldez/repairshop-pro/internal/interfaces/http"
	"github.com/rvaldez/repairshop-pro/pkg/config"
	"github.com/rvaldez/repairshop-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	partRepo := postgres.NewPartRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	lineRepo := postgres.NewOrderLineRepository(pool)
	historyRepo := postgres.NewOrderHistoryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	customerUC := usecase.NewCustomerUseCase(customerRepo)
	partUC := usecase.NewPartUseCase(partRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	orderUC := appOrders.NewUseCase(txRunner, orderRepo, lineRepo, historyRepo, customerRepo)

	sheetGenerator := infrapdf.NewMarotoSheetGenerator()
	sheetUC := appOrders.NewSheetUseCase(orderRepo, lineRepo, partRepo, sheetGenerator, cfg.Shop.Name)

	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	// Bootstrap admin account; skipped when ADMIN_PASSWORD is unset.
	created, err := userUC.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap admin account")
	}
	if created {
		log.Info().Str("username", cfg.Admin.Username).Msg("admin account created")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RepairShop Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		PartUC:     partUC,
		UserUC:     userUC,
		OrderUC:    orderUC,
		SheetUC:    sheetUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
