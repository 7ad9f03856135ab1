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

	"github.com/Khosrovf/Khosro8/internal/application/auth"
	"github.com/Khosrovf/Khosro8/internal/application/ledger"
	"github.com/Khosrovf/Khosro8/internal/application/report"
	infraexcel "github.com/Khosrovf/Khosro8/internal/infrastructure/excel"
	infrapdf "github.com/Khosrovf/Khosro8/internal/infrastructure/pdf"
	"github.com/Khosrovf/Khosro8/internal/infrastructure/postgres"
	httpRouter "github.com/Khosrovf/Khosro8/internal/interfaces/http"
	"github.com/Khosrovf/Khosro8/pkg/config"
	"github.com/Khosrovf/Khosro8/pkg/logger"
)

func main() {
	// Primer arranque: deja un config.env editable con los valores por defecto.
	if err := config.EnsureDefaultFile(""); err != nil {
		panic("crear configuración por defecto: " + err.Error())
	}
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

	// El esquema se aplica completo antes de aceptar tráfico; si falla, el
	// proceso no arranca.
	if err := postgres.ApplyMigrations(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}

	itemRepo := postgres.NewItemRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cfg.DB.AcquireTimeout)

	itemUC := ledger.NewItemUseCase(itemRepo)
	transactionUC := ledger.NewTransactionUseCase(txRunner, txRepo)
	reportUC := report.NewReportUseCase(itemRepo, txRepo, infraexcel.NewExporter(), infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Anbar Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:        itemUC,
		TransactionUC: transactionUC,
		ReportUC:      reportUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
