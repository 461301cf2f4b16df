package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tu-usuario/cobranzas-pro/internal/application/auth"
	"github.com/tu-usuario/cobranzas-pro/internal/application/collections"
	"github.com/tu-usuario/cobranzas-pro/internal/application/hierarchy"
	"github.com/tu-usuario/cobranzas-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/cobranzas-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/cobranzas-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/cobranzas-pro/internal/interfaces/http"
	"github.com/tu-usuario/cobranzas-pro/pkg/config"
	"github.com/tu-usuario/cobranzas-pro/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	debtRepo := postgres.NewDebtRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	promiseRepo := postgres.NewPromiseRepository(pool)
	noteRepo := postgres.NewNoteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	hierarchySvc := hierarchy.NewService(userRepo, debtRepo, customerRepo, txRunner, cfg.Hierarchy.MaxDepth)

	authUC := auth.NewUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, hierarchySvc)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, userRepo)

	debtUC := collections.NewDebtUseCase(debtRepo, customerRepo, userRepo)
	importUC := collections.NewImportUseCase(userRepo, customerRepo, debtRepo)
	paymentUC := collections.NewPaymentUseCase(txRunner, paymentRepo)
	followUpUC := collections.NewFollowUpUseCase(debtRepo, promiseRepo, noteRepo)

	// PDF: estado de cuenta del cliente
	statementGen := infrapdf.NewMarotoStatementGenerator()
	statementUC := collections.NewStatementUseCase(companyRepo, customerRepo, debtRepo, paymentRepo, statementGen)

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
		Title:    "Cobranzas Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		CompanyUC:   companyUC,
		CustomerUC:  customerUC,
		HierarchySv: hierarchySvc,
		DebtUC:      debtUC,
		ImportUC:    importUC,
		PaymentUC:   paymentUC,
		FollowUpUC:  followUpUC,
		StatementUC: statementUC,
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
