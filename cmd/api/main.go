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

	"github.com/seventechnologies/hireat-api/internal/application/auth"
	"github.com/seventechnologies/hireat-api/internal/application/usecase"
	"github.com/seventechnologies/hireat-api/internal/domain/authz"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/fixtures"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/memory"
	infrapdf "github.com/seventechnologies/hireat-api/internal/infrastructure/pdf"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/postgres"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/store"
	httpRouter "github.com/seventechnologies/hireat-api/internal/interfaces/http"
	"github.com/seventechnologies/hireat-api/pkg/config"
	"github.com/seventechnologies/hireat-api/pkg/logger"
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
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacén clave-valor: memoria por defecto, PostgreSQL si se configura.
	var kv repository.KeyValueStore
	switch cfg.App.Storage {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pgkv, err := postgres.NewKV(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("preparar tabla del almacén")
		}
		kv = pgkv
	default:
		kv = memory.NewKV()
	}

	masterEmail := cfg.Admin.MasterEmail()
	eval := authz.NewEvaluator(masterEmail)

	userStore := store.NewUserStore(kv, masterEmail)
	userJobsStore := store.NewUserJobsStore(kv)
	iamStore := store.NewIAMStore(kv)
	searchStore := store.NewSearchStore(kv)

	jobCatalog := fixtures.NewJobCatalog()
	candidateCatalog := fixtures.NewCandidateCatalog()
	companyCatalog := fixtures.NewCompanyCatalog()

	authUC := auth.NewAuthUseCase(userStore, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, masterEmail)

	// La identidad maestra existe siempre: se siembra o repara al arrancar.
	if err := authUC.EnsureMasterAdmin(ctx, cfg.Admin.MasterPassword); err != nil {
		log.Fatal().Err(err).Msg("sembrar identidad maestra")
	}

	cvGenerator := infrapdf.NewMarotoCVGenerator()
	profileUC := usecase.NewProfileUseCase(userStore, searchStore, cvGenerator)
	jobUC := usecase.NewJobUseCase(jobCatalog, userJobsStore, searchStore)
	candidateUC := usecase.NewCandidateUseCase(candidateCatalog)
	companyUC := usecase.NewCompanyUseCase(companyCatalog)
	userUC := usecase.NewUserUseCase(userStore, eval, cfg.Admin.Domain)
	iamUC := usecase.NewIAMUseCase(iamStore, iamStore)

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
		Title:    "HireAt API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProfileUC:   profileUC,
		JobUC:       jobUC,
		CandidateUC: candidateUC,
		CompanyUC:   companyUC,
		UserUC:      userUC,
		IAMUC:       iamUC,
		Users:       userStore,
		Evaluator:   eval,
		JWTSecret:   cfg.JWT.Secret,
		AdminDomain: cfg.Admin.Domain,
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
