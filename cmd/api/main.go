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

	"github.com/jhoicas/bi-inventario/docs"
	appanalytics "github.com/jhoicas/bi-inventario/internal/application/analytics"
	"github.com/jhoicas/bi-inventario/internal/application/dto"
	"github.com/jhoicas/bi-inventario/internal/domain/inventory"
	infracharts "github.com/jhoicas/bi-inventario/internal/infrastructure/charts"
	"github.com/jhoicas/bi-inventario/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/bi-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/bi-inventario/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/bi-inventario/internal/interfaces/http"
	"github.com/jhoicas/bi-inventario/pkg/config"
	"github.com/jhoicas/bi-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("division_offset", cfg.Metrics.DivisionOffset.String()).
		Msg("iniciando aplicación")
	if cfg.Session.Ephemeral {
		log.Warn().Msg("SESSION_SECRET vacío: se usa un secreto aleatorio, las sesiones no sobreviven a un reinicio")
	}

	sessionRepo := memory.NewSessionRepository(cfg.Session.TTL())
	transformer := inventory.NewTransformer(inventory.DivisionPolicy{Offset: cfg.Metrics.DivisionOffset})
	dashboardUC := appanalytics.NewDashboardUseCase(
		spreadsheet.NewDecoder(),
		transformer,
		infracharts.NewRenderer(),
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		sessionRepo,
		log.Named("dashboard"),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit(),
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Title = cfg.App.Name + " API"
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerFile,
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok"})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		Title:       "Dashboard de Inventario",
		Session: httpRouter.SessionConfig{
			Secret:     cfg.Session.Secret,
			Issuer:     cfg.Session.Issuer,
			TTLMinutes: cfg.Session.TTLMinutes,
			Secure:     cfg.App.Env == "production",
		},
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

	log.Info().Int("sesiones", sessionRepo.Len()).Msg("aplicación detenida")
}
