package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/salesify-dashboard/internal/application/auth"
	"github.com/tu-usuario/salesify-dashboard/internal/application/upload"
	"github.com/tu-usuario/salesify-dashboard/internal/application/usecase"
	"github.com/tu-usuario/salesify-dashboard/internal/infrastructure/salesify"
	"github.com/tu-usuario/salesify-dashboard/internal/interfaces/web"
	"github.com/tu-usuario/salesify-dashboard/pkg/config"
	"github.com/tu-usuario/salesify-dashboard/pkg/logger"
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

	if cfg.App.Env == "development" {
		figure.NewFigure("Salesify", "", true).Print()
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando dashboard")

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("SESSION_SECRET es obligatorio")
	}

	apiClient := salesify.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)

	authUC := auth.New(apiClient)
	adminUC := usecase.NewAdminUseCase(apiClient)
	companyUC := usecase.NewCompanyUseCase(apiClient)
	uploadWF := upload.NewWorkflow(apiClient)

	sessions := web.NewSessionManager(cfg.Session)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: web.NewErrorHandler(sessions, log.Module("web")),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	web.Router(app, web.RouterDeps{
		Sessions:  sessions,
		AuthUC:    authUC,
		AdminUC:   adminUC,
		CompanyUC: companyUC,
		UploadWF:  uploadWF,
		Log:       log.Module("web"),
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

	log.Info().Msg("dashboard detenido")
}
