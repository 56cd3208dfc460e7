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

	appanalytics "github.com/estoquelab/confere-api/internal/application/analytics"
	"github.com/estoquelab/confere-api/internal/application/auth"
	appestoque "github.com/estoquelab/confere-api/internal/application/estoque"
	"github.com/estoquelab/confere-api/internal/application/relatorio"
	"github.com/estoquelab/confere-api/internal/application/usecase"
	infraemail "github.com/estoquelab/confere-api/internal/infrastructure/email"
	infrapdf "github.com/estoquelab/confere-api/internal/infrastructure/pdf"
	"github.com/estoquelab/confere-api/internal/infrastructure/postgres"
	httpRouter "github.com/estoquelab/confere-api/internal/interfaces/http"
	"github.com/estoquelab/confere-api/pkg/config"
	"github.com/estoquelab/confere-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	profileRepo := postgres.NewProfileRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	confRepo := postgres.NewConferenciaRepository(pool)
	ajusteRepo := postgres.NewAjusteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	roleResolver := auth.NewRoleResolver(profileRepo,
		time.Duration(cfg.Auth.RoleCacheSeconds)*time.Second)

	// Resend: sem API key o fluxo de esqueci-senha responde ok sem enviar nada.
	var sender auth.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = infraemail.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.From)
	} else {
		log.Warn().Msg("RESEND_API_KEY ausente: envio de e-mails desativado")
	}

	authUC := auth.NewAuthUseCase(profileRepo, roleResolver,
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		auth.ResetConfig{
			TokenMinutes: cfg.Auth.ResetTokenMinutes,
			URLBase:      cfg.Auth.ResetURLBase,
		},
		sender,
	)

	catalogoUC := appestoque.NewCatalogoUseCase(itemRepo)
	registrarUC := appestoque.NewRegistrarUseCase(itemRepo, movRepo)
	conferirUC := appestoque.NewConferirUseCase(txRunner)
	ajustarUC := appestoque.NewAjustarUseCase(txRunner)
	consultaUC := appestoque.NewConsultaUseCase(movRepo, confRepo, ajusteRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(movRepo)

	pdfGenerator := infrapdf.NewMarotoHistoricoGenerator()
	relatorioUC := relatorio.NewPDFUseCase(consultaUC, pdfGenerator)

	adminUC := usecase.NewAdminUseCase(profileRepo, roleResolver)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Confere API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		RoleResolver: roleResolver,
		CatalogoUC:   catalogoUC,
		RegistrarUC:  registrarUC,
		ConferirUC:   conferirUC,
		AjustarUC:    ajustarUC,
		ConsultaUC:   consultaUC,
		DashboardUC:  dashboardUC,
		RelatorioUC:  relatorioUC,
		AdminUC:      adminUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
