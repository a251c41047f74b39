package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/matheusvr/estoque-chapas/internal/application/auth"
	"github.com/matheusvr/estoque-chapas/internal/application/estoque"
	"github.com/matheusvr/estoque-chapas/internal/application/refresher"
	"github.com/matheusvr/estoque-chapas/internal/application/relatorio"
	"github.com/matheusvr/estoque-chapas/internal/infrastructure/export"
	"github.com/matheusvr/estoque-chapas/internal/infrastructure/postgres"
	httpRouter "github.com/matheusvr/estoque-chapas/internal/interfaces/http"
	"github.com/matheusvr/estoque-chapas/migrations"
	"github.com/matheusvr/estoque-chapas/pkg/config"
	"github.com/matheusvr/estoque-chapas/pkg/logger"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	goose.SetBaseFS(migrations.FS)
	return goose.Up(sqlDB, ".")
}

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

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("aplicar migrações")
	}
	log.Info().Msg("migrações aplicadas")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	chapaRepo := postgres.NewChapaRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	chapaUC := estoque.NewChapaUseCase(chapaRepo, txRunner)
	movUC := estoque.NewMovimentacaoUseCase(chapaRepo, movRepo)
	statsUC := estoque.NewStatsUseCase(chapaRepo, movRepo)
	exportUC := relatorio.NewExportUseCase(chapaUC, movRepo, map[relatorio.Formato]relatorio.Renderer{
		relatorio.FormatoCSV:  export.NewCSVRenderer(),
		relatorio.FormatoXLSX: export.NewXLSXRenderer(),
		relatorio.FormatoPDF:  export.NewPDFRenderer(),
	})
	authUC := auth.NewAuthUseCase(profileRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Painel ao vivo: LISTEN no banco -> debounce -> releitura dos contadores.
	ref := refresher.New(statsUC, log, refresher.DebouncePadrao)
	if err := ref.Atualizar(ctx); err != nil {
		log.Warn().Err(err).Msg("snapshot inicial dos contadores")
	}
	eventos := make(chan struct{}, 1)
	listener := postgres.NewListener(pool, log)
	go listener.Run(ctx, eventos)
	go ref.Run(ctx, eventos)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque de Chapas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ChapaUC:        chapaUC,
		MovimentacaoUC: movUC,
		StatsUC:        statsUC,
		ExportUC:       exportUC,
		Refresher:      ref,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
