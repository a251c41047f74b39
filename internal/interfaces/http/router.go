package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/matheusvr/estoque-chapas/internal/application/auth"
	"github.com/matheusvr/estoque-chapas/internal/application/estoque"
	"github.com/matheusvr/estoque-chapas/internal/application/refresher"
	"github.com/matheusvr/estoque-chapas/internal/application/relatorio"
	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ChapaUC        *estoque.ChapaUseCase
	MovimentacaoUC *estoque.MovimentacaoUseCase
	StatsUC        *estoque.StatsUseCase
	ExportUC       *relatorio.ExportUseCase
	Refresher      *refresher.Refresher
	JWTSecret      string
}

// Router registra as rotas da API. A autorização fina (controlador vs
// operador) fica nos casos de uso; RequireRole aqui é só a primeira barreira.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/metrics", MetricsHandler())

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Chapas. Criar e excluir são exclusivos do controlador; a movimentação
	// depende do tipo no payload, então fica para o caso de uso.
	chapas := protected.Group("/chapas")
	chapaHandler := NewChapaHandler(deps.ChapaUC)
	chapas.Get("/", chapaHandler.List)
	chapas.Post("/", RequireRole(entity.RoleControlador), chapaHandler.Create)
	chapas.Delete("/:id", RequireRole(entity.RoleControlador), chapaHandler.Delete)

	// Movimentações
	movHandler := NewMovimentacaoHandler(deps.MovimentacaoUC)
	chapas.Post("/:id/movimentacoes", movHandler.Registrar)
	protected.Get("/movimentacoes", movHandler.Historico)

	// Relatórios
	relatorios := protected.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.ExportUC)
	relatorios.Get("/movimentacoes", relatorioHandler.Historico)
	relatorios.Get("/chapas", relatorioHandler.Chapas)

	// Painel
	statsHandler := NewStatsHandler(deps.Refresher, deps.StatsUC)
	protected.Get("/estoque/stats", statsHandler.Get)
}
