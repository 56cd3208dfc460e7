package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquelab/confere-api/internal/application/analytics"
	"github.com/estoquelab/confere-api/internal/application/auth"
	"github.com/estoquelab/confere-api/internal/application/estoque"
	"github.com/estoquelab/confere-api/internal/application/relatorio"
	"github.com/estoquelab/confere-api/internal/application/usecase"
	"github.com/estoquelab/confere-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	RoleResolver *auth.RoleResolver
	CatalogoUC   *estoque.CatalogoUseCase
	RegistrarUC  *estoque.RegistrarUseCase
	ConferirUC   *estoque.ConferirUseCase
	AjustarUC    *estoque.AjustarUseCase
	ConsultaUC   *estoque.ConsultaUseCase
	DashboardUC  *analytics.DashboardUseCase
	RelatorioUC  *relatorio.PDFUseCase
	AdminUC      *usecase.AdminUseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/esqueci-senha", authHandler.EsqueciSenha)
	authGroup.Post("/resetar-senha", authHandler.ResetarSenha)

	// Sessão (requer Bearer Token)
	sessao := api.Group("/auth", AuthMiddleware(deps.JWTSecret))
	sessao.Get("/me", authHandler.Me)
	sessao.Post("/logout", authHandler.Logout)
	sessao.Post("/alterar-senha", authHandler.AlterarSenha)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (qualquer role)
	itemHandler := NewItemHandler(deps.CatalogoUC)
	protected.Get("/itens",
		RequireRole(deps.RoleResolver, entity.RoleOperador, entity.RoleConferente, entity.RoleAdmin),
		itemHandler.List)

	// Movimentações
	movHandler := NewMovimentacaoHandler(deps.RegistrarUC, deps.ConferirUC, deps.AjustarUC, deps.ConsultaUC)
	movs := protected.Group("/movimentacoes")

	qualquerRole := RequireRole(deps.RoleResolver, entity.RoleOperador, entity.RoleConferente, entity.RoleAdmin)
	movs.Get("/pendentes", qualquerRole, movHandler.Pendentes)
	movs.Get("/divergentes", qualquerRole, movHandler.Divergentes)

	movs.Post("/",
		RequireRole(deps.RoleResolver, entity.RoleOperador, entity.RoleAdmin),
		movHandler.Registrar)
	movs.Get("/",
		RequireRole(deps.RoleResolver, entity.RoleAdmin),
		movHandler.Historico)

	movs.Get("/:id", qualquerRole, movHandler.Detalhe)
	movs.Post("/:id/conferir",
		RequireRole(deps.RoleResolver, entity.RoleConferente, entity.RoleAdmin),
		movHandler.Conferir)
	movs.Post("/:id/ajustar",
		RequireRole(deps.RoleResolver, entity.RoleOperador, entity.RoleAdmin),
		movHandler.Ajustar)

	// Dashboard e relatórios (ADMIN)
	somenteAdmin := RequireRole(deps.RoleResolver, entity.RoleAdmin)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", somenteAdmin, dashboardHandler.Resumo)

	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	protected.Get("/relatorios/movimentacoes", somenteAdmin, relatorioHandler.HistoricoPDF)

	// Admin (formato legado de resposta)
	admin := api.Group("/admin", AdminAuthMiddleware(deps.JWTSecret), RequireAdmin(deps.RoleResolver))
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Post("/create-user", adminHandler.CreateUser)
	admin.Get("/list-users", adminHandler.ListUsers)
	admin.Post("/toggle-user", adminHandler.ToggleUser)
}
