package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigosul/frigosul-api/internal/application/abate"
	"github.com/frigosul/frigosul-api/internal/application/analytics"
	"github.com/frigosul/frigosul-api/internal/application/auth"
	"github.com/frigosul/frigosul-api/internal/application/estoque"
	"github.com/frigosul/frigosul-api/internal/application/metas"
	"github.com/frigosul/frigosul-api/internal/application/nfe"
	"github.com/frigosul/frigosul-api/internal/application/producao"
	"github.com/frigosul/frigosul-api/internal/application/relatorios"
	"github.com/frigosul/frigosul-api/internal/application/usecase"
	"github.com/frigosul/frigosul-api/internal/application/vendas"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	AbateUC       *abate.CreateAbateUseCase
	ProducaoUC    *producao.CreateProducaoUseCase
	EstoqueUC     *estoque.RegistrarMovimentacaoUseCase
	MetaUC        *metas.MetaUseCase
	RendimentoUC  *metas.RendimentoUseCase
	VendaUC       *vendas.CreateVendaUseCase
	EmitirNFeUC   *nfe.EmitirNFeUseCase
	ProdutoUC     *usecase.ProdutoUseCase
	FornecedorUC  *usecase.FornecedorUseCase
	ClienteUC     *usecase.ClienteUseCase
	FuncionarioUC *usecase.FuncionarioUseCase
	ContaPagarUC  *usecase.ContaPagarUseCase
	EmpresaUC     *usecase.EmpresaUseCase
	DashboardUC   *analytics.DashboardUseCase
	RelatorioUC   *relatorios.RelatorioUseCase
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Cancelamentos, baixas e configuração exigem perfil elevado
	gestao := RequirePerfil("admin", "gerente")

	// Abates (protegido)
	abates := protected.Group("/abates")
	abateHandler := NewAbateHandler(deps.AbateUC)
	abates.Post("/", abateHandler.Create)
	abates.Get("/", abateHandler.List)
	abates.Get("/:id", abateHandler.GetByID)
	abates.Put("/:id", abateHandler.Update)
	abates.Post("/:id/cancelar", gestao, abateHandler.Cancelar)
	abates.Post("/:id/reativar", gestao, abateHandler.Reativar)
	abates.Post("/:id/finalizar", abateHandler.Finalizar)

	// Produções (protegido)
	producoes := protected.Group("/producoes")
	producaoHandler := NewProducaoHandler(deps.ProducaoUC)
	producoes.Post("/", producaoHandler.Create)
	producoes.Get("/", producaoHandler.List)
	producoes.Get("/:id", producaoHandler.GetByID)
	producoes.Put("/:id", producaoHandler.Update)
	producoes.Post("/:id/inativar", gestao, producaoHandler.Inativar)
	abates.Get("/:abateId/producoes", producaoHandler.ListByAbate)

	// Metas e rendimento (protegido)
	metasGroup := protected.Group("/metas")
	metaHandler := NewMetaHandler(deps.MetaUC, deps.RendimentoUC)
	metasGroup.Post("/", metaHandler.Create)
	metasGroup.Get("/", metaHandler.List)
	metasGroup.Put("/:id", metaHandler.Update)
	metasGroup.Post("/:id/inativar", metaHandler.Inativar)
	metasGroup.Post("/:id/reativar", metaHandler.Reativar)
	abates.Get("/:abateId/rendimento", metaHandler.RendimentoPorAbate)

	// Estoque (protegido)
	estoqueGroup := protected.Group("/estoque")
	estoqueHandler := NewEstoqueHandler(deps.EstoqueUC)
	estoqueGroup.Post("/movimentacoes", gestao, estoqueHandler.Registrar)
	estoqueGroup.Get("/movimentacoes", estoqueHandler.List)

	// Produtos (protegido)
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Post("/:id/inativar", produtoHandler.Inativar)
	produtos.Post("/:id/reativar", produtoHandler.Reativar)

	// Cadastros (protegido)
	fornecedores := protected.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Post("/", fornecedorHandler.Create)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Get("/:id", fornecedorHandler.GetByID)
	fornecedores.Put("/:id", fornecedorHandler.Update)
	fornecedores.Post("/:id/inativar", fornecedorHandler.Inativar)
	fornecedores.Post("/:id/reativar", fornecedorHandler.Reativar)

	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Post("/:id/inativar", clienteHandler.Inativar)
	clientes.Post("/:id/reativar", clienteHandler.Reativar)

	funcionarios := protected.Group("/funcionarios")
	funcionarioHandler := NewFuncionarioHandler(deps.FuncionarioUC)
	funcionarios.Post("/", funcionarioHandler.Create)
	funcionarios.Get("/", funcionarioHandler.List)
	funcionarios.Get("/:id", funcionarioHandler.GetByID)
	funcionarios.Put("/:id", funcionarioHandler.Update)
	funcionarios.Post("/:id/inativar", funcionarioHandler.Inativar)
	funcionarios.Post("/:id/reativar", funcionarioHandler.Reativar)

	// Contas a pagar (protegido)
	contas := protected.Group("/contas-pagar")
	contaHandler := NewContaPagarHandler(deps.ContaPagarUC)
	contas.Get("/", contaHandler.List)
	contas.Get("/:id", contaHandler.GetByID)
	contas.Post("/:id/pagar", gestao, contaHandler.Pagar)

	// Vendas e NF-e (protegido)
	vendasGroup := protected.Group("/vendas")
	vendaHandler := NewVendaHandler(deps.VendaUC, deps.EmitirNFeUC)
	vendasGroup.Post("/", vendaHandler.Create)
	vendasGroup.Get("/", vendaHandler.List)
	vendasGroup.Get("/:id", vendaHandler.GetByID)
	vendasGroup.Post("/:id/cancelar", gestao, vendaHandler.Cancelar)
	vendasGroup.Post("/:id/nfe", vendaHandler.EmitirNFe)

	// Empresa (emitente; somente admin altera)
	empresa := protected.Group("/empresa")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresa.Get("/", empresaHandler.Get)
	empresa.Put("/", RequirePerfil("admin"), empresaHandler.Upsert)

	// Dashboard e relatórios (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	protected.Get("/relatorios/financeiro", relatorioHandler.Financeiro)
}
