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

	appabate "github.com/frigosul/frigosul-api/internal/application/abate"
	appanalytics "github.com/frigosul/frigosul-api/internal/application/analytics"
	"github.com/frigosul/frigosul-api/internal/application/auth"
	appestoque "github.com/frigosul/frigosul-api/internal/application/estoque"
	appmetas "github.com/frigosul/frigosul-api/internal/application/metas"
	appnfe "github.com/frigosul/frigosul-api/internal/application/nfe"
	appproducao "github.com/frigosul/frigosul-api/internal/application/producao"
	apprelatorios "github.com/frigosul/frigosul-api/internal/application/relatorios"
	"github.com/frigosul/frigosul-api/internal/application/usecase"
	appvendas "github.com/frigosul/frigosul-api/internal/application/vendas"
	infranfe "github.com/frigosul/frigosul-api/internal/infrastructure/nfe"
	infrapdf "github.com/frigosul/frigosul-api/internal/infrastructure/pdf"
	"github.com/frigosul/frigosul-api/internal/infrastructure/postgres"
	httpRouter "github.com/frigosul/frigosul-api/internal/interfaces/http"
	"github.com/frigosul/frigosul-api/pkg/config"
	"github.com/frigosul/frigosul-api/pkg/logger"
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
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	funcionarioRepo := postgres.NewFuncionarioRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	abateRepo := postgres.NewAbateRepository(pool)
	contaRepo := postgres.NewContaPagarRepository(pool)
	metaRepo := postgres.NewMetaRepository(pool)
	producaoRepo := postgres.NewProducaoRepository(pool)
	loteRepo := postgres.NewLoteRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, cfg.JWT)
	abateUC := appabate.NewCreateAbateUseCase(txRunner, abateRepo, fornecedorRepo, contaRepo)
	producaoUC := appproducao.NewCreateProducaoUseCase(txRunner, producaoRepo, produtoRepo, loteRepo)
	estoqueUC := appestoque.NewRegistrarMovimentacaoUseCase(txRunner, movRepo, produtoRepo)
	metaUC := appmetas.NewMetaUseCase(metaRepo, produtoRepo)
	rendimentoUC := appmetas.NewRendimentoUseCase(abateRepo, producaoRepo, metaRepo, produtoRepo)
	vendaUC := appvendas.NewCreateVendaUseCase(txRunner, vendaRepo, clienteRepo, produtoRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	funcionarioUC := usecase.NewFuncionarioUseCase(funcionarioRepo)
	contaPagarUC := usecase.NewContaPagarUseCase(contaRepo)
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	relatorioUC := apprelatorios.NewRelatorioUseCase(analyticsRepo, infrapdf.NewMarotoPDFGenerator())

	// NF-e: sem certificado a emissão para em nota_gerada; sem endpoint
	// SEFAZ ela para em nota_assinada (modo simulado).
	xmlBuilder := infranfe.NewXMLBuilder()
	signerSvc, err := infranfe.NewSigner(cfg.NFE.CertPath, cfg.NFE.CertKeyPath)
	if err != nil {
		log.Fatal().Err(err).Msg("certificado da NF-e")
	}
	sefazClient := infranfe.NewSefazClient(cfg.NFE.SefazURL)

	var signerPort appnfe.Signer
	if signerSvc != nil {
		signerPort = signerSvc
	}
	var sefazPort appnfe.SefazClient
	if sefazClient != nil {
		sefazPort = sefazClient
	}
	emitirNFeUC := appnfe.NewEmitirNFeUseCase(
		vendaRepo, clienteRepo, empresaRepo,
		xmlBuilder, signerPort, sefazPort, cfg.NFE, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Frigosul API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		AbateUC:       abateUC,
		ProducaoUC:    producaoUC,
		EstoqueUC:     estoqueUC,
		MetaUC:        metaUC,
		RendimentoUC:  rendimentoUC,
		VendaUC:       vendaUC,
		EmitirNFeUC:   emitirNFeUC,
		ProdutoUC:     produtoUC,
		FornecedorUC:  fornecedorUC,
		ClienteUC:     clienteUC,
		FuncionarioUC: funcionarioUC,
		ContaPagarUC:  contaPagarUC,
		EmpresaUC:     empresaUC,
		DashboardUC:   dashboardUC,
		RelatorioUC:   relatorioUC,
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

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
