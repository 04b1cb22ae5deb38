package nfe

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/domain"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
	"github.com/frigosul/frigosul-api/pkg/config"
	"github.com/frigosul/frigosul-api/pkg/logger"
	pkgnfe "github.com/frigosul/frigosul-api/pkg/nfe"
)

// EmitirNFeUseCase orquestra a emissão: chave de acesso, XML, assinatura e
// envio à SEFAZ. Cada passo persiste o avanço de status da venda, de modo que
// uma falha no meio deixa o estado retomável (reemitir continua de onde parou).
type EmitirNFeUseCase struct {
	vendaRepo   repository.VendaRepository
	clienteRepo repository.ClienteRepository
	empresaRepo repository.EmpresaRepository
	builder     XMLBuilder
	signer      Signer
	sefaz       SefazClient
	cfg         config.NFEConfig
	log         *logger.Logger
}

// NewEmitirNFeUseCase constrói o caso de uso. signer e sefaz podem ser nil
// (sem certificado ou sem endpoint); a emissão para no status correspondente.
func NewEmitirNFeUseCase(
	vendaRepo repository.VendaRepository,
	clienteRepo repository.ClienteRepository,
	empresaRepo repository.EmpresaRepository,
	builder XMLBuilder,
	signer Signer,
	sefaz SefazClient,
	cfg config.NFEConfig,
	log *logger.Logger,
) *EmitirNFeUseCase {
	return &EmitirNFeUseCase{
		vendaRepo:   vendaRepo,
		clienteRepo: clienteRepo,
		empresaRepo: empresaRepo,
		builder:     builder,
		signer:      signer,
		sefaz:       sefaz,
		cfg:         cfg,
		log:         log,
	}
}

// Emitir gera e transmite a NF-e da venda.
func (uc *EmitirNFeUseCase) Emitir(ctx context.Context, vendaID string) (*dto.EmitirNFeResponse, error) {
	v, err := uc.vendaRepo.GetByID(vendaID)
	if err != nil || v == nil {
		return nil, domain.ErrNotFound
	}
	switch v.Status {
	case entity.VendaCancelada:
		return nil, fmt.Errorf("%w: venda cancelada", domain.ErrInvalidState)
	case entity.VendaNotaAutorizada:
		return nil, fmt.Errorf("%w: nota já autorizada", domain.ErrInvalidState)
	}

	empresa, err := uc.empresaRepo.Get()
	if err != nil || empresa == nil {
		return nil, fmt.Errorf("%w: emitente não configurado", domain.ErrInvalidState)
	}
	cliente, err := uc.clienteRepo.GetByID(v.ClienteID)
	if err != nil || cliente == nil {
		return nil, fmt.Errorf("%w: cliente da venda", domain.ErrNotFound)
	}

	// Chave: reaproveita a existente em reemissão para não mudar o cNF.
	if v.ChaveAcesso == "" {
		chave, err := pkgnfe.Montar(&pkgnfe.ChaveParams{
			UF:             uc.cfg.UF,
			Emissao:        v.Data,
			CNPJ:           empresa.CNPJ,
			Serie:          uc.cfg.Serie,
			Numero:         v.Numero,
			TpEmis:         "1",
			CodigoNumerico: fmt.Sprintf("%08d", rand.Intn(100_000_000)),
		})
		if err != nil {
			return nil, err
		}
		v.ChaveAcesso = chave
	}

	xml, err := uc.builder.Build(empresa, cliente, v, v.ChaveAcesso, uc.cfg.Ambiente)
	if err != nil {
		return nil, err
	}
	v.Status = entity.VendaNotaGerada
	v.UpdatedAt = time.Now()
	if err := uc.vendaRepo.UpdateNFe(v); err != nil {
		return nil, err
	}

	if uc.signer == nil {
		uc.log.Warn().Str("venda_id", v.ID).Msg("emissão sem certificado; nota gerada sem assinatura")
		return uc.resposta(v), nil
	}
	assinado, err := uc.signer.Sign(xml)
	if err != nil {
		return nil, fmt.Errorf("assinatura da NF-e: %w", err)
	}
	v.XMLAssinado = assinado
	v.Status = entity.VendaNotaAssinada
	v.UpdatedAt = time.Now()
	if err := uc.vendaRepo.UpdateNFe(v); err != nil {
		return nil, err
	}

	if uc.sefaz == nil {
		uc.log.Info().Str("venda_id", v.ID).Msg("emissão simulada; XML assinado sem envio à SEFAZ")
		return uc.resposta(v), nil
	}
	protocolo, err := uc.sefaz.Autorizar(ctx, assinado)
	if err != nil {
		v.Status = entity.VendaNotaRejeitada
		v.UpdatedAt = time.Now()
		if upErr := uc.vendaRepo.UpdateNFe(v); upErr != nil {
			uc.log.Error().Err(upErr).Str("venda_id", v.ID).Msg("falha ao registrar rejeição")
		}
		return nil, fmt.Errorf("autorização SEFAZ: %w", err)
	}
	v.Protocolo = protocolo
	v.Status = entity.VendaNotaAutorizada
	v.UpdatedAt = time.Now()
	if err := uc.vendaRepo.UpdateNFe(v); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("venda_id", v.ID).
		Str("chave", v.ChaveAcesso).
		Str("protocolo", protocolo).
		Msg("NF-e autorizada")
	return uc.resposta(v), nil
}

func (uc *EmitirNFeUseCase) resposta(v *entity.Venda) *dto.EmitirNFeResponse {
	return &dto.EmitirNFeResponse{
		VendaID:     v.ID,
		ChaveAcesso: v.ChaveAcesso,
		Protocolo:   v.Protocolo,
		Status:      v.Status,
	}
}
