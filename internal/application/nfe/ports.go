package nfe

import (
	"context"

	"github.com/frigosul/frigosul-api/internal/domain/entity"
)

// XMLBuilder monta o XML da NF-e (infNFe) a partir da venda e do emitente.
type XMLBuilder interface {
	Build(emitente *entity.Empresa, destinatario *entity.Cliente, venda *entity.Venda, chave, ambiente string) (string, error)
}

// Signer assina o XML (XMLDSig enveloped sobre o infNFe).
type Signer interface {
	Sign(xml string) (string, error)
}

// SefazClient envia o XML assinado para autorização e devolve o protocolo.
type SefazClient interface {
	Autorizar(ctx context.Context, xmlAssinado string) (protocolo string, err error)
}
