// Montagem do XML da NF-e (modelo 55, leiaute 4.00). A estrutura segue o
// leiaute mínimo de autorização: ide, emit, dest, det por item e total.
package nfe

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	appnfe "github.com/frigosul/frigosul-api/internal/application/nfe"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
	pkgnfe "github.com/frigosul/frigosul-api/pkg/nfe"
)

// NamespaceNFe namespace do portal da NF-e.
const NamespaceNFe = "http://www.portalfiscal.inf.br/nfe"

var _ appnfe.XMLBuilder = (*XMLBuilder)(nil)

// XMLBuilder monta o documento NFe com etree.
type XMLBuilder struct{}

// NewXMLBuilder cria o builder.
func NewXMLBuilder() *XMLBuilder {
	return &XMLBuilder{}
}

// Build gera o XML da NF-e para a venda. O atributo Id do infNFe é
// "NFe" + chave, exigido pela referência da assinatura.
func (b *XMLBuilder) Build(emitente *entity.Empresa, destinatario *entity.Cliente, venda *entity.Venda, chave, ambiente string) (string, error) {
	if len(chave) != 44 {
		return "", fmt.Errorf("nfe: chave de acesso com %d dígitos (esperado 44)", len(chave))
	}
	if len(venda.Itens) == 0 {
		return "", fmt.Errorf("nfe: venda sem itens")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	nfe := doc.CreateElement("NFe")
	nfe.CreateAttr("xmlns", NamespaceNFe)

	inf := nfe.CreateElement("infNFe")
	inf.CreateAttr("Id", "NFe"+chave)
	inf.CreateAttr("versao", "4.00")

	ide := inf.CreateElement("ide")
	ide.CreateElement("cUF").SetText(chave[0:2])
	ide.CreateElement("cNF").SetText(chave[34:42])
	ide.CreateElement("natOp").SetText("VENDA DE MERCADORIA")
	ide.CreateElement("mod").SetText(pkgnfe.ModeloNFe)
	ide.CreateElement("serie").SetText(strings.TrimLeft(chave[22:25], "0"))
	ide.CreateElement("nNF").SetText(fmt.Sprintf("%d", venda.Numero))
	ide.CreateElement("dhEmi").SetText(venda.Data.Format("2006-01-02T15:04:05-07:00"))
	ide.CreateElement("tpNF").SetText("1") // saída
	ide.CreateElement("tpAmb").SetText(ambiente)
	ide.CreateElement("tpEmis").SetText(chave[33:34])
	ide.CreateElement("cDV").SetText(chave[43:44])

	emit := inf.CreateElement("emit")
	emit.CreateElement("CNPJ").SetText(soDigitos(emitente.CNPJ))
	emit.CreateElement("xNome").SetText(emitente.RazaoSocial)
	if emitente.NomeFantasia != "" {
		emit.CreateElement("xFant").SetText(emitente.NomeFantasia)
	}
	emit.CreateElement("IE").SetText(soDigitos(emitente.InscricaoEstadual))
	enderEmit := emit.CreateElement("enderEmit")
	enderEmit.CreateElement("xLgr").SetText(emitente.Endereco)
	enderEmit.CreateElement("xMun").SetText(emitente.Cidade)
	enderEmit.CreateElement("UF").SetText(emitente.UF)

	dest := inf.CreateElement("dest")
	docDest := soDigitos(destinatario.Documento)
	if len(docDest) == 14 {
		dest.CreateElement("CNPJ").SetText(docDest)
	} else {
		dest.CreateElement("CPF").SetText(docDest)
	}
	dest.CreateElement("xNome").SetText(destinatario.Nome)
	enderDest := dest.CreateElement("enderDest")
	enderDest.CreateElement("xLgr").SetText(destinatario.Endereco)
	enderDest.CreateElement("xMun").SetText(destinatario.Cidade)
	enderDest.CreateElement("UF").SetText(destinatario.UF)

	for i, item := range venda.Itens {
		det := inf.CreateElement("det")
		det.CreateAttr("nItem", fmt.Sprintf("%d", i+1))
		prod := det.CreateElement("prod")
		prod.CreateElement("cProd").SetText(item.ProdutoID)
		prod.CreateElement("xProd").SetText(item.ProdutoNome)
		prod.CreateElement("uCom").SetText(item.UnidadeSigla)
		prod.CreateElement("qCom").SetText(item.Quantidade.StringFixed(4))
		prod.CreateElement("vUnCom").SetText(item.PrecoUnitario.StringFixed(2))
		prod.CreateElement("vProd").SetText(item.Subtotal.StringFixed(2))
	}

	total := inf.CreateElement("total")
	icmsTot := total.CreateElement("ICMSTot")
	icmsTot.CreateElement("vNF").SetText(venda.ValorFinal.StringFixed(2))

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("nfe: serializar XML: %w", err)
	}
	return out, nil
}

func soDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
