package nfe

import (
	"context"
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/go-resty/resty/v2"

	appnfe "github.com/frigosul/frigosul-api/internal/application/nfe"
)

var _ appnfe.SefazClient = (*SefazClient)(nil)

// SefazClient envia o XML assinado para o webservice de autorização.
type SefazClient struct {
	httpClient *resty.Client
}

// NewSefazClient cria o cliente HTTP para a URL do ambiente configurado.
// Com baseURL vazia devolve nil: a emissão para em nota_assinada (simulada).
func NewSefazClient(baseURL string) *SefazClient {
	if baseURL == "" {
		return nil
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/xml; charset=utf-8").
		SetTimeout(30 * time.Second)
	return &SefazClient{httpClient: client}
}

// Autorizar envia o XML e devolve o número do protocolo. Rejeição da SEFAZ
// (cStat fora de 100) vira erro com o motivo devolvido pelo webservice.
func (c *SefazClient) Autorizar(ctx context.Context, xmlAssinado string) (string, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(xmlAssinado).
		Post("/nfe/autorizacao")
	if err != nil {
		return "", fmt.Errorf("sefaz: enviar XML: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("sefaz: HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	return parseRetorno(resp.Body())
}

func parseRetorno(body []byte) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return "", fmt.Errorf("sefaz: parsear retorno: %w", err)
	}
	cStat := textoDe(doc, "//infProt/cStat")
	if cStat == "" {
		cStat = textoDe(doc, "//cStat")
	}
	if cStat != "100" { // 100 = autorizado o uso da NF-e
		motivo := textoDe(doc, "//infProt/xMotivo")
		if motivo == "" {
			motivo = textoDe(doc, "//xMotivo")
		}
		return "", fmt.Errorf("sefaz: rejeição %s: %s", cStat, motivo)
	}
	protocolo := textoDe(doc, "//infProt/nProt")
	if protocolo == "" {
		return "", fmt.Errorf("sefaz: retorno autorizado sem número de protocolo")
	}
	return protocolo, nil
}

func textoDe(doc *etree.Document, path string) string {
	if el := doc.FindElement(path); el != nil {
		return el.Text()
	}
	return ""
}
