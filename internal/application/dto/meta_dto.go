package dto

import "github.com/shopspring/decimal"

// CreateMetaRequest criação/edição de meta de rendimento.
type CreateMetaRequest struct {
	ProdutoID     string          `json:"produto_id"`
	MetaPorAnimal decimal.Decimal `json:"meta_por_animal"`
}

// MetaResponse meta configurada.
type MetaResponse struct {
	ID            string          `json:"id"`
	ProdutoID     string          `json:"produto_id"`
	ProdutoNome   string          `json:"produto_nome"`
	MetaPorAnimal decimal.Decimal `json:"meta_por_animal"`
	Unidade       string          `json:"unidade"`
	Status        string          `json:"status"`
}

// RendimentoProdutoDTO reconciliação meta × produzido de um produto em um abate.
type RendimentoProdutoDTO struct {
	ProdutoID           string          `json:"produto_id"`
	ProdutoNome         string          `json:"produto_nome"`
	Unidade             string          `json:"unidade"`
	MetaTeorica         decimal.Decimal `json:"meta_teorica"`
	TotalProduzido      decimal.Decimal `json:"total_produzido"`
	PerdaRegistrada     decimal.Decimal `json:"perda_registrada"`
	ProgressoPercentual decimal.Decimal `json:"progresso_percentual"`
	ValorRealizado      decimal.Decimal `json:"valor_realizado"`
	ValorPerda          decimal.Decimal `json:"valor_perda"`
}

// RendimentoAbateDTO rendimento agregado de um lote de abate.
type RendimentoAbateDTO struct {
	AbateID        string                 `json:"abate_id"`
	LoteID         string                 `json:"lote_id"`
	AnimaisValidos int                    `json:"animais_validos"`
	Produtos       []RendimentoProdutoDTO `json:"produtos"`
	Eficiencia     decimal.Decimal        `json:"eficiencia"`
}
