package repository

import (
	"time"

	"github.com/frigosul/frigosul-api/internal/domain/entity"
)

// ProducaoRepository porta de persistência de produções (cabeçalho + itens).
type ProducaoRepository interface {
	Create(p *entity.Producao) error
	GetByID(id string) (*entity.Producao, error)
	List(limit, offset int) ([]*entity.Producao, error)
	ListByAbate(abateID string) ([]*entity.Producao, error)
	// UpdateCabecalho altera apenas campos de topo; itens são imutáveis.
	UpdateCabecalho(id string, data time.Time, responsavelID string) error
	UpdateStatus(id, status string) error
}

// LoteRepository porta de persistência dos sub-lotes de rastreabilidade.
type LoteRepository interface {
	Create(l *entity.LoteGerado) error
	ListByProduto(produtoID string) ([]*entity.LoteGerado, error)
	ListByProducao(producaoID string) ([]*entity.LoteGerado, error)
}
