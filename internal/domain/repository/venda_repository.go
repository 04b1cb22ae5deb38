package repository

import "github.com/frigosul/frigosul-api/internal/domain/entity"

// VendaRepository porta de persistência de vendas (cabeçalho + itens).
type VendaRepository interface {
	Create(v *entity.Venda) error
	GetByID(id string) (*entity.Venda, error)
	// GetForUpdate trava a linha da venda na transação corrente; o cancelamento
	// checa o status por aqui para que dois cancelamentos não passem ambos.
	GetForUpdate(id string) (*entity.Venda, error)
	List(limit, offset int) ([]*entity.Venda, error)
	// ProximoNumero reserva o próximo número sequencial de nota.
	ProximoNumero() (int64, error)
	// UpdateNFe grava chave, XML assinado, protocolo e status após a emissão.
	UpdateNFe(v *entity.Venda) error
	UpdateStatus(id, status string) error
}
