package postgres

import (
	"context"
	"fmt"

	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo implementação do porto LoteRepository sobre PostgreSQL.
type LoteRepo struct {
	q Querier
}

// NewLoteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

const loteColumns = `id, producao_id, lote_numero, produto_id, quantidade_inicial,
	quantidade_atual, data_producao, data_validade`

// Create persiste um sub-lote de rastreabilidade.
func (r *LoteRepo) Create(l *entity.LoteGerado) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO lotes_gerados (`+loteColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID, l.ProducaoID, l.LoteNumero, l.ProdutoID, l.QuantidadeInicial,
		l.QuantidadeAtual, l.DataProducao, l.DataValidade,
	)
	if err != nil {
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// ListByProduto lotes de um produto, do mais próximo do vencimento primeiro.
func (r *LoteRepo) ListByProduto(produtoID string) ([]*entity.LoteGerado, error) {
	return r.list(`SELECT `+loteColumns+` FROM lotes_gerados
		WHERE produto_id = $1 ORDER BY data_validade ASC`, produtoID)
}

// ListByProducao lotes gerados por uma produção.
func (r *LoteRepo) ListByProducao(producaoID string) ([]*entity.LoteGerado, error) {
	return r.list(`SELECT `+loteColumns+` FROM lotes_gerados
		WHERE producao_id = $1 ORDER BY lote_numero`, producaoID)
}

func (r *LoteRepo) list(query string, args ...any) ([]*entity.LoteGerado, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()

	var out []*entity.LoteGerado
	for rows.Next() {
		var l entity.LoteGerado
		if err := rows.Scan(
			&l.ID, &l.ProducaoID, &l.LoteNumero, &l.ProdutoID, &l.QuantidadeInicial,
			&l.QuantidadeAtual, &l.DataProducao, &l.DataValidade,
		); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
