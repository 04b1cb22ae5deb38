package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo implementação do porto VendaRepository sobre PostgreSQL.
// Cabeçalho em vendas, itens em venda_itens; numeração via sequence.
type VendaRepo struct {
	q Querier
}

// NewVendaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

const vendaColumns = `id, cliente_id, data, valor_final, numero, chave_acesso,
	xml_assinado, protocolo, status, registrado_por, created_at, updated_at`

// Create persiste o cabeçalho e os itens.
func (r *VendaRepo) Create(v *entity.Venda) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO vendas (`+vendaColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		v.ID, v.ClienteID, v.Data, v.ValorFinal, v.Numero, v.ChaveAcesso,
		v.XMLAssinado, v.Protocolo, v.Status, v.RegistradoPor, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	for _, item := range v.Itens {
		_, err := r.q.Exec(ctx, `
			INSERT INTO venda_itens (id, venda_id, produto_id, produto_nome, quantidade, preco_unitario, subtotal, unidade_sigla)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, v.ID, item.ProdutoID, item.ProdutoNome, item.Quantidade,
			item.PrecoUnitario, item.Subtotal, item.UnidadeSigla,
		)
		if err != nil {
			return fmt.Errorf("insert item venda: %w", err)
		}
	}
	return nil
}

// GetByID busca a venda com os itens.
func (r *VendaRepo) GetByID(id string) (*entity.Venda, error) {
	var v entity.Venda
	err := r.q.QueryRow(context.Background(),
		`SELECT `+vendaColumns+` FROM vendas WHERE id = $1`, id).Scan(
		&v.ID, &v.ClienteID, &v.Data, &v.ValorFinal, &v.Numero, &v.ChaveAcesso,
		&v.XMLAssinado, &v.Protocolo, &v.Status, &v.RegistradoPor, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	itens, err := r.itens(v.ID)
	if err != nil {
		return nil, err
	}
	v.Itens = itens
	return &v, nil
}

// GetForUpdate busca a venda travando a linha (SELECT ... FOR UPDATE).
// Só faz sentido dentro de uma transação.
func (r *VendaRepo) GetForUpdate(id string) (*entity.Venda, error) {
	var v entity.Venda
	err := r.q.QueryRow(context.Background(),
		`SELECT `+vendaColumns+` FROM vendas WHERE id = $1 FOR UPDATE`, id).Scan(
		&v.ID, &v.ClienteID, &v.Data, &v.ValorFinal, &v.Numero, &v.ChaveAcesso,
		&v.XMLAssinado, &v.Protocolo, &v.Status, &v.RegistradoPor, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda for update: %w", err)
	}
	itens, err := r.itens(v.ID)
	if err != nil {
		return nil, err
	}
	v.Itens = itens
	return &v, nil
}

func (r *VendaRepo) itens(vendaID string) ([]entity.ItemVenda, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, venda_id, produto_id, produto_nome, quantidade, preco_unitario, subtotal, unidade_sigla
		FROM venda_itens WHERE venda_id = $1 ORDER BY produto_nome`, vendaID)
	if err != nil {
		return nil, fmt.Errorf("list itens venda: %w", err)
	}
	defer rows.Close()

	var out []entity.ItemVenda
	for rows.Next() {
		var it entity.ItemVenda
		if err := rows.Scan(&it.ID, &it.VendaID, &it.ProdutoID, &it.ProdutoNome,
			&it.Quantidade, &it.PrecoUnitario, &it.Subtotal, &it.UnidadeSigla); err != nil {
			return nil, fmt.Errorf("scan item venda: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// List vendas da mais recente para a mais antiga, com itens.
func (r *VendaRepo) List(limit, offset int) ([]*entity.Venda, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+vendaColumns+` FROM vendas ORDER BY data DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Venda
	for rows.Next() {
		var v entity.Venda
		if err := rows.Scan(
			&v.ID, &v.ClienteID, &v.Data, &v.ValorFinal, &v.Numero, &v.ChaveAcesso,
			&v.XMLAssinado, &v.Protocolo, &v.Status, &v.RegistradoPor, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, v := range out {
		itens, err := r.itens(v.ID)
		if err != nil {
			return nil, err
		}
		v.Itens = itens
	}
	return out, nil
}

// ProximoNumero reserva o próximo número da sequence de notas. A sequence não
// retrocede em rollback; buracos de numeração são aceitáveis.
func (r *VendaRepo) ProximoNumero() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT nextval('venda_numero_seq')`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("proximo numero venda: %w", err)
	}
	return n, nil
}

// UpdateNFe grava o avanço da emissão (chave, XML, protocolo, status).
func (r *VendaRepo) UpdateNFe(v *entity.Venda) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE vendas
		SET chave_acesso = $2, xml_assinado = $3, protocolo = $4, status = $5, updated_at = $6
		WHERE id = $1`,
		v.ID, v.ChaveAcesso, v.XMLAssinado, v.Protocolo, v.Status, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update venda nfe: %w", err)
	}
	return nil
}

// UpdateStatus transiciona o status da venda.
func (r *VendaRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE vendas SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update venda status: %w", err)
	}
	return nil
}
