package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

const movimentacaoColumns = `id, item, lote, qtd_informada, caixas, qtd_por_caixa, unidades_avulsas, status, criado_por, criado_em`

// MovimentacaoRepo implementação da porta MovimentacaoRepository sobre PostgreSQL.
// Aceita pool ou tx (via querier) para participar do TxRunner.
type MovimentacaoRepo struct {
	db querier
}

// NewMovimentacaoRepository constrói o adaptador.
func NewMovimentacaoRepository(db querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{db: db}
}

// Create persiste uma nova movimentação.
func (r *MovimentacaoRepo) Create(m *entity.Movimentacao) error {
	query := `
		INSERT INTO movimentacoes (id, item, lote, qtd_informada, caixas, qtd_por_caixa, unidades_avulsas, status, criado_por, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		m.ID, m.Item, m.Lote, m.QtdInformada, m.Caixas, m.QtdPorCaixa, m.UnidadesAvulsas,
		m.Status, m.CriadoPor, m.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação; (nil, nil) quando não existe.
func (r *MovimentacaoRepo) GetByID(id string) (*entity.Movimentacao, error) {
	query := `SELECT ` + movimentacaoColumns + ` FROM movimentacoes WHERE id = $1`
	var m entity.Movimentacao
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Item, &m.Lote, &m.QtdInformada, &m.Caixas, &m.QtdPorCaixa, &m.UnidadesAvulsas,
		&m.Status, &m.CriadoPor, &m.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimentacao by id: %w", err)
	}
	return &m, nil
}

// ListByStatus lista movimentações nos status dados, mais recentes primeiro.
func (r *MovimentacaoRepo) ListByStatus(status []string) ([]*entity.Movimentacao, error) {
	query := `SELECT ` + movimentacaoColumns + `
		FROM movimentacoes WHERE status = ANY($1) ORDER BY criado_em DESC`
	rows, err := r.db.Query(context.Background(), query, status)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes by status: %w", err)
	}
	return scanMovimentacoes(rows)
}

// Buscar consulta o histórico com os filtros e limite dados.
func (r *MovimentacaoRepo) Buscar(f repository.FiltroHistorico) ([]*entity.Movimentacao, error) {
	query := `SELECT ` + movimentacaoColumns + ` FROM movimentacoes WHERE 1=1`
	args := []any{}
	n := 0

	if f.Status != "" {
		n++
		query += fmt.Sprintf(" AND status = $%d", n)
		args = append(args, f.Status)
	}
	if !f.Inicio.IsZero() {
		n++
		query += fmt.Sprintf(" AND criado_em >= $%d", n)
		args = append(args, f.Inicio)
	}
	if !f.Fim.IsZero() {
		n++
		query += fmt.Sprintf(" AND criado_em < $%d", n)
		args = append(args, f.Fim)
	}
	query += " ORDER BY criado_em DESC"
	if f.Limit > 0 {
		n++
		query += fmt.Sprintf(" LIMIT $%d", n)
		args = append(args, f.Limit)
	}

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("buscar movimentacoes: %w", err)
	}
	return scanMovimentacoes(rows)
}

// ListDesde lista movimentações criadas a partir do instante dado, asc.
func (r *MovimentacaoRepo) ListDesde(desde time.Time) ([]*entity.Movimentacao, error) {
	query := `SELECT ` + movimentacaoColumns + `
		FROM movimentacoes WHERE criado_em >= $1 ORDER BY criado_em ASC`
	rows, err := r.db.Query(context.Background(), query, desde)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes desde: %w", err)
	}
	return scanMovimentacoes(rows)
}

// UpdateStatus troca apenas o status.
func (r *MovimentacaoRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE movimentacoes SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update movimentacao status: %w", err)
	}
	return nil
}

// UpdateQuantidades grava a nova decomposição, o total e o status (ajuste).
func (r *MovimentacaoRepo) UpdateQuantidades(m *entity.Movimentacao) error {
	query := `
		UPDATE movimentacoes
		SET qtd_informada = $2, caixas = $3, qtd_por_caixa = $4, unidades_avulsas = $5, status = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		m.ID, m.QtdInformada, m.Caixas, m.QtdPorCaixa, m.UnidadesAvulsas, m.Status)
	if err != nil {
		return fmt.Errorf("update movimentacao quantidades: %w", err)
	}
	return nil
}

func scanMovimentacoes(rows pgx.Rows) ([]*entity.Movimentacao, error) {
	defer rows.Close()
	var list []*entity.Movimentacao
	for rows.Next() {
		var m entity.Movimentacao
		if err := rows.Scan(
			&m.ID, &m.Item, &m.Lote, &m.QtdInformada, &m.Caixas, &m.QtdPorCaixa, &m.UnidadesAvulsas,
			&m.Status, &m.CriadoPor, &m.CriadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
