package postgres

import (
	"context"
	"fmt"

	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/internal/domain/repository"
)

var _ repository.AjusteRepository = (*AjusteRepo)(nil)

// AjusteRepo implementação da porta AjusteRepository sobre PostgreSQL.
type AjusteRepo struct {
	db querier
}

// NewAjusteRepository constrói o adaptador.
func NewAjusteRepository(db querier) *AjusteRepo {
	return &AjusteRepo{db: db}
}

// Create insere o ajuste (append-only, nunca atualizado).
func (r *AjusteRepo) Create(a *entity.Ajuste) error {
	query := `
		INSERT INTO ajustes (id, movimentacao_id, qtd_antiga, qtd_nova, motivo, ajustado_por, tipo, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		a.ID, a.MovimentacaoID, a.QtdAntiga, a.QtdNova, a.Motivo, a.AjustadoPor, a.Tipo, a.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert ajuste: %w", err)
	}
	return nil
}

// ListByMovimentacao lista os ajustes da movimentação por criado_em asc.
func (r *AjusteRepo) ListByMovimentacao(movimentacaoID string) ([]*entity.Ajuste, error) {
	query := `
		SELECT id, movimentacao_id, qtd_antiga, qtd_nova, motivo, ajustado_por, tipo, criado_em
		FROM ajustes WHERE movimentacao_id = $1 ORDER BY criado_em ASC`
	rows, err := r.db.Query(context.Background(), query, movimentacaoID)
	if err != nil {
		return nil, fmt.Errorf("list ajustes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ajuste
	for rows.Next() {
		var a entity.Ajuste
		if err := rows.Scan(&a.ID, &a.MovimentacaoID, &a.QtdAntiga, &a.QtdNova, &a.Motivo, &a.AjustadoPor, &a.Tipo, &a.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan ajuste: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
