package postgres

import (
	"context"
	"fmt"

	"github.com/estoquelab/confere-api/internal/domain"
	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/internal/domain/repository"
)

var _ repository.ConferenciaRepository = (*ConferenciaRepo)(nil)

// ConferenciaRepo implementação da porta ConferenciaRepository sobre PostgreSQL.
type ConferenciaRepo struct {
	db querier
}

// NewConferenciaRepository constrói o adaptador.
func NewConferenciaRepository(db querier) *ConferenciaRepo {
	return &ConferenciaRepo{db: db}
}

// Create insere a conferência. A constraint UNIQUE (movimentacao_id, fase)
// derruba inserções concorrentes da mesma fase; o 23505 vira
// ErrConferenciaDuplicada.
func (r *ConferenciaRepo) Create(c *entity.Conferencia) error {
	query := `
		INSERT INTO conferencias (id, movimentacao_id, qtd_conferida, conferido_por, modo, fase, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		c.ID, c.MovimentacaoID, c.QtdConferida, c.ConferidoPor, c.Modo, c.Fase, c.CriadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConferenciaDuplicada
		}
		return fmt.Errorf("insert conferencia: %w", err)
	}
	return nil
}

// ExistsByFase diz se já existe conferência para o par (movimentação, fase).
func (r *ConferenciaRepo) ExistsByFase(movimentacaoID string, fase int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM conferencias WHERE movimentacao_id = $1 AND fase = $2)`
	var exists bool
	if err := r.db.QueryRow(context.Background(), query, movimentacaoID, fase).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists conferencia: %w", err)
	}
	return exists, nil
}

// ListByMovimentacao lista as conferências da movimentação por fase asc.
func (r *ConferenciaRepo) ListByMovimentacao(movimentacaoID string) ([]*entity.Conferencia, error) {
	query := `
		SELECT id, movimentacao_id, qtd_conferida, conferido_por, modo, fase, criado_em
		FROM conferencias WHERE movimentacao_id = $1 ORDER BY fase ASC`
	rows, err := r.db.Query(context.Background(), query, movimentacaoID)
	if err != nil {
		return nil, fmt.Errorf("list conferencias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Conferencia
	for rows.Next() {
		var c entity.Conferencia
		if err := rows.Scan(&c.ID, &c.MovimentacaoID, &c.QtdConferida, &c.ConferidoPor, &c.Modo, &c.Fase, &c.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan conferencia: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
