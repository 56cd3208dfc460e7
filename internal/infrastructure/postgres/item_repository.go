package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo leitura do catálogo de itens.
type ItemRepo struct {
	db querier
}

// NewItemRepository constrói o adaptador.
func NewItemRepository(db querier) *ItemRepo {
	return &ItemRepo{db: db}
}

// GetByID obtém um item; (nil, nil) quando não existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT id, nome, ativo FROM itens WHERE id = $1`
	var it entity.Item
	err := r.db.QueryRow(context.Background(), query, id).Scan(&it.ID, &it.Nome, &it.Ativo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by id: %w", err)
	}
	return &it, nil
}

// ListAtivos lista os itens ativos ordenados por nome.
func (r *ItemRepo) ListAtivos() ([]*entity.Item, error) {
	query := `SELECT id, nome, ativo FROM itens WHERE ativo = true ORDER BY nome ASC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list itens: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Nome, &it.Ativo); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
