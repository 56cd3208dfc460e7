package repository

import "github.com/estoquelab/confere-api/internal/domain/entity"

// ItemRepository porta de leitura do catálogo de itens.
type ItemRepository interface {
	GetByID(id string) (*entity.Item, error)
	ListAtivos() ([]*entity.Item, error)
}
