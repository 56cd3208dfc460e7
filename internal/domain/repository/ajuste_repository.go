package repository

import "github.com/estoquelab/confere-api/internal/domain/entity"

// AjusteRepository porta de persistência para ajustes (append-only).
type AjusteRepository interface {
	Create(a *entity.Ajuste) error
	ListByMovimentacao(movimentacaoID string) ([]*entity.Ajuste, error)
}
