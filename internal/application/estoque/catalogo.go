package estoque

import (
	"context"

	"github.com/estoquelab/confere-api/internal/application/dto"
	"github.com/estoquelab/confere-api/internal/domain/repository"
)

// CatalogoUseCase leitura do catálogo de itens para o formulário de registro.
type CatalogoUseCase struct {
	itemRepo repository.ItemRepository
}

// NewCatalogoUseCase constrói o caso de uso.
func NewCatalogoUseCase(itemRepo repository.ItemRepository) *CatalogoUseCase {
	return &CatalogoUseCase{itemRepo: itemRepo}
}

// ListarAtivos devolve os itens ativos ordenados por nome.
func (uc *CatalogoUseCase) ListarAtivos(ctx context.Context) ([]dto.ItemResponse, error) {
	itens, err := uc.itemRepo.ListAtivos()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(itens))
	for _, it := range itens {
		out = append(out, dto.ItemResponse{ID: it.ID, Nome: it.Nome})
	}
	return out, nil
}
