package estoque

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/estoquelab/confere-api/internal/application/dto"
	"github.com/estoquelab/confere-api/internal/domain"
	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/internal/domain/estoque"
	"github.com/estoquelab/confere-api/internal/domain/repository"
)

// RegistrarUseCase cria movimentações com status inicial PENDENTE.
type RegistrarUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovimentacaoRepository
}

// NewRegistrarUseCase constrói o caso de uso.
func NewRegistrarUseCase(itemRepo repository.ItemRepository, movRepo repository.MovimentacaoRepository) *RegistrarUseCase {
	return &RegistrarUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// Registrar valida e persiste uma nova movimentação.
//
// Pré-condições:
//   - item do catálogo existe e está ativo;
//   - lote não vazio (só dígitos);
//   - total calculado (caixas × qtd por caixa + avulsas) estritamente positivo.
func (uc *RegistrarUseCase) Registrar(ctx context.Context, userID string, in dto.RegistrarMovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if !item.Ativo {
		return nil, domain.ErrInvalidInput
	}

	lote := estoque.OnlyDigits(strings.TrimSpace(in.Lote), 0)
	if lote == "" {
		return nil, domain.ErrInvalidInput
	}

	caixas := estoque.ParseUnidades(in.Caixas)
	qtdPorCaixa := estoque.ParseUnidades(in.QtdPorCaixa)
	avulsas := estoque.ParseUnidades(in.UnidadesAvulsas)

	total := estoque.TotalUnidades(caixas, qtdPorCaixa, avulsas)
	if total <= 0 {
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.Movimentacao{
		ID:              uuid.New().String(),
		Item:            item.Nome,
		Lote:            lote,
		QtdInformada:    total,
		Caixas:          caixas,
		QtdPorCaixa:     qtdPorCaixa,
		UnidadesAvulsas: avulsas,
		Status:          estoque.StatusPendente,
		CriadoPor:       userID,
		CriadoEm:        time.Now(),
	}
	if err := uc.movRepo.Create(mov); err != nil {
		return nil, err
	}
	resp := toMovimentacaoResponse(mov)
	return &resp, nil
}
