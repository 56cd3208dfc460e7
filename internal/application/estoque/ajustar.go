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

// AjustarUseCase corrige a quantidade declarada de uma movimentação DIVERGENTE
// e a devolve à fila de pendências como RECONFERIR. Grava o ajuste auditável e
// a atualização da movimentação na mesma transação.
type AjustarUseCase struct {
	txRunner TxRunner
}

// NewAjustarUseCase constrói o caso de uso.
func NewAjustarUseCase(txRunner TxRunner) *AjustarUseCase {
	return &AjustarUseCase{txRunner: txRunner}
}

// Ajustar aplica o ajuste. Motivo é obrigatório; o novo total precisa ser
// positivo; só movimentações DIVERGENTES podem ser ajustadas.
func (uc *AjustarUseCase) Ajustar(ctx context.Context, movID, userID string, in dto.AjustarRequest) (*dto.MovimentacaoResponse, error) {
	motivo := strings.TrimSpace(in.Motivo)
	if motivo == "" {
		return nil, domain.ErrMotivoObrigatorio
	}

	caixas := estoque.ParseUnidades(in.Caixas)
	qtdPorCaixa := estoque.ParseUnidades(in.QtdPorCaixa)
	avulsas := estoque.ParseUnidades(in.UnidadesAvulsas)

	total := estoque.TotalUnidades(caixas, qtdPorCaixa, avulsas)
	if total <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var out dto.MovimentacaoResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		_ repository.ConferenciaRepository,
		ajusteRepo repository.AjusteRepository,
	) error {
		mov, err := movRepo.GetByID(movID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if !estoque.PodeAjustar(mov.Status) {
			return domain.ErrConflict
		}

		ajuste := &entity.Ajuste{
			ID:             uuid.New().String(),
			MovimentacaoID: mov.ID,
			QtdAntiga:      mov.QtdInformada,
			QtdNova:        total,
			Motivo:         motivo,
			AjustadoPor:    userID,
			Tipo:           entity.AjusteTipoOperador,
			CriadoEm:       time.Now(),
		}
		if err := ajusteRepo.Create(ajuste); err != nil {
			return err
		}

		mov.Caixas = caixas
		mov.QtdPorCaixa = qtdPorCaixa
		mov.UnidadesAvulsas = avulsas
		mov.QtdInformada = total
		mov.Status = estoque.StatusReconferir
		if err := movRepo.UpdateQuantidades(mov); err != nil {
			return err
		}

		out = toMovimentacaoResponse(mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
