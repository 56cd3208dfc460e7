package estoque

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/estoquelab/confere-api/internal/application/dto"
	"github.com/estoquelab/confere-api/internal/domain"
	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/internal/domain/estoque"
	"github.com/estoquelab/confere-api/internal/domain/repository"
)

// ConferirUseCase registra a contagem independente de uma movimentação e
// decide o status resultante, tudo numa única transação.
type ConferirUseCase struct {
	txRunner TxRunner
}

// NewConferirUseCase constrói o caso de uso.
func NewConferirUseCase(txRunner TxRunner) *ConferirUseCase {
	return &ConferirUseCase{txRunner: txRunner}
}

// Conferir aplica a conferência:
//
//   - regra de ouro: quem criou a movimentação não pode conferi-la;
//   - fase = 2 se o status atual é RECONFERIR, senão 1;
//   - no máximo uma conferência por (movimentação, fase): pré-checagem
//     amigável mais a constraint UNIQUE do banco para o caso concorrente;
//   - qtd conferida == qtd informada → APROVADO (terminal); diferente → DIVERGENTE.
func (uc *ConferirUseCase) Conferir(ctx context.Context, movID, userID string, in dto.ConferirRequest) (*dto.ConferirResponse, error) {
	qtd := estoque.ParseUnidades(in.QtdConferida)
	if qtd <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var out dto.ConferirResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		confRepo repository.ConferenciaRepository,
		_ repository.AjusteRepository,
	) error {
		mov, err := movRepo.GetByID(movID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if mov.CriadoPor == userID {
			return domain.ErrAutoConferencia
		}
		if !estoque.PodeConferir(mov.Status) {
			return domain.ErrConflict
		}

		fase := estoque.FaseConferencia(mov.Status)
		exists, err := confRepo.ExistsByFase(mov.ID, fase)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrConferenciaDuplicada
		}

		conf := &entity.Conferencia{
			ID:             uuid.New().String(),
			MovimentacaoID: mov.ID,
			QtdConferida:   qtd,
			ConferidoPor:   userID,
			Modo:           entity.ModoDigitado,
			Fase:           fase,
			CriadoEm:       time.Now(),
		}
		if err := confRepo.Create(conf); err != nil {
			return err
		}

		novoStatus := estoque.StatusAposConferencia(qtd, mov.QtdInformada)
		if err := movRepo.UpdateStatus(mov.ID, novoStatus); err != nil {
			return err
		}

		out = dto.ConferirResponse{Status: novoStatus, Fase: fase}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
