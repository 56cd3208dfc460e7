package estoque

import (
	"context"

	"github.com/estoquelab/confere-api/internal/domain/repository"
)

// TxRunner executa o callback com repositórios atados a uma mesma transação.
// Conferir e Ajustar escrevem em duas tabelas; sem transação um falho no meio
// deixaria a movimentação num estado intermediário.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		confRepo repository.ConferenciaRepository,
		ajusteRepo repository.AjusteRepository,
	) error) error
}
