package repository

import "github.com/estoquelab/confere-api/internal/domain/entity"

// ConferenciaRepository porta de persistência para conferências.
type ConferenciaRepository interface {
	// Create insere a conferência. Devolve domain.ErrConferenciaDuplicada se
	// já existir uma para o mesmo par (movimentação, fase); a constraint
	// UNIQUE do banco é a garantia final contra inserções concorrentes.
	Create(c *entity.Conferencia) error
	ExistsByFase(movimentacaoID string, fase int) (bool, error)
	ListByMovimentacao(movimentacaoID string) ([]*entity.Conferencia, error)
}
