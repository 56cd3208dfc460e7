package entity

import "time"

// Movimentacao é um evento de entrada de estoque aguardando (ou já tendo
// passado por) conferência. Nunca é excluída pela aplicação.
type Movimentacao struct {
	ID              string
	Item            string // nome do item no momento do registro
	Lote            string
	QtdInformada    int // sempre caixas*qtd_por_caixa + unidades_avulsas
	Caixas          int
	QtdPorCaixa     int
	UnidadesAvulsas int
	Status          string // ver estoque.Status*
	CriadoPor       string
	CriadoEm        time.Time
}
