package entity

import "time"

// Modos de entrada da quantidade conferida.
const (
	ModoDigitado = "DIGITADO"
)

// Fases de conferência: 1 = primeira contagem, 2 = reconferência pós-ajuste.
const (
	FasePrimeira      = 1
	FaseReconferencia = 2
)

// Conferencia é a contagem independente de uma movimentação, feita por alguém
// que não a criou. No máximo uma por (movimentação, fase), garantido por
// constraint UNIQUE no banco.
type Conferencia struct {
	ID             string
	MovimentacaoID string
	QtdConferida   int
	ConferidoPor   string
	Modo           string
	Fase           int
	CriadoEm       time.Time
}
