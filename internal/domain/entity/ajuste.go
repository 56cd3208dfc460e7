package entity

import "time"

// Tipos de ajuste registrados.
const (
	AjusteTipoOperador = "OPERADOR"
)

// Ajuste é uma correção auditável da quantidade declarada de uma movimentação,
// com justificativa obrigatória. Linhas de ajuste são append-only.
type Ajuste struct {
	ID             string
	MovimentacaoID string
	QtdAntiga      int
	QtdNova        int
	Motivo         string
	AjustadoPor    string
	Tipo           string
	CriadoEm       time.Time
}
