// Package estoque concentra as regras puras do fluxo de conferência:
// aritmética de quantidades e o ciclo de status das movimentações.
package estoque

import "strconv"

// Status possíveis de uma movimentação.
//
//	PENDENTE ──conferir──▶ APROVADO (terminal)
//	    │                      ▲
//	    └──▶ DIVERGENTE ──ajustar──▶ RECONFERIR ──conferir──┘
//
// RECONFERIR volta para a fila de pendências para a fase 2.
const (
	StatusPendente   = "PENDENTE"
	StatusReconferir = "RECONFERIR"
	StatusDivergente = "DIVERGENTE"
	StatusAprovado   = "APROVADO"
)

// StatusValido diz se a string é um status conhecido.
func StatusValido(s string) bool {
	switch s {
	case StatusPendente, StatusReconferir, StatusDivergente, StatusAprovado:
		return true
	}
	return false
}

// MaxDigitos limite de dígitos aceitos nos campos numéricos de formulário.
const MaxDigitos = 9

// OnlyDigits remove tudo que não for dígito e trunca em maxLen.
// maxLen <= 0 aplica MaxDigitos.
func OnlyDigits(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = MaxDigitos
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s) && len(out) < maxLen; i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// ParseUnidades converte um campo digitado em inteiro não-negativo.
// Valores vazios ou não numéricos contam como zero, mesma política das
// quantidades digitadas no formulário.
func ParseUnidades(s string) int {
	digits := OnlyDigits(s, MaxDigitos)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// TotalUnidades calcula o total declarado: caixas × qtd por caixa + avulsas.
func TotalUnidades(caixas, qtdPorCaixa, avulsas int) int {
	return caixas*qtdPorCaixa + avulsas
}

// FaseConferencia devolve a fase da próxima conferência a partir do status
// atual: 2 quando a movimentação voltou de um ajuste, 1 caso contrário.
func FaseConferencia(status string) int {
	if status == StatusReconferir {
		return 2
	}
	return 1
}

// PodeConferir diz se o status atual admite uma conferência.
// APROVADO é terminal; DIVERGENTE precisa passar por ajuste antes.
func PodeConferir(status string) bool {
	return status == StatusPendente || status == StatusReconferir
}

// PodeAjustar diz se o status atual admite ajuste.
func PodeAjustar(status string) bool {
	return status == StatusDivergente
}

// StatusAposConferencia aplica a regra de aprovação: igualdade inteira exata,
// sem banda de tolerância.
func StatusAposConferencia(qtdConferida, qtdInformada int) string {
	if qtdConferida == qtdInformada {
		return StatusAprovado
	}
	return StatusDivergente
}
