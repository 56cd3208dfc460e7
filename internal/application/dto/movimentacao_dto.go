package dto

import "time"

// RegistrarMovimentacaoRequest entrada de POST /api/movimentacoes.
// Os campos numéricos chegam como strings digitadas; caracteres não numéricos
// contam como zero (estoque.ParseUnidades).
type RegistrarMovimentacaoRequest struct {
	ItemID          string `json:"item_id" validate:"required,uuid"`
	Lote            string `json:"lote" validate:"required"`
	Caixas          string `json:"caixas"`
	QtdPorCaixa     string `json:"qtd_por_caixa"`
	UnidadesAvulsas string `json:"unidades_avulsas"`
}

// ConferirRequest entrada de POST /api/movimentacoes/:id/conferir.
type ConferirRequest struct {
	QtdConferida string `json:"qtd_conferida" validate:"required"`
}

// AjustarRequest entrada de POST /api/movimentacoes/:id/ajustar.
type AjustarRequest struct {
	Caixas          string `json:"caixas"`
	QtdPorCaixa     string `json:"qtd_por_caixa"`
	UnidadesAvulsas string `json:"unidades_avulsas"`
	Motivo          string `json:"motivo" validate:"required"`
}

// MovimentacaoResponse linha de movimentação nas listagens e no detalhe.
type MovimentacaoResponse struct {
	ID              string    `json:"id"`
	Item            string    `json:"item"`
	Lote            string    `json:"lote"`
	QtdInformada    int       `json:"qtd_informada"`
	Caixas          int       `json:"caixas"`
	QtdPorCaixa     int       `json:"qtd_por_caixa"`
	UnidadesAvulsas int       `json:"unidades_avulsas"`
	Status          string    `json:"status"`
	CriadoPor       string    `json:"criado_por"`
	CriadoEm        time.Time `json:"criado_em"`
}

// ConferenciaResponse linha de conferência no detalhe.
type ConferenciaResponse struct {
	ID             string    `json:"id"`
	MovimentacaoID string    `json:"movimentacao_id"`
	QtdConferida   int       `json:"qtd_conferida"`
	ConferidoPor   string    `json:"conferido_por"`
	Modo           string    `json:"modo"`
	Fase           int       `json:"fase"`
	CriadoEm       time.Time `json:"criado_em"`
}

// AjusteResponse linha de ajuste no detalhe.
type AjusteResponse struct {
	ID             string    `json:"id"`
	MovimentacaoID string    `json:"movimentacao_id"`
	QtdAntiga      int       `json:"qtd_antiga"`
	QtdNova        int       `json:"qtd_nova"`
	Motivo         string    `json:"motivo"`
	AjustadoPor    string    `json:"ajustado_por"`
	Tipo           string    `json:"tipo"`
	CriadoEm       time.Time `json:"criado_em"`
}

// MovimentacaoDetalheResponse movimentação com seu histórico de conferências
// e ajustes (página de detalhe).
type MovimentacaoDetalheResponse struct {
	Movimentacao MovimentacaoResponse  `json:"movimentacao"`
	Conferencias []ConferenciaResponse `json:"conferencias"`
	Ajustes      []AjusteResponse      `json:"ajustes"`
}

// ConferirResponse resultado da conferência: o status decidido.
type ConferirResponse struct {
	Status string `json:"status"`
	Fase   int    `json:"fase"`
}

// ItemResponse entrada do catálogo para o formulário de registro.
type ItemResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}
