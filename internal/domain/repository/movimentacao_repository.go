package repository

import (
	"time"

	"github.com/estoquelab/confere-api/internal/domain/entity"
)

// FiltroHistorico parâmetros da consulta de histórico (somente ADMIN).
// Status vazio = todos; Inicio/Fim zero = sem recorte de dia.
type FiltroHistorico struct {
	Status string
	Inicio time.Time
	Fim    time.Time
	Limit  int
}

// MovimentacaoRepository porta de persistência para movimentações.
type MovimentacaoRepository interface {
	Create(m *entity.Movimentacao) error
	GetByID(id string) (*entity.Movimentacao, error)
	// ListByStatus devolve as movimentações cujo status está na lista,
	// ordenadas por criado_em desc.
	ListByStatus(status []string) ([]*entity.Movimentacao, error)
	// Buscar consulta o histórico com filtros e limite.
	Buscar(f FiltroHistorico) ([]*entity.Movimentacao, error)
	// ListDesde devolve movimentações criadas a partir do instante dado,
	// ordenadas por criado_em asc (dashboard).
	ListDesde(desde time.Time) ([]*entity.Movimentacao, error)
	// UpdateStatus troca apenas o status.
	UpdateStatus(id, status string) error
	// UpdateQuantidades grava a nova decomposição de quantidade mais o status
	// (usado pelo ajuste).
	UpdateQuantidades(m *entity.Movimentacao) error
}
