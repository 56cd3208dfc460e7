package estoque

import (
	"context"
	"strings"
	"time"

	"github.com/estoquelab/confere-api/internal/application/dto"
	"github.com/estoquelab/confere-api/internal/domain"
	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/internal/domain/estoque"
	"github.com/estoquelab/confere-api/internal/domain/repository"
)

// limite padrão de linhas do histórico.
const historicoLimit = 200

// FiltroHistoricoInput filtros crus vindos da query string.
type FiltroHistoricoInput struct {
	Status string // um status ou vazio/"TODOS"
	Dia    string // YYYY-MM-DD no fuso de São Paulo
	Busca  string // substring de item+lote, case-insensitive
}

// ConsultaUseCase consultas de leitura do fluxo: pendências, divergências,
// histórico e detalhe de movimentação.
type ConsultaUseCase struct {
	movRepo    repository.MovimentacaoRepository
	confRepo   repository.ConferenciaRepository
	ajusteRepo repository.AjusteRepository
}

// NewConsultaUseCase constrói o caso de uso.
func NewConsultaUseCase(
	movRepo repository.MovimentacaoRepository,
	confRepo repository.ConferenciaRepository,
	ajusteRepo repository.AjusteRepository,
) *ConsultaUseCase {
	return &ConsultaUseCase{movRepo: movRepo, confRepo: confRepo, ajusteRepo: ajusteRepo}
}

// Pendentes fila de conferência: PENDENTE mais RECONFERIR (fase 2), mais
// recentes primeiro.
func (uc *ConsultaUseCase) Pendentes(ctx context.Context) ([]dto.MovimentacaoResponse, error) {
	movs, err := uc.movRepo.ListByStatus([]string{estoque.StatusPendente, estoque.StatusReconferir})
	if err != nil {
		return nil, err
	}
	return toMovimentacaoResponses(movs), nil
}

// Divergentes fila de ajuste: somente DIVERGENTE.
func (uc *ConsultaUseCase) Divergentes(ctx context.Context) ([]dto.MovimentacaoResponse, error) {
	movs, err := uc.movRepo.ListByStatus([]string{estoque.StatusDivergente})
	if err != nil {
		return nil, err
	}
	return toMovimentacaoResponses(movs), nil
}

// Detalhe devolve a movimentação com suas conferências e ajustes.
func (uc *ConsultaUseCase) Detalhe(ctx context.Context, id string) (*dto.MovimentacaoDetalheResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	confs, err := uc.confRepo.ListByMovimentacao(id)
	if err != nil {
		return nil, err
	}
	ajustes, err := uc.ajusteRepo.ListByMovimentacao(id)
	if err != nil {
		return nil, err
	}

	out := &dto.MovimentacaoDetalheResponse{
		Movimentacao: toMovimentacaoResponse(mov),
		Conferencias: make([]dto.ConferenciaResponse, 0, len(confs)),
		Ajustes:      make([]dto.AjusteResponse, 0, len(ajustes)),
	}
	for _, c := range confs {
		out.Conferencias = append(out.Conferencias, dto.ConferenciaResponse{
			ID:             c.ID,
			MovimentacaoID: c.MovimentacaoID,
			QtdConferida:   c.QtdConferida,
			ConferidoPor:   c.ConferidoPor,
			Modo:           c.Modo,
			Fase:           c.Fase,
			CriadoEm:       c.CriadoEm,
		})
	}
	for _, a := range ajustes {
		out.Ajustes = append(out.Ajustes, dto.AjusteResponse{
			ID:             a.ID,
			MovimentacaoID: a.MovimentacaoID,
			QtdAntiga:      a.QtdAntiga,
			QtdNova:        a.QtdNova,
			Motivo:         a.Motivo,
			AjustadoPor:    a.AjustadoPor,
			Tipo:           a.Tipo,
			CriadoEm:       a.CriadoEm,
		})
	}
	return out, nil
}

// Historico consulta com filtros de status, dia e busca textual.
// Status e dia vão para o SQL; a busca textual é aplicada sobre as linhas já
// carregadas, dentro do limite.
func (uc *ConsultaUseCase) Historico(ctx context.Context, in FiltroHistoricoInput) ([]dto.MovimentacaoResponse, error) {
	filtro := repository.FiltroHistorico{Limit: historicoLimit}

	status := strings.ToUpper(strings.TrimSpace(in.Status))
	if status != "" && status != "TODOS" {
		if !estoque.StatusValido(status) {
			return nil, domain.ErrInvalidInput
		}
		filtro.Status = status
	}

	if dia := strings.TrimSpace(in.Dia); dia != "" {
		inicio, err := time.ParseInLocation("2006-01-02", dia, estoque.FusoBrasil)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filtro.Inicio = inicio
		filtro.Fim = inicio.AddDate(0, 0, 1)
	}

	movs, err := uc.movRepo.Buscar(filtro)
	if err != nil {
		return nil, err
	}

	if busca := strings.ToLower(strings.TrimSpace(in.Busca)); busca != "" {
		filtradas := movs[:0]
		for _, m := range movs {
			alvo := strings.ToLower(m.Item + " " + m.Lote)
			if strings.Contains(alvo, busca) {
				filtradas = append(filtradas, m)
			}
		}
		movs = filtradas
	}

	return toMovimentacaoResponses(movs), nil
}

func toMovimentacaoResponse(m *entity.Movimentacao) dto.MovimentacaoResponse {
	return dto.MovimentacaoResponse{
		ID:              m.ID,
		Item:            m.Item,
		Lote:            m.Lote,
		QtdInformada:    m.QtdInformada,
		Caixas:          m.Caixas,
		QtdPorCaixa:     m.QtdPorCaixa,
		UnidadesAvulsas: m.UnidadesAvulsas,
		Status:          m.Status,
		CriadoPor:       m.CriadoPor,
		CriadoEm:        m.CriadoEm,
	}
}

func toMovimentacaoResponses(movs []*entity.Movimentacao) []dto.MovimentacaoResponse {
	out := make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovimentacaoResponse(m))
	}
	return out
}
