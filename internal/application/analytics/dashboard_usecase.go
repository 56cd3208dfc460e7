// Package analytics contém os casos de uso de leitura agregada: o dashboard
// de movimentações dos últimos dias.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/estoquelab/confere-api/internal/application/dto"
	"github.com/estoquelab/confere-api/internal/domain/estoque"
	"github.com/estoquelab/confere-api/internal/domain/repository"
)

// dashboardDias janela do dashboard: hoje mais os 6 dias anteriores.
const dashboardDias = 7

// DashboardUseCase monta o resumo dos últimos 7 dias a partir das
// movimentações cruas; a agregação por dia/status acontece aqui, não no SQL.
type DashboardUseCase struct {
	movRepo repository.MovimentacaoRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(movRepo repository.MovimentacaoRepository) *DashboardUseCase {
	return &DashboardUseCase{movRepo: movRepo}
}

// GetResumo devolve os totais do período e a série por dia (asc).
func (uc *DashboardUseCase) GetResumo(ctx context.Context) (*dto.DashboardResponse, error) {
	agora := time.Now().In(estoque.FusoBrasil)
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, estoque.FusoBrasil)
	inicio := hoje.AddDate(0, 0, -(dashboardDias - 1))

	movs, err := uc.movRepo.ListDesde(inicio)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{}
	out.Periodo.Inicio = inicio.Format("2006-01-02")
	out.Periodo.Fim = hoje.Format("2006-01-02")

	porDia := make(map[string]*dto.DashboardDiaDTO)
	for _, m := range movs {
		dia := m.CriadoEm.In(estoque.FusoBrasil).Format("2006-01-02")
		d, ok := porDia[dia]
		if !ok {
			d = &dto.DashboardDiaDTO{Dia: dia}
			porDia[dia] = d
		}
		contar(&out.Totais, m.Status)
		contar(&d.ContagemStatus, m.Status)
	}

	out.PorDia = make([]dto.DashboardDiaDTO, 0, len(porDia))
	for _, d := range porDia {
		out.PorDia = append(out.PorDia, *d)
	}
	sort.Slice(out.PorDia, func(i, j int) bool {
		return out.PorDia[i].Dia < out.PorDia[j].Dia
	})
	return out, nil
}

func contar(c *dto.ContagemStatus, status string) {
	c.Total++
	switch status {
	case estoque.StatusPendente:
		c.Pendentes++
	case estoque.StatusReconferir:
		c.Reconferir++
	case estoque.StatusDivergente:
		c.Divergentes++
	case estoque.StatusAprovado:
		c.Aprovados++
	}
}
