// Package pdf implementa a geração do relatório de histórico de
// movimentações em PDF (exportação do ADMIN), usando Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + período/filtros + data de geração          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Item | Lote | Total (un) | Status | Criado em       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: total de linhas                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/estoquelab/confere-api/internal/application/dto"
	appestoque "github.com/estoquelab/confere-api/internal/application/estoque"
	"github.com/estoquelab/confere-api/internal/application/relatorio"
	domestoque "github.com/estoquelab/confere-api/internal/domain/estoque"
)

var _ relatorio.HistoricoPDFGenerator = (*MarotoHistoricoGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoHistoricoGenerator implementa relatorio.HistoricoPDFGenerator.
type MarotoHistoricoGenerator struct{}

// NewMarotoHistoricoGenerator constrói o gerador.
func NewMarotoHistoricoGenerator() *MarotoHistoricoGenerator { return &MarotoHistoricoGenerator{} }

// GerarHistoricoPDF gera o PDF e devolve seus bytes.
func (g *MarotoHistoricoGenerator) GerarHistoricoPDF(
	_ context.Context,
	filtro appestoque.FiltroHistoricoInput,
	linhas []dto.MovimentacaoResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Histórico de Movimentações", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(filtro))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(linhas) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Total de movimentações: %d", len(linhas)),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2},
		)),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título à esquerda, filtros aplicados e data de geração à direita.
func headerRow(filtro appestoque.FiltroHistoricoInput) core.Row {
	gerado := time.Now().In(domestoque.FusoBrasil).Format("02/01/2006 15:04")

	filtros := "Todos os status"
	if filtro.Status != "" && filtro.Status != "TODOS" {
		filtros = "Status: " + filtro.Status
	}
	if filtro.Dia != "" {
		filtros += "   |   Dia: " + filtro.Dia
	}
	if filtro.Busca != "" {
		filtros += "   |   Busca: " + filtro.Busca
	}

	return row.New(16).Add(
		col.New(7).Add(
			text.New("Histórico de Movimentações", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(filtros, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Gerado em: "+gerado, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Item", 4, align.Left),
		h("Lote", 2, align.Left),
		h("Total (un)", 2, align.Right),
		h("Status", 2, align.Center),
		h("Criado em", 2, align.Right),
	)
}

// tableRows: uma linha por movimentação.
func tableRows(linhas []dto.MovimentacaoResponse) []core.Row {
	result := make([]core.Row, 0, len(linhas))
	for _, l := range linhas {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(l.Item, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.Lote, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", l.QtdInformada),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(l.Status, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(
				l.CriadoEm.In(domestoque.FusoBrasil).Format("02/01 15:04"),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}
