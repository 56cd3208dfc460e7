// Package relatorio gera o relatório em PDF do histórico de movimentações
// (exportação do ADMIN).
package relatorio

import (
	"context"

	"github.com/estoquelab/confere-api/internal/application/dto"
	appestoque "github.com/estoquelab/confere-api/internal/application/estoque"
)

// HistoricoPDFGenerator porta de geração do PDF (Maroto na infra).
type HistoricoPDFGenerator interface {
	GerarHistoricoPDF(ctx context.Context, filtro appestoque.FiltroHistoricoInput, linhas []dto.MovimentacaoResponse) ([]byte, error)
}

// PDFUseCase consulta o histórico e delega a renderização ao gerador.
type PDFUseCase struct {
	consulta *appestoque.ConsultaUseCase
	gen      HistoricoPDFGenerator
}

// NewPDFUseCase constrói o caso de uso.
func NewPDFUseCase(consulta *appestoque.ConsultaUseCase, gen HistoricoPDFGenerator) *PDFUseCase {
	return &PDFUseCase{consulta: consulta, gen: gen}
}

// GerarHistorico aplica os mesmos filtros da tela de histórico e devolve os
// bytes do PDF.
func (uc *PDFUseCase) GerarHistorico(ctx context.Context, filtro appestoque.FiltroHistoricoInput) ([]byte, error) {
	linhas, err := uc.consulta.Historico(ctx, filtro)
	if err != nil {
		return nil, err
	}
	return uc.gen.GerarHistoricoPDF(ctx, filtro, linhas)
}
