package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquelab/confere-api/internal/application/dto"
	"github.com/estoquelab/confere-api/internal/application/estoque"
	"github.com/estoquelab/confere-api/internal/application/relatorio"
	"github.com/estoquelab/confere-api/internal/domain"
)

// RelatorioHandler exportação do histórico em PDF.
type RelatorioHandler struct {
	uc *relatorio.PDFUseCase
}

// NewRelatorioHandler constrói o handler de relatórios.
func NewRelatorioHandler(uc *relatorio.PDFUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// HistoricoPDF godoc
// @Summary      PDF do histórico de movimentações (ADMIN)
// @Tags         relatorios
// @Produce      application/pdf
// @Param        status  query  string  false  "PENDENTE|RECONFERIR|DIVERGENTE|APROVADO|TODOS"
// @Param        dia     query  string  false  "YYYY-MM-DD (fuso de São Paulo)"
// @Param        busca   query  string  false  "substring de item/lote"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/movimentacoes [get]
func (h *RelatorioHandler) HistoricoPDF(c *fiber.Ctx) error {
	filtro := estoque.FiltroHistoricoInput{
		Status: c.Query("status"),
		Dia:    c.Query("dia"),
		Busca:  c.Query("busca"),
	}
	pdfBytes, err := h.uc.GerarHistorico(c.UserContext(), filtro)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status ou dia inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="historico-movimentacoes.pdf"`)
	return c.Send(pdfBytes)
}
