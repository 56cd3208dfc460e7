package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquelab/confere-api/internal/application/dto"
	"github.com/estoquelab/confere-api/internal/application/estoque"
	"github.com/estoquelab/confere-api/internal/domain"
)

// MovimentacaoHandler fluxo principal: registro, filas, detalhe, histórico,
// conferência e ajuste.
type MovimentacaoHandler struct {
	registrar *estoque.RegistrarUseCase
	conferir  *estoque.ConferirUseCase
	ajustar   *estoque.AjustarUseCase
	consulta  *estoque.ConsultaUseCase
}

// NewMovimentacaoHandler constrói o handler de movimentações.
func NewMovimentacaoHandler(
	registrar *estoque.RegistrarUseCase,
	conferir *estoque.ConferirUseCase,
	ajustar *estoque.AjustarUseCase,
	consulta *estoque.ConsultaUseCase,
) *MovimentacaoHandler {
	return &MovimentacaoHandler{
		registrar: registrar,
		conferir:  conferir,
		ajustar:   ajustar,
		consulta:  consulta,
	}
}

// Registrar godoc
// @Summary      Registrar entrada de estoque
// @Tags         movimentacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentacaoRequest  true  "item_id, lote, caixas, qtd_por_caixa, unidades_avulsas"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovimentacaoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.registrar.Registrar(c.UserContext(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "item do catálogo não encontrado"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item inativo, lote vazio ou quantidade total igual a zero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Pendentes godoc
// @Summary      Fila de conferência (PENDENTE + RECONFERIR)
// @Tags         movimentacoes
// @Produce      json
// @Success      200  {array}  dto.MovimentacaoResponse
// @Router       /api/movimentacoes/pendentes [get]
func (h *MovimentacaoHandler) Pendentes(c *fiber.Ctx) error {
	out, err := h.consulta.Pendentes(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Divergentes godoc
// @Summary      Fila de ajuste (DIVERGENTE)
// @Tags         movimentacoes
// @Produce      json
// @Success      200  {array}  dto.MovimentacaoResponse
// @Router       /api/movimentacoes/divergentes [get]
func (h *MovimentacaoHandler) Divergentes(c *fiber.Ctx) error {
	out, err := h.consulta.Divergentes(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Detalhe godoc
// @Summary      Movimentação com conferências e ajustes
// @Tags         movimentacoes
// @Produce      json
// @Param        id   path      string  true  "id da movimentação"
// @Success      200  {object}  dto.MovimentacaoDetalheResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/{id} [get]
func (h *MovimentacaoHandler) Detalhe(c *fiber.Ctx) error {
	out, err := h.consulta.Detalhe(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimentação não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Historico godoc
// @Summary      Histórico com filtros (ADMIN)
// @Tags         movimentacoes
// @Produce      json
// @Param        status  query  string  false  "PENDENTE|RECONFERIR|DIVERGENTE|APROVADO|TODOS"
// @Param        dia     query  string  false  "YYYY-MM-DD (fuso de São Paulo)"
// @Param        busca   query  string  false  "substring de item/lote"
// @Success      200  {array}   dto.MovimentacaoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [get]
func (h *MovimentacaoHandler) Historico(c *fiber.Ctx) error {
	filtro := estoque.FiltroHistoricoInput{
		Status: c.Query("status"),
		Dia:    c.Query("dia"),
		Busca:  c.Query("busca"),
	}
	out, err := h.consulta.Historico(c.UserContext(), filtro)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status ou dia inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Conferir godoc
// @Summary      Conferir uma movimentação
// @Tags         movimentacoes
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "id da movimentação"
// @Param        body  body  dto.ConferirRequest  true  "qtd_conferida"
// @Success      200   {object}  dto.ConferirResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/{id}/conferir [post]
func (h *MovimentacaoHandler) Conferir(c *fiber.Ctx) error {
	var in dto.ConferirRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.conferir.Conferir(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "qtd_conferida precisa ser um número maior que zero"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimentação não encontrada"})
		case domain.ErrAutoConferencia:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "AUTO_CONFERENCIA", Message: "quem registrou a movimentação não pode conferi-la"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ESTADO_INVALIDO", Message: "a movimentação não está aguardando conferência"})
		case domain.ErrConferenciaDuplicada:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFERENCIA_DUPLICADA", Message: "esta fase já foi conferida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Ajustar godoc
// @Summary      Ajustar uma movimentação divergente
// @Tags         movimentacoes
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "id da movimentação"
// @Param        body  body  dto.AjustarRequest  true  "caixas, qtd_por_caixa, unidades_avulsas, motivo"
// @Success      200   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/{id}/ajustar [post]
func (h *MovimentacaoHandler) Ajustar(c *fiber.Ctx) error {
	var in dto.AjustarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.ajustar.Ajustar(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrMotivoObrigatorio:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MOTIVO_OBRIGATORIO", Message: "motivo do ajuste é obrigatório"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "a nova quantidade total precisa ser maior que zero"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimentação não encontrada"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ESTADO_INVALIDO", Message: "só movimentações divergentes podem ser ajustadas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
