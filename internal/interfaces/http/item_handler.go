package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquelab/confere-api/internal/application/dto"
	"github.com/estoquelab/confere-api/internal/application/estoque"
)

// ItemHandler catálogo de itens.
type ItemHandler struct {
	uc *estoque.CatalogoUseCase
}

// NewItemHandler constrói o handler do catálogo.
func NewItemHandler(uc *estoque.CatalogoUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Itens ativos do catálogo
// @Tags         itens
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/itens [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	itens, err := h.uc.ListarAtivos(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(itens)
}
