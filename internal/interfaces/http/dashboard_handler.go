package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquelab/confere-api/internal/application/analytics"
	"github.com/estoquelab/confere-api/internal/application/dto"
)

// DashboardHandler resumo dos últimos 7 dias.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler do dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumo godoc
// @Summary      Resumo de movimentações dos últimos 7 dias (ADMIN)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Resumo(c *fiber.Ctx) error {
	out, err := h.uc.GetResumo(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
