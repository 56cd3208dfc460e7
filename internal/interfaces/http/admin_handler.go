package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquelab/confere-api/internal/application/dto"
	"github.com/estoquelab/confere-api/internal/application/usecase"
	"github.com/estoquelab/confere-api/internal/domain"
)

// AdminHandler gestão de usuários. As respostas seguem o formato legado
// {"ok": ...}/{"error": "..."} consumido pelo painel administrativo.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler constrói o handler administrativo.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// CreateUser godoc
// @Summary      Criar usuário (ADMIN)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "email, nome, password, role"
// @Success      200   {object}  dto.CreateUserResponse
// @Failure      400   {object}  dto.AdminErrorResponse
// @Failure      403   {object}  dto.AdminErrorResponse
// @Router       /api/admin/create-user [post]
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.AdminErrorResponse{Error: "Corpo inválido."})
	}
	userID, err := h.uc.CreateUser(c.UserContext(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.AdminErrorResponse{Error: "Dados inválidos: e-mail, senha (mín. 8) e role válido são obrigatórios."})
		case domain.ErrEmailAlreadyExists:
			return c.Status(fiber.StatusBadRequest).JSON(dto.AdminErrorResponse{Error: "E-mail já cadastrado."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.AdminErrorResponse{Error: "Erro interno ao criar usuário."})
	}
	return c.JSON(dto.CreateUserResponse{Ok: true, UserID: userID})
}

// ListUsers godoc
// @Summary      Listar usuários (ADMIN)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.ListUsersResponse
// @Failure      403  {object}  dto.AdminErrorResponse
// @Router       /api/admin/list-users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.AdminErrorResponse{Error: "Erro interno ao listar usuários."})
	}
	return c.JSON(dto.ListUsersResponse{Ok: true, Users: users})
}

// ToggleUser godoc
// @Summary      Ativar/desativar usuário (ADMIN)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ToggleUserRequest  true  "userId, is_disabled"
// @Success      200   {object}  dto.OkResponse
// @Failure      400   {object}  dto.AdminErrorResponse
// @Failure      403   {object}  dto.AdminErrorResponse
// @Router       /api/admin/toggle-user [post]
func (h *AdminHandler) ToggleUser(c *fiber.Ctx) error {
	var in dto.ToggleUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.AdminErrorResponse{Error: "Corpo inválido."})
	}
	if err := h.uc.ToggleUser(c.UserContext(), in); err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.AdminErrorResponse{Error: "userId é obrigatório."})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusBadRequest).JSON(dto.AdminErrorResponse{Error: "Usuário não encontrado."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.AdminErrorResponse{Error: "Erro interno ao atualizar usuário."})
	}
	return c.JSON(dto.OkResponse{Ok: true})
}
