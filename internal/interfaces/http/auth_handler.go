package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquelab/confere-api/internal/application/auth"
	"github.com/estoquelab/confere-api/internal/application/dto"
	"github.com/estoquelab/confere-api/internal/domain"
)

// AuthHandler login, sessão e fluxos de senha.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Entrar
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e password são obrigatórios"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if err == domain.ErrUserNotFound || err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciais inválidas"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "conta desativada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// EsqueciSenha godoc
// @Summary      Pedir redefinição de senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EsqueciSenhaRequest  true  "email"
// @Success      200   {object}  dto.OkResponse
// @Router       /api/auth/esqueci-senha [post]
func (h *AuthHandler) EsqueciSenha(c *fiber.Ctx) error {
	var in dto.EsqueciSenhaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email é obrigatório"})
	}
	// Resposta idêntica para e-mail conhecido e desconhecido.
	if err := h.uc.EsqueciSenha(c.UserContext(), in.Email); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// ResetarSenha godoc
// @Summary      Redefinir senha com token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetarSenhaRequest  true  "token, password"
// @Success      200   {object}  dto.OkResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/resetar-senha [post]
func (h *AuthHandler) ResetarSenha(c *fiber.Ctx) error {
	var in dto.ResetarSenhaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.ResetarSenha(c.UserContext(), in); err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "a senha precisa de pelo menos 8 caracteres"})
		case domain.ErrUnauthorized, domain.ErrUserNotFound:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// Me godoc
// @Summary      Perfil do usuário logado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetUserID(c))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sessão inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Sair (invalida o cache de role)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.OkResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(GetUserID(c))
	return c.JSON(dto.OkResponse{Ok: true})
}

// AlterarSenha godoc
// @Summary      Trocar a própria senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AlterarSenhaRequest  true  "senha_atual, senha_nova"
// @Success      200   {object}  dto.OkResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/alterar-senha [post]
func (h *AuthHandler) AlterarSenha(c *fiber.Ctx) error {
	var in dto.AlterarSenhaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.AlterarSenha(c.UserContext(), GetUserID(c), in); err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "a senha nova precisa de pelo menos 8 caracteres"})
		case domain.ErrUnauthorized:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "senha atual incorreta"})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sessão inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.OkResponse{Ok: true})
}
