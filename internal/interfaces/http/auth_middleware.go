package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/estoquelab/confere-api/internal/application/auth"
	"github.com/estoquelab/confere-api/internal/application/dto"
	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/pkg/jwt"
)

// Locals keys para UserID e Role no Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// errEncoder escreve o corpo de erro no formato do grupo de rotas. As rotas
// /api/admin/* respondem no formato legado {"error": "..."}.
type errEncoder func(c *fiber.Ctx, status int, code, message string) error

func erroPadrao(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

func erroLegado(c *fiber.Ctx, status int, _ string, message string) error {
	return c.Status(status).JSON(dto.AdminErrorResponse{Error: message})
}

// AuthMiddleware valida o Bearer Token JWT de sessão e extrai o UserID para
// c.Locals. Tokens de outra finalidade (ex.: redefinição de senha) são
// recusados.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return authMiddleware(jwtSecret, erroPadrao)
}

// AdminAuthMiddleware faz a mesma validação, respondendo no formato legado.
func AdminAuthMiddleware(jwtSecret string) fiber.Handler {
	return authMiddleware(jwtSecret, erroLegado)
}

func authMiddleware(jwtSecret string, enc errEncoder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return enc(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Não autorizado.")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return enc(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Não autorizado.")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return enc(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Não autorizado.")
		}
		userID, _, purpose, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || purpose != jwt.PurposeSession {
			return enc(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Sessão inválida.")
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// RequireRole autoriza a rota para os roles dados. O role vem do profile
// ARMAZENADO, resolvido via cache de TTL curto; o claim do token não decide
// nada aqui. Perfis desativados são recusados mesmo com sessão válida.
func RequireRole(resolver *auth.RoleResolver, roles ...string) fiber.Handler {
	return requireRole(resolver, erroPadrao, roles)
}

// RequireAdmin é o mesmo gate restrito a ADMIN, no formato legado.
func RequireAdmin(resolver *auth.RoleResolver) fiber.Handler {
	return requireRole(resolver, erroLegado, []string{entity.RoleAdmin})
}

func requireRole(resolver *auth.RoleResolver, enc errEncoder, roles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return enc(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Não autorizado.")
		}
		info, err := resolver.Resolve(c.UserContext(), userID)
		if err != nil {
			return enc(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Sessão inválida.")
		}
		if info.IsDisabled {
			return enc(c, fiber.StatusForbidden, "FORBIDDEN", "Conta desativada.")
		}
		permitido := false
		for _, r := range roles {
			if info.Role == r {
				permitido = true
				break
			}
		}
		if !permitido {
			if len(roles) == 1 && roles[0] == entity.RoleAdmin {
				return enc(c, fiber.StatusForbidden, "FORBIDDEN", "Sem permissão (não é ADMIN).")
			}
			return enc(c, fiber.StatusForbidden, "FORBIDDEN", "Sem permissão para esta operação.")
		}
		c.Locals(LocalRole, info.Role)
		return c.Next()
	}
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devolve o role resolvido do contexto (depois do RequireRole).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
