package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/estoquelab/confere-api/internal/application/dto"
	"github.com/estoquelab/confere-api/internal/domain"
	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/internal/domain/repository"
	"github.com/estoquelab/confere-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens de sessão.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ResetConfig parâmetros do fluxo de redefinição de senha.
type ResetConfig struct {
	TokenMinutes int
	URLBase      string // ex.: https://app.exemplo.com/resetar-senha
}

// EmailSender porta para envio de e-mails transacionais (Resend na infra).
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// AuthUseCase casos de uso de autenticação: login, troca e redefinição de senha.
type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	resolver    *RoleResolver
	jwtCfg      JWTConfig
	resetCfg    ResetConfig
	sender      EmailSender // nil = envio desativado
}

// NewAuthUseCase constrói o caso de uso. sender pode ser nil quando o Resend
// não está configurado; esqueci-senha continua respondendo ok sem enviar nada.
func NewAuthUseCase(profileRepo repository.ProfileRepository, resolver *RoleResolver, jwtCfg JWTConfig, resetCfg ResetConfig, sender EmailSender) *AuthUseCase {
	return &AuthUseCase{
		profileRepo: profileRepo,
		resolver:    resolver,
		jwtCfg:      jwtCfg,
		resetCfg:    resetCfg,
		sender:      sender,
	}
}

// Login verifica e-mail/senha, recusa contas desativadas e gera o JWT de sessão.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	p, err := uc.profileRepo.GetByEmail(strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.SenhaHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if p.IsDisabled {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, p.ID, p.Role, jwt.PurposeSession, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(p),
	}, nil
}

// Me devolve o perfil do usuário autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	p, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(p), nil
}

// Logout invalida a entrada do usuário no cache de roles. A sessão JWT em si
// expira sozinha; o que importa aqui é não servir um role antigo do cache.
func (uc *AuthUseCase) Logout(userID string) {
	uc.resolver.Invalidate(userID)
}

// AlterarSenha troca a senha do usuário logado após validar a senha atual.
func (uc *AuthUseCase) AlterarSenha(ctx context.Context, userID string, in dto.AlterarSenhaRequest) error {
	if len(in.SenhaNova) < 8 {
		return domain.ErrInvalidInput
	}
	p, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.SenhaHash), []byte(in.SenhaAtual)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.SenhaNova), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.SenhaHash = string(hash)
	return uc.profileRepo.Update(p)
}

// EsqueciSenha emite um token de redefinição e envia o link por e-mail.
// Sempre devolve nil para e-mails desconhecidos: a resposta não pode revelar
// quais contas existem.
func (uc *AuthUseCase) EsqueciSenha(ctx context.Context, email string) error {
	p, err := uc.profileRepo.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if p == nil || p.IsDisabled {
		return nil
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, p.ID, p.Role, jwt.PurposePasswordReset, uc.jwtCfg.Issuer, uc.resetCfg.TokenMinutes)
	if err != nil {
		return err
	}

	if uc.sender == nil {
		log.Warn().Str("user_id", p.ID).Msg("esqueci-senha: envio de e-mail desativado (RESEND_API_KEY ausente)")
		return nil
	}

	link := token
	if uc.resetCfg.URLBase != "" {
		link = fmt.Sprintf("%s?token=%s", uc.resetCfg.URLBase, token)
	}
	html := fmt.Sprintf(
		"<p>Olá, %s.</p><p>Para redefinir sua senha, acesse o link abaixo (válido por %d minutos):</p><p><a href=%q>%s</a></p><p>Se você não pediu a redefinição, ignore este e-mail.</p>",
		p.Nome, uc.resetCfg.TokenMinutes, link, link,
	)
	return uc.sender.Send(ctx, p.Email, "Redefinição de senha", html)
}

// ResetarSenha valida o token de redefinição e grava a nova senha.
// Tokens de sessão não servem aqui: a finalidade precisa ser password_reset.
func (uc *AuthUseCase) ResetarSenha(ctx context.Context, in dto.ResetarSenhaRequest) error {
	if len(in.Password) < 8 {
		return domain.ErrInvalidInput
	}
	userID, _, purpose, err := jwt.Parse(uc.jwtCfg.Secret, in.Token)
	if err != nil || purpose != jwt.PurposePasswordReset {
		return domain.ErrUnauthorized
	}
	p, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.SenhaHash = string(hash)
	return uc.profileRepo.Update(p)
}

// ToUserResponse converte a entidade para o DTO de saída (sem hash).
func ToUserResponse(p *entity.Profile) *dto.UserResponse {
	if p == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         p.ID,
		Email:      p.Email,
		Nome:       p.Nome,
		Role:       p.Role,
		IsDisabled: p.IsDisabled,
		CreatedAt:  p.CriadoEm,
	}
}
