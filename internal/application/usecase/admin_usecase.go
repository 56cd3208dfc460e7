package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/estoquelab/confere-api/internal/application/auth"
	"github.com/estoquelab/confere-api/internal/application/dto"
	"github.com/estoquelab/confere-api/internal/domain"
	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/internal/domain/repository"
)

// AdminUseCase operações privilegiadas de gestão de usuários. O gate de role
// (só ADMIN chega aqui) fica no middleware; este caso de uso assume chamador
// já autorizado.
type AdminUseCase struct {
	profileRepo repository.ProfileRepository
	resolver    *auth.RoleResolver
	collator    *collate.Collator
}

// NewAdminUseCase constrói o caso de uso.
func NewAdminUseCase(profileRepo repository.ProfileRepository, resolver *auth.RoleResolver) *AdminUseCase {
	return &AdminUseCase{
		profileRepo: profileRepo,
		resolver:    resolver,
		collator:    collate.New(language.BrazilianPortuguese, collate.IgnoreCase),
	}
}

// CreateUser cria o usuário com o role pedido. Devolve ErrEmailAlreadyExists
// em e-mail duplicado e ErrInvalidInput em dados fora do contrato.
func (uc *AdminUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" || !entity.RoleValido(in.Role) {
		return "", domain.ErrInvalidInput
	}
	if len(in.Password) < 8 {
		return "", domain.ErrInvalidInput
	}

	existing, err := uc.profileRepo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		nome = email
	}
	now := time.Now()
	p := &entity.Profile{
		ID:           uuid.New().String(),
		Email:        email,
		Nome:         nome,
		SenhaHash:    string(hash),
		Role:         in.Role,
		IsDisabled:   false,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.profileRepo.Create(p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// ListUsers devolve todos os usuários ordenados por e-mail (collation pt-BR).
func (uc *AdminUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	profiles, err := uc.profileRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, *auth.ToUserResponse(p))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return uc.collator.CompareString(out[i].Email, out[j].Email) < 0
	})
	return out, nil
}

// ToggleUser liga/desliga a flag is_disabled de um usuário e invalida sua
// entrada no cache de roles, para o bloqueio valer de imediato.
func (uc *AdminUseCase) ToggleUser(ctx context.Context, in dto.ToggleUserRequest) error {
	if strings.TrimSpace(in.UserID) == "" {
		return domain.ErrInvalidInput
	}
	p, err := uc.profileRepo.GetByID(in.UserID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.profileRepo.SetDisabled(in.UserID, in.IsDisabled); err != nil {
		return err
	}
	uc.resolver.Invalidate(in.UserID)
	return nil
}
