package auth

import (
	"context"
	"sync"
	"time"

	"github.com/estoquelab/confere-api/internal/domain"
	"github.com/estoquelab/confere-api/internal/domain/repository"
)

// RoleInfo resultado da resolução: role armazenado e flag de bloqueio.
type RoleInfo struct {
	Role       string
	IsDisabled bool
}

type roleEntry struct {
	info RoleInfo
	at   time.Time
}

// RoleResolver resolve o role ARMAZENADO de um usuário com um cache em memória
// de TTL curto. O claim do JWT é só uma dica; autorização consulta o banco via
// este resolver, então desativar um usuário ou trocar seu role vale dentro do
// TTL mesmo com o token antigo ainda vivo.
//
// O cache é um objeto explícito, injetado onde for preciso, invalidado no
// logout e no toggle-user. TTL zero desativa o cache.
type RoleResolver struct {
	profileRepo repository.ProfileRepository
	ttl         time.Duration

	mu    sync.Mutex
	cache map[string]roleEntry
	now   func() time.Time // substituível nos testes
}

// NewRoleResolver constrói o resolver com o TTL dado.
func NewRoleResolver(profileRepo repository.ProfileRepository, ttl time.Duration) *RoleResolver {
	return &RoleResolver{
		profileRepo: profileRepo,
		ttl:         ttl,
		cache:       make(map[string]roleEntry),
		now:         time.Now,
	}
}

// Resolve devolve o role e a flag de bloqueio do usuário, do cache quando a
// entrada ainda é fresca. Usuário inexistente devolve ErrUserNotFound.
func (r *RoleResolver) Resolve(ctx context.Context, userID string) (RoleInfo, error) {
	if r.ttl > 0 {
		r.mu.Lock()
		e, ok := r.cache[userID]
		fresh := ok && r.now().Sub(e.at) < r.ttl
		r.mu.Unlock()
		if fresh {
			return e.info, nil
		}
	}

	p, err := r.profileRepo.GetByID(userID)
	if err != nil {
		return RoleInfo{}, err
	}
	if p == nil {
		return RoleInfo{}, domain.ErrUserNotFound
	}

	info := RoleInfo{Role: p.Role, IsDisabled: p.IsDisabled}
	if r.ttl > 0 {
		r.mu.Lock()
		r.cache[userID] = roleEntry{info: info, at: r.now()}
		r.mu.Unlock()
	}
	return info, nil
}

// Invalidate remove a entrada do usuário (logout, toggle-user).
func (r *RoleResolver) Invalidate(userID string) {
	r.mu.Lock()
	delete(r.cache, userID)
	r.mu.Unlock()
}
