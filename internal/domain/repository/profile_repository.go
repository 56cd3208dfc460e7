package repository

import "github.com/estoquelab/confere-api/internal/domain/entity"

// ProfileRepository porta de persistência para usuários/perfis.
// Convenção: métodos Get* devolvem (nil, nil) quando a linha não existe.
type ProfileRepository interface {
	Create(p *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	GetByEmail(email string) (*entity.Profile, error)
	Update(p *entity.Profile) error
	SetDisabled(id string, disabled bool) error
	ListAll() ([]*entity.Profile, error)
}
