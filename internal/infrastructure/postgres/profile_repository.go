package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/estoquelab/confere-api/internal/domain"
	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

const profileColumns = `id, email, nome, senha_hash, role, is_disabled, criado_em, atualizado_em`

// ProfileRepo implementação da porta ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	db querier
}

// NewProfileRepository constrói o adaptador de persistência de perfis.
func NewProfileRepository(db querier) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Create persiste um novo perfil.
func (r *ProfileRepo) Create(p *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, email, nome, senha_hash, role, is_disabled, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.Email, p.Nome, p.SenhaHash, p.Role, p.IsDisabled, p.CriadoEm, p.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtém um perfil por ID; (nil, nil) quando não existe.
func (r *ProfileRepo) GetByID(id string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id), "get profile by id")
}

// GetByEmail obtém um perfil por e-mail; (nil, nil) quando não existe.
func (r *ProfileRepo) GetByEmail(email string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1 LIMIT 1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, email), "get profile by email")
}

// Update atualiza os campos mutáveis do perfil.
func (r *ProfileRepo) Update(p *entity.Profile) error {
	query := `
		UPDATE profiles
		SET email = $2, nome = $3, senha_hash = $4, role = $5, is_disabled = $6, atualizado_em = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.Email, p.Nome, p.SenhaHash, p.Role, p.IsDisabled, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// SetDisabled liga/desliga a flag de bloqueio.
func (r *ProfileRepo) SetDisabled(id string, disabled bool) error {
	query := `UPDATE profiles SET is_disabled = $2, atualizado_em = $3 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, id, disabled, time.Now())
	if err != nil {
		return fmt.Errorf("set profile disabled: %w", err)
	}
	return nil
}

// ListAll lista todos os perfis (a ordenação por e-mail com collation pt-BR
// acontece no use case).
func (r *ProfileRepo) ListAll() ([]*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.Nome, &p.SenhaHash, &p.Role, &p.IsDisabled, &p.CriadoEm, &p.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProfileRepo) scanOne(row pgx.Row, op string) (*entity.Profile, error) {
	var p entity.Profile
	err := row.Scan(&p.ID, &p.Email, &p.Nome, &p.SenhaHash, &p.Role, &p.IsDisabled, &p.CriadoEm, &p.AtualizadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
