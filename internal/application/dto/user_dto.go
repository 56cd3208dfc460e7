package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse saída de um usuário (sem hash de senha).
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Nome       string    `json:"nome"`
	Role       string    `json:"role"`
	IsDisabled bool      `json:"is_disabled"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoginResponse saída com token JWT de sessão.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// EsqueciSenhaRequest entrada do fluxo de redefinição de senha.
type EsqueciSenhaRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetarSenhaRequest troca a senha a partir do token enviado por e-mail.
type ResetarSenhaRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// AlterarSenhaRequest troca a senha do próprio usuário logado.
type AlterarSenhaRequest struct {
	SenhaAtual string `json:"senha_atual" validate:"required"`
	SenhaNova  string `json:"senha_nova" validate:"required,min=8"`
}

// CreateUserRequest entrada de POST /api/admin/create-user (senha em texto,
// o hash acontece no use case).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Nome     string `json:"nome" validate:"omitempty,max=200"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=OPERADOR CONFERENTE ADMIN"`
}

// CreateUserResponse saída de create-user no formato legado.
type CreateUserResponse struct {
	Ok     bool   `json:"ok"`
	UserID string `json:"userId"`
}

// ListUsersResponse saída de list-users: perfis mesclados com a identidade.
type ListUsersResponse struct {
	Ok    bool           `json:"ok"`
	Users []UserResponse `json:"users"`
}

// ToggleUserRequest ativa/desativa um usuário.
type ToggleUserRequest struct {
	UserID     string `json:"userId" validate:"required"`
	IsDisabled bool   `json:"is_disabled"`
}
