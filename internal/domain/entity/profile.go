package entity

import "time"

// Roles válidos para Profile.
const (
	RoleOperador   = "OPERADOR"
	RoleConferente = "CONFERENTE"
	RoleAdmin      = "ADMIN"
)

// RoleValido diz se a string corresponde a um role conhecido.
func RoleValido(role string) bool {
	switch role {
	case RoleOperador, RoleConferente, RoleAdmin:
		return true
	}
	return false
}

// Profile representa um usuário do sistema: identidade de autenticação mais o
// perfil (role + flag de bloqueio) numa única linha.
type Profile struct {
	ID           string
	Email        string
	Nome         string
	SenhaHash    string // bcrypt hash, nunca em texto plano depois de persistir
	Role         string // OPERADOR, CONFERENTE, ADMIN
	IsDisabled   bool
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
