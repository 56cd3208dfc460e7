package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists  = errors.New("o e-mail já está cadastrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("não autorizado")
	ErrForbidden           = errors.New("acesso negado")
	ErrConflict            = errors.New("conflito com o estado atual")
	ErrAutoConferencia     = errors.New("não é permitido conferir a própria movimentação")
	ErrConferenciaDuplicada = errors.New("a movimentação já foi conferida nesta fase")
	ErrMotivoObrigatorio   = errors.New("o motivo do ajuste é obrigatório")
)
