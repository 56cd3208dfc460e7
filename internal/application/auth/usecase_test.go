package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/estoquelab/confere-api/internal/application/dto"
	"github.com/estoquelab/confere-api/internal/domain"
	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/pkg/jwt"
)

const (
	testSecret = "segredo-so-para-testes"
	testSenha  = "senha-correta-123"
)

type emailCapturado struct {
	to, subject, html string
}

// fakeSender captura o último e-mail "enviado".
type fakeSender struct {
	enviados []emailCapturado
}

func (s *fakeSender) Send(_ context.Context, to, subject, html string) error {
	s.enviados = append(s.enviados, emailCapturado{to: to, subject: subject, html: html})
	return nil
}

func perfilComSenha(t *testing.T, senha string) *entity.Profile {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	p := perfilConferente()
	p.SenhaHash = string(hash)
	return p
}

func novoAuthUC(repo *fakeProfileRepo, sender EmailSender) *AuthUseCase {
	resolver := NewRoleResolver(repo, 10*time.Second)
	return NewAuthUseCase(repo, resolver,
		JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "confere-api-test"},
		ResetConfig{TokenMinutes: 30, URLBase: "https://app.exemplo.com/resetar-senha"},
		sender,
	)
}

func TestLogin_Sucesso(t *testing.T) {
	p := perfilComSenha(t, testSenha)
	uc := novoAuthUC(newFakeProfileRepo(p), nil)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: p.Email, Password: testSenha})
	require.NoError(t, err)

	assert.Equal(t, p.ID, out.User.ID)
	assert.Equal(t, entity.RoleConferente, out.User.Role)

	// O token emitido é uma sessão válida
	userID, role, purpose, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, p.ID, userID)
	assert.Equal(t, entity.RoleConferente, role)
	assert.Equal(t, jwt.PurposeSession, purpose)
}

func TestLogin_SenhaErrada(t *testing.T) {
	p := perfilComSenha(t, testSenha)
	uc := novoAuthUC(newFakeProfileRepo(p), nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: p.Email, Password: "outra-senha"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_ContaDesativada(t *testing.T) {
	p := perfilComSenha(t, testSenha)
	p.IsDisabled = true
	uc := novoAuthUC(newFakeProfileRepo(p), nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: p.Email, Password: testSenha})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEsqueciSenha_EmailDesconhecidoNaoRevelaNada(t *testing.T) {
	sender := &fakeSender{}
	uc := novoAuthUC(newFakeProfileRepo(), sender)

	err := uc.EsqueciSenha(context.Background(), "ninguem@exemplo.com")
	require.NoError(t, err, "e-mail desconhecido responde ok sem erro")
	assert.Empty(t, sender.enviados, "nada é enviado para contas inexistentes")
}

func TestEsqueciSenha_EnviaLinkComTokenDeReset(t *testing.T) {
	p := perfilComSenha(t, testSenha)
	sender := &fakeSender{}
	uc := novoAuthUC(newFakeProfileRepo(p), sender)

	err := uc.EsqueciSenha(context.Background(), p.Email)
	require.NoError(t, err)

	require.Len(t, sender.enviados, 1)
	e := sender.enviados[0]
	assert.Equal(t, p.Email, e.to)
	assert.Contains(t, e.html, "https://app.exemplo.com/resetar-senha?token=")
}

func TestResetarSenha_TokenDeSessaoRejeitado(t *testing.T) {
	p := perfilComSenha(t, testSenha)
	uc := novoAuthUC(newFakeProfileRepo(p), nil)

	// Um token de sessão legítimo não serve para redefinir senha
	sessao, err := jwt.Generate(testSecret, p.ID, p.Role, jwt.PurposeSession, "confere-api-test", 60)
	require.NoError(t, err)

	err = uc.ResetarSenha(context.Background(), dto.ResetarSenhaRequest{
		Token: sessao, Password: "nova-senha-123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResetarSenha_TrocaASenha(t *testing.T) {
	p := perfilComSenha(t, testSenha)
	repo := newFakeProfileRepo(p)
	uc := novoAuthUC(repo, nil)

	token, err := jwt.Generate(testSecret, p.ID, p.Role, jwt.PurposePasswordReset, "confere-api-test", 30)
	require.NoError(t, err)

	err = uc.ResetarSenha(context.Background(), dto.ResetarSenhaRequest{
		Token: token, Password: "nova-senha-123",
	})
	require.NoError(t, err)

	salvo := repo.profiles[p.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(salvo.SenhaHash), []byte("nova-senha-123")))
}

func TestAlterarSenha_ValidaSenhaAtual(t *testing.T) {
	p := perfilComSenha(t, testSenha)
	uc := novoAuthUC(newFakeProfileRepo(p), nil)

	err := uc.AlterarSenha(context.Background(), p.ID, dto.AlterarSenhaRequest{
		SenhaAtual: "errada", SenhaNova: "nova-senha-123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.AlterarSenha(context.Background(), p.ID, dto.AlterarSenhaRequest{
		SenhaAtual: testSenha, SenhaNova: "curta",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "senha nova abaixo de 8 caracteres")

	err = uc.AlterarSenha(context.Background(), p.ID, dto.AlterarSenhaRequest{
		SenhaAtual: testSenha, SenhaNova: "nova-senha-123",
	})
	assert.NoError(t, err)
}
