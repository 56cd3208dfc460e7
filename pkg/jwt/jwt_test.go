package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquelab/confere-api/pkg/jwt"
)

const (
	testSecret = "segredo-so-para-testes"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "confere-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := jwt.Generate(testSecret, testUserID, "CONFERENTE", jwt.PurposeSession, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, purpose, err := jwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "CONFERENTE", role)
	assert.Equal(t, jwt.PurposeSession, purpose)
}

func TestParse_PreservaFinalidade(t *testing.T) {
	tok, err := jwt.Generate(testSecret, testUserID, "OPERADOR", jwt.PurposePasswordReset, testIssuer, 30)
	require.NoError(t, err)

	_, _, purpose, err := jwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, jwt.PurposePasswordReset, purpose,
		"o consumidor decide aceitar ou não conforme a finalidade")
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate(testSecret, testUserID, "ADMIN", jwt.PurposeSession, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado deve falhar no parse")
}

func TestParse_SecretIncorreto(t *testing.T) {
	tok, err := jwt.Generate(testSecret, testUserID, "ADMIN", jwt.PurposeSession, testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("outro-segredo", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVazio(t *testing.T) {
	_, err := jwt.Generate("", testUserID, "ADMIN", jwt.PurposeSession, testIssuer, 60)
	assert.Error(t, err)
}
