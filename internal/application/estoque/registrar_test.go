package estoque_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquelab/confere-api/internal/application/dto"
	appestoque "github.com/estoquelab/confere-api/internal/application/estoque"
	"github.com/estoquelab/confere-api/internal/domain"
	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/internal/domain/estoque"
)

const (
	operadorID = "00000000-0000-0000-0000-00000000000a"
	itemID     = "00000000-0000-0000-0000-00000000000b"
)

func TestRegistrar_CriaMovimentacaoPendente(t *testing.T) {
	itemRepo := newFakeItemRepo(&entity.Item{ID: itemID, Nome: "Caixa Térmica 45L", Ativo: true})
	movRepo := newFakeMovRepo()
	uc := appestoque.NewRegistrarUseCase(itemRepo, movRepo)

	// 2 caixas de 10 + 3 avulsas = 23
	out, err := uc.Registrar(context.Background(), operadorID, dto.RegistrarMovimentacaoRequest{
		ItemID:          itemID,
		Lote:            "LOTE-2023/09",
		Caixas:          "2",
		QtdPorCaixa:     "10",
		UnidadesAvulsas: "3",
	})
	require.NoError(t, err)

	assert.Equal(t, "Caixa Térmica 45L", out.Item)
	assert.Equal(t, "202309", out.Lote, "o lote guarda só os dígitos")
	assert.Equal(t, 23, out.QtdInformada)
	assert.Equal(t, 2, out.Caixas)
	assert.Equal(t, 10, out.QtdPorCaixa)
	assert.Equal(t, 3, out.UnidadesAvulsas)
	assert.Equal(t, estoque.StatusPendente, out.Status)
	assert.Equal(t, operadorID, out.CriadoPor)

	salvo, err := movRepo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, salvo, "a movimentação deve estar persistida")
}

func TestRegistrar_ItemInexistente(t *testing.T) {
	uc := appestoque.NewRegistrarUseCase(newFakeItemRepo(), newFakeMovRepo())

	_, err := uc.Registrar(context.Background(), operadorID, dto.RegistrarMovimentacaoRequest{
		ItemID: itemID, Lote: "123", UnidadesAvulsas: "5",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistrar_ItemInativo(t *testing.T) {
	itemRepo := newFakeItemRepo(&entity.Item{ID: itemID, Nome: "Descontinuado", Ativo: false})
	uc := appestoque.NewRegistrarUseCase(itemRepo, newFakeMovRepo())

	_, err := uc.Registrar(context.Background(), operadorID, dto.RegistrarMovimentacaoRequest{
		ItemID: itemID, Lote: "123", UnidadesAvulsas: "5",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrar_LoteSemDigitos(t *testing.T) {
	itemRepo := newFakeItemRepo(&entity.Item{ID: itemID, Nome: "Caixa", Ativo: true})
	uc := appestoque.NewRegistrarUseCase(itemRepo, newFakeMovRepo())

	_, err := uc.Registrar(context.Background(), operadorID, dto.RegistrarMovimentacaoRequest{
		ItemID: itemID, Lote: "ABC-", UnidadesAvulsas: "5",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrar_TotalZeroRejeitado(t *testing.T) {
	itemRepo := newFakeItemRepo(&entity.Item{ID: itemID, Nome: "Caixa", Ativo: true})
	uc := appestoque.NewRegistrarUseCase(itemRepo, newFakeMovRepo())

	// caixas sem qtd por caixa e sem avulsas → total 0
	_, err := uc.Registrar(context.Background(), operadorID, dto.RegistrarMovimentacaoRequest{
		ItemID: itemID, Lote: "123", Caixas: "4",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// campos não numéricos contam como zero
	_, err = uc.Registrar(context.Background(), operadorID, dto.RegistrarMovimentacaoRequest{
		ItemID: itemID, Lote: "123", Caixas: "x", QtdPorCaixa: "y", UnidadesAvulsas: "z",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
