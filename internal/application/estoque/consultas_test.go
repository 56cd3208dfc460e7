package estoque_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appestoque "github.com/estoquelab/confere-api/internal/application/estoque"
	"github.com/estoquelab/confere-api/internal/domain"
	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/internal/domain/estoque"
)

func novoConsultaUC(movs ...*entity.Movimentacao) (*appestoque.ConsultaUseCase, *fakeConfRepo, *fakeAjusteRepo) {
	confRepo := &fakeConfRepo{}
	ajusteRepo := &fakeAjusteRepo{}
	uc := appestoque.NewConsultaUseCase(newFakeMovRepo(movs...), confRepo, ajusteRepo)
	return uc, confRepo, ajusteRepo
}

func TestPendentes_IncluiReconferir(t *testing.T) {
	pendente := movPendente("m1", operadorID, 23)
	reconferir := movPendente("m2", operadorID, 30)
	reconferir.Status = estoque.StatusReconferir
	aprovada := movPendente("m3", operadorID, 10)
	aprovada.Status = estoque.StatusAprovado

	uc, _, _ := novoConsultaUC(pendente, reconferir, aprovada)

	out, err := uc.Pendentes(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2, "a fila de conferência junta PENDENTE e RECONFERIR")
	for _, m := range out {
		assert.NotEqual(t, estoque.StatusAprovado, m.Status)
	}
}

func TestDetalhe_JuntaConferenciasEAjustes(t *testing.T) {
	uc, confRepo, ajusteRepo := novoConsultaUC(movPendente(movID, operadorID, 23))
	confRepo.confs = append(confRepo.confs, &entity.Conferencia{
		ID: "c1", MovimentacaoID: movID, QtdConferida: 22, Fase: 1,
	})
	ajusteRepo.ajustes = append(ajusteRepo.ajustes, &entity.Ajuste{
		ID: "a1", MovimentacaoID: movID, QtdAntiga: 23, QtdNova: 22, Motivo: "recontagem",
	})

	out, err := uc.Detalhe(context.Background(), movID)
	require.NoError(t, err)

	assert.Equal(t, movID, out.Movimentacao.ID)
	require.Len(t, out.Conferencias, 1)
	require.Len(t, out.Ajustes, 1)
	assert.Equal(t, 22, out.Conferencias[0].QtdConferida)
	assert.Equal(t, "recontagem", out.Ajustes[0].Motivo)
}

func TestDetalhe_Inexistente(t *testing.T) {
	uc, _, _ := novoConsultaUC()

	_, err := uc.Detalhe(context.Background(), movID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistorico_BuscaTextualEmItemELote(t *testing.T) {
	m1 := movPendente("m1", operadorID, 23)
	m1.Item = "Caixa Térmica 45L"
	m1.Lote = "20230901"
	m2 := movPendente("m2", operadorID, 10)
	m2.Item = "Pallet Plástico"
	m2.Lote = "555"

	uc, _, _ := novoConsultaUC(m1, m2)

	out, err := uc.Historico(context.Background(), appestoque.FiltroHistoricoInput{Busca: "térmica"})
	require.NoError(t, err)
	require.Len(t, out, 1, "busca é case-insensitive sobre item+lote")
	assert.Equal(t, "m1", out[0].ID)

	out, err = uc.Historico(context.Background(), appestoque.FiltroHistoricoInput{Busca: "555"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "m2", out[0].ID)
}

func TestHistorico_FiltroInvalido(t *testing.T) {
	uc, _, _ := novoConsultaUC()

	_, err := uc.Historico(context.Background(), appestoque.FiltroHistoricoInput{Status: "AJUSTADO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "status desconhecido")

	_, err = uc.Historico(context.Background(), appestoque.FiltroHistoricoInput{Dia: "01/09/2023"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "dia fora do formato YYYY-MM-DD")
}

func TestHistorico_StatusTodosNaoFiltra(t *testing.T) {
	m1 := movPendente("m1", operadorID, 23)
	m2 := movPendente("m2", operadorID, 10)
	m2.Status = estoque.StatusAprovado

	uc, _, _ := novoConsultaUC(m1, m2)

	out, err := uc.Historico(context.Background(), appestoque.FiltroHistoricoInput{Status: "TODOS"})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
