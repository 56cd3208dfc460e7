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
	conferenteID = "00000000-0000-0000-0000-00000000000c"
	movID        = "00000000-0000-0000-0000-00000000000d"
)

func novoConferirUC(movs ...*entity.Movimentacao) (*appestoque.ConferirUseCase, *fakeTxRunner) {
	tx := &fakeTxRunner{
		movRepo:    newFakeMovRepo(movs...),
		confRepo:   &fakeConfRepo{},
		ajusteRepo: &fakeAjusteRepo{},
	}
	return appestoque.NewConferirUseCase(tx), tx
}

func TestConferir_QuantidadeIgualAprova(t *testing.T) {
	uc, tx := novoConferirUC(movPendente(movID, operadorID, 23))

	out, err := uc.Conferir(context.Background(), movID, conferenteID, dto.ConferirRequest{QtdConferida: "23"})
	require.NoError(t, err)

	assert.Equal(t, estoque.StatusAprovado, out.Status)
	assert.Equal(t, 1, out.Fase)

	mov, _ := tx.movRepo.GetByID(movID)
	assert.Equal(t, estoque.StatusAprovado, mov.Status)

	require.Len(t, tx.confRepo.confs, 1)
	conf := tx.confRepo.confs[0]
	assert.Equal(t, 23, conf.QtdConferida)
	assert.Equal(t, conferenteID, conf.ConferidoPor)
	assert.Equal(t, entity.ModoDigitado, conf.Modo)
	assert.Equal(t, 1, conf.Fase)
}

func TestConferir_QuantidadeDiferenteDiverge(t *testing.T) {
	uc, tx := novoConferirUC(movPendente(movID, operadorID, 23))

	out, err := uc.Conferir(context.Background(), movID, conferenteID, dto.ConferirRequest{QtdConferida: "22"})
	require.NoError(t, err)

	assert.Equal(t, estoque.StatusDivergente, out.Status)

	mov, _ := tx.movRepo.GetByID(movID)
	assert.Equal(t, estoque.StatusDivergente, mov.Status)
	// A quantidade informada não muda na conferência, só o status
	assert.Equal(t, 23, mov.QtdInformada)
}

func TestConferir_AutoConferenciaProibida(t *testing.T) {
	uc, tx := novoConferirUC(movPendente(movID, operadorID, 23))

	// O criador tentando conferir a própria movimentação
	_, err := uc.Conferir(context.Background(), movID, operadorID, dto.ConferirRequest{QtdConferida: "23"})
	assert.ErrorIs(t, err, domain.ErrAutoConferencia)

	// Nada foi gravado
	assert.Empty(t, tx.confRepo.confs)
	mov, _ := tx.movRepo.GetByID(movID)
	assert.Equal(t, estoque.StatusPendente, mov.Status)
}

func TestConferir_ReconferirUsaFase2(t *testing.T) {
	mov := movPendente(movID, operadorID, 30)
	mov.Status = estoque.StatusReconferir
	uc, tx := novoConferirUC(mov)

	// Fase 1 já aconteceu antes do ajuste
	tx.confRepo.confs = append(tx.confRepo.confs, &entity.Conferencia{
		MovimentacaoID: movID, QtdConferida: 25, Fase: 1,
	})

	out, err := uc.Conferir(context.Background(), movID, conferenteID, dto.ConferirRequest{QtdConferida: "30"})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Fase)
	assert.Equal(t, estoque.StatusAprovado, out.Status)
	require.Len(t, tx.confRepo.confs, 2)
}

func TestConferir_FaseDuplicadaRejeitada(t *testing.T) {
	uc, tx := novoConferirUC(movPendente(movID, operadorID, 23))

	// Já existe conferência de fase 1 (ex.: duas abas abertas)
	tx.confRepo.confs = append(tx.confRepo.confs, &entity.Conferencia{
		MovimentacaoID: movID, QtdConferida: 23, Fase: 1,
	})

	_, err := uc.Conferir(context.Background(), movID, conferenteID, dto.ConferirRequest{QtdConferida: "23"})
	assert.ErrorIs(t, err, domain.ErrConferenciaDuplicada)
}

func TestConferir_EstadoTerminalRejeitado(t *testing.T) {
	aprovada := movPendente(movID, operadorID, 23)
	aprovada.Status = estoque.StatusAprovado
	uc, _ := novoConferirUC(aprovada)

	_, err := uc.Conferir(context.Background(), movID, conferenteID, dto.ConferirRequest{QtdConferida: "23"})
	assert.ErrorIs(t, err, domain.ErrConflict, "APROVADO é terminal")

	divergente := movPendente(movID, operadorID, 23)
	divergente.Status = estoque.StatusDivergente
	uc, _ = novoConferirUC(divergente)

	_, err = uc.Conferir(context.Background(), movID, conferenteID, dto.ConferirRequest{QtdConferida: "23"})
	assert.ErrorIs(t, err, domain.ErrConflict, "DIVERGENTE precisa de ajuste antes de reconferir")
}

func TestConferir_QuantidadeInvalida(t *testing.T) {
	uc, _ := novoConferirUC(movPendente(movID, operadorID, 23))

	for _, qtd := range []string{"", "0", "abc"} {
		_, err := uc.Conferir(context.Background(), movID, conferenteID, dto.ConferirRequest{QtdConferida: qtd})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "qtd_conferida %q deve ser rejeitada", qtd)
	}
}

func TestConferir_MovimentacaoInexistente(t *testing.T) {
	uc, _ := novoConferirUC()

	_, err := uc.Conferir(context.Background(), movID, conferenteID, dto.ConferirRequest{QtdConferida: "23"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
