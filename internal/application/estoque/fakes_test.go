package estoque_test

import (
	"context"
	"time"

	"github.com/estoquelab/confere-api/internal/domain"
	"github.com/estoquelab/confere-api/internal/domain/entity"
	"github.com/estoquelab/confere-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos repositórios, na convenção dos adapters reais:
// Get* devolve (nil, nil) quando a linha não existe.
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	itens map[string]*entity.Item
}

func newFakeItemRepo(itens ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{itens: make(map[string]*entity.Item)}
	for _, it := range itens {
		r.itens[it.ID] = it
	}
	return r
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.itens[id], nil
}

func (r *fakeItemRepo) ListAtivos() ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.itens))
	for _, it := range r.itens {
		if it.Ativo {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeMovRepo struct {
	movs map[string]*entity.Movimentacao
}

func newFakeMovRepo(movs ...*entity.Movimentacao) *fakeMovRepo {
	r := &fakeMovRepo{movs: make(map[string]*entity.Movimentacao)}
	for _, m := range movs {
		r.movs[m.ID] = m
	}
	return r
}

func (r *fakeMovRepo) Create(m *entity.Movimentacao) error {
	cp := *m
	r.movs[m.ID] = &cp
	return nil
}

func (r *fakeMovRepo) GetByID(id string) (*entity.Movimentacao, error) {
	m, ok := r.movs[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMovRepo) ListByStatus(status []string) ([]*entity.Movimentacao, error) {
	var out []*entity.Movimentacao
	for _, m := range r.movs {
		for _, s := range status {
			if m.Status == s {
				cp := *m
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeMovRepo) Buscar(f repository.FiltroHistorico) ([]*entity.Movimentacao, error) {
	var out []*entity.Movimentacao
	for _, m := range r.movs {
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		if !f.Inicio.IsZero() && m.CriadoEm.Before(f.Inicio) {
			continue
		}
		if !f.Fim.IsZero() && !m.CriadoEm.Before(f.Fim) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *fakeMovRepo) ListDesde(desde time.Time) ([]*entity.Movimentacao, error) {
	var out []*entity.Movimentacao
	for _, m := range r.movs {
		if !m.CriadoEm.Before(desde) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovRepo) UpdateStatus(id, status string) error {
	m, ok := r.movs[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Status = status
	return nil
}

func (r *fakeMovRepo) UpdateQuantidades(m *entity.Movimentacao) error {
	cur, ok := r.movs[m.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Caixas = m.Caixas
	cur.QtdPorCaixa = m.QtdPorCaixa
	cur.UnidadesAvulsas = m.UnidadesAvulsas
	cur.QtdInformada = m.QtdInformada
	cur.Status = m.Status
	return nil
}

type fakeConfRepo struct {
	confs []*entity.Conferencia
}

func (r *fakeConfRepo) Create(c *entity.Conferencia) error {
	for _, e := range r.confs {
		if e.MovimentacaoID == c.MovimentacaoID && e.Fase == c.Fase {
			return domain.ErrConferenciaDuplicada
		}
	}
	cp := *c
	r.confs = append(r.confs, &cp)
	return nil
}

func (r *fakeConfRepo) ExistsByFase(movimentacaoID string, fase int) (bool, error) {
	for _, e := range r.confs {
		if e.MovimentacaoID == movimentacaoID && e.Fase == fase {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeConfRepo) ListByMovimentacao(movimentacaoID string) ([]*entity.Conferencia, error) {
	var out []*entity.Conferencia
	for _, e := range r.confs {
		if e.MovimentacaoID == movimentacaoID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeAjusteRepo struct {
	ajustes []*entity.Ajuste
}

func (r *fakeAjusteRepo) Create(a *entity.Ajuste) error {
	cp := *a
	r.ajustes = append(r.ajustes, &cp)
	return nil
}

func (r *fakeAjusteRepo) ListByMovimentacao(movimentacaoID string) ([]*entity.Ajuste, error) {
	var out []*entity.Ajuste
	for _, e := range r.ajustes {
		if e.MovimentacaoID == movimentacaoID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner passa os fakes direto para o callback; não há transação real,
// mas o contrato do caso de uso é o mesmo.
type fakeTxRunner struct {
	movRepo    *fakeMovRepo
	confRepo   *fakeConfRepo
	ajusteRepo *fakeAjusteRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	confRepo repository.ConferenciaRepository,
	ajusteRepo repository.AjusteRepository,
) error) error {
	return fn(tx.movRepo, tx.confRepo, tx.ajusteRepo)
}

// movPendente movimentação de exemplo na fila de conferência.
func movPendente(id, criadoPor string, total int) *entity.Movimentacao {
	return &entity.Movimentacao{
		ID:              id,
		Item:            "Caixa Térmica 45L",
		Lote:            "20230901",
		QtdInformada:    total,
		Caixas:          2,
		QtdPorCaixa:     10,
		UnidadesAvulsas: total - 20,
		Status:          "PENDENTE",
		CriadoPor:       criadoPor,
		CriadoEm:        time.Now(),
	}
}
