package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/model"
	"github.com/GranTechDigital/crewflow-sub006/internal/repository"
	pkgerrors "github.com/GranTechDigital/crewflow-sub006/pkg/errors"
)

// mockStore estado compartilhado em memória por todos os repositórios de teste
type mockStore struct {
	funcionarios   map[uint]*model.Funcionario
	matriz         map[string]*model.MatrizTreinamento
	solicitacoes   map[string]*model.SolicitacaoRemanejamento
	remanejamentos map[string]*model.RemanejamentoFuncionario
	tarefas        map[string]*model.TarefaRemanejamento
	observacoes    []model.TarefaObservacao
	eventos        []model.TarefaStatusEvento
	historicos     []model.HistoricoRemanejamento
	usuarios       map[string]*model.Usuario
	seqHistorico   uint64
}

func newMockStore() *mockStore {
	return &mockStore{
		funcionarios:   make(map[uint]*model.Funcionario),
		matriz:         make(map[string]*model.MatrizTreinamento),
		solicitacoes:   make(map[string]*model.SolicitacaoRemanejamento),
		remanejamentos: make(map[string]*model.RemanejamentoFuncionario),
		tarefas:        make(map[string]*model.TarefaRemanejamento),
		usuarios:       make(map[string]*model.Usuario),
	}
}

// newMockRepository monta o agregado de repositórios sobre o estado em memória.
// Atomic apenas executa a função sobre o mesmo agregado: os testes de serviço
// exercitam a ordem das operações, não o isolamento transacional.
func newMockRepository() (*repository.Repository, *mockStore) {
	st := newMockStore()
	r := &repository.Repository{
		Funcionario:   &mockFuncionarioRepo{st: st},
		Matriz:        &mockMatrizRepo{st: st},
		Solicitacao:   &mockSolicitacaoRepo{st: st},
		Remanejamento: &mockRemanejamentoRepo{st: st},
		Tarefa:        &mockTarefaRepo{st: st},
		Evento:        &mockEventoRepo{st: st},
		Historico:     &mockHistoricoRepo{st: st},
		Usuario:       &mockUsuarioRepo{st: st},
	}
	r.Atomic = func(ctx context.Context, fn func(tx *repository.Repository) error) error {
		return fn(r)
	}
	return r, st
}

// testEnv serviços de base que a maioria dos testes precisa
type testEnv struct {
	repo      *repository.Repository
	st        *mockStore
	historico HistoricoService
	eventos   EventoService
}

func newTestEnv() *testEnv {
	repo, st := newMockRepository()
	logger := zap.NewNop()
	return &testEnv{
		repo:      repo,
		st:        st,
		historico: NewHistoricoService(repo, 100, logger),
		eventos:   NewEventoService(repo, logger),
	}
}

// ── Funcionario ──

type mockFuncionarioRepo struct{ st *mockStore }

func (m *mockFuncionarioRepo) Create(_ context.Context, f *model.Funcionario) error {
	if f.ID == 0 {
		f.ID = uint(len(m.st.funcionarios) + 1)
	}
	cp := *f
	m.st.funcionarios[f.ID] = &cp
	return nil
}

func (m *mockFuncionarioRepo) GetByID(_ context.Context, id uint) (*model.Funcionario, error) {
	f, ok := m.st.funcionarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f
	return &cp, nil
}

func (m *mockFuncionarioRepo) List(_ context.Context, offset, limit int) ([]model.Funcionario, int64, error) {
	var out []model.Funcionario
	for _, f := range m.st.funcionarios {
		out = append(out, *f)
	}
	return out, int64(len(out)), nil
}

func (m *mockFuncionarioRepo) Update(_ context.Context, f *model.Funcionario) error {
	if _, ok := m.st.funcionarios[f.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *f
	m.st.funcionarios[f.ID] = &cp
	return nil
}

func (m *mockFuncionarioRepo) SetEmMigracao(_ context.Context, id uint, emMigracao bool) error {
	f, ok := m.st.funcionarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	f.EmMigracao = emMigracao
	return nil
}

func (m *mockFuncionarioRepo) ResetEmMigracao(_ context.Context) (int64, error) {
	var n int64
	for _, f := range m.st.funcionarios {
		if f.EmMigracao {
			f.EmMigracao = false
			n++
		}
	}
	return n, nil
}

// ── Matriz ──

type mockMatrizRepo struct{ st *mockStore }

func (m *mockMatrizRepo) Create(_ context.Context, e *model.MatrizTreinamento) error {
	for _, x := range m.st.matriz {
		if x.ContratoID == e.ContratoID && x.FuncaoID == e.FuncaoID && x.TreinamentoID == e.TreinamentoID {
			return pkgerrors.ErrChaveDuplicada
		}
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	cp := *e
	m.st.matriz[e.ID] = &cp
	return nil
}

func (m *mockMatrizRepo) GetByID(_ context.Context, id string) (*model.MatrizTreinamento, error) {
	e, ok := m.st.matriz[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *mockMatrizRepo) List(_ context.Context, contratoID, funcaoID string, offset, limit int) ([]model.MatrizTreinamento, int64, error) {
	var out []model.MatrizTreinamento
	for _, e := range m.st.matriz {
		if contratoID != "" && e.ContratoID != contratoID {
			continue
		}
		if funcaoID != "" && e.FuncaoID != funcaoID {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (m *mockMatrizRepo) ListPorContratoFuncao(_ context.Context, contratoID, funcaoID string) ([]model.MatrizTreinamento, error) {
	var out []model.MatrizTreinamento
	for _, e := range m.st.matriz {
		if e.ContratoID == contratoID && e.FuncaoID == funcaoID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockMatrizRepo) Update(_ context.Context, e *model.MatrizTreinamento) error {
	if _, ok := m.st.matriz[e.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *e
	m.st.matriz[e.ID] = &cp
	return nil
}

func (m *mockMatrizRepo) Delete(_ context.Context, id string) error {
	delete(m.st.matriz, id)
	return nil
}

// ── Solicitacao ──

type mockSolicitacaoRepo struct{ st *mockStore }

func (m *mockSolicitacaoRepo) Create(_ context.Context, s *model.SolicitacaoRemanejamento) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	cp := *s
	cp.Remanejamentos = nil
	m.st.solicitacoes[s.ID] = &cp
	return nil
}

func (m *mockSolicitacaoRepo) GetByID(_ context.Context, id string) (*model.SolicitacaoRemanejamento, error) {
	s, ok := m.st.solicitacoes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	for _, rem := range m.st.remanejamentos {
		if rem.SolicitacaoID == id {
			rcp := *rem
			if f, ok := m.st.funcionarios[rem.FuncionarioID]; ok {
				fcp := *f
				rcp.Funcionario = &fcp
			}
			cp.Remanejamentos = append(cp.Remanejamentos, rcp)
		}
	}
	return &cp, nil
}

func (m *mockSolicitacaoRepo) List(_ context.Context, status string, offset, limit int) ([]model.SolicitacaoRemanejamento, int64, error) {
	var out []model.SolicitacaoRemanejamento
	for _, s := range m.st.solicitacoes {
		if status != "" && s.Status != status {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (m *mockSolicitacaoRepo) UpdateStatus(_ context.Context, id, status string, dataConclusao *time.Time) error {
	s, ok := m.st.solicitacoes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Status = status
	if dataConclusao != nil {
		s.DataConclusao = dataConclusao
	}
	return nil
}

func (m *mockSolicitacaoRepo) Delete(_ context.Context, id string) error {
	delete(m.st.solicitacoes, id)
	return nil
}

func (m *mockSolicitacaoRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.st.solicitacoes))
	m.st.solicitacoes = make(map[string]*model.SolicitacaoRemanejamento)
	return n, nil
}

// ── Remanejamento ──

type mockRemanejamentoRepo struct{ st *mockStore }

func (m *mockRemanejamentoRepo) preencher(rem *model.RemanejamentoFuncionario) model.RemanejamentoFuncionario {
	cp := *rem
	if f, ok := m.st.funcionarios[rem.FuncionarioID]; ok {
		fcp := *f
		cp.Funcionario = &fcp
	}
	if s, ok := m.st.solicitacoes[rem.SolicitacaoID]; ok {
		scp := *s
		cp.Solicitacao = &scp
	}
	return cp
}

func (m *mockRemanejamentoRepo) Create(_ context.Context, rem *model.RemanejamentoFuncionario) error {
	if rem.ID == "" {
		rem.ID = uuid.New().String()
	}
	cp := *rem
	m.st.remanejamentos[rem.ID] = &cp
	return nil
}

func (m *mockRemanejamentoRepo) BatchCreate(ctx context.Context, rems []model.RemanejamentoFuncionario) error {
	for i := range rems {
		if err := m.Create(ctx, &rems[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockRemanejamentoRepo) GetByID(_ context.Context, id string) (*model.RemanejamentoFuncionario, error) {
	rem, ok := m.st.remanejamentos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := m.preencher(rem)
	return &cp, nil
}

func (m *mockRemanejamentoRepo) ListBySolicitacao(_ context.Context, solicitacaoID string) ([]model.RemanejamentoFuncionario, error) {
	var out []model.RemanejamentoFuncionario
	for _, rem := range m.st.remanejamentos {
		if rem.SolicitacaoID == solicitacaoID {
			out = append(out, m.preencher(rem))
		}
	}
	return out, nil
}

func (m *mockRemanejamentoRepo) ListEscopoAtivo(_ context.Context, funcionarioIDs []uint, remanejamentoIDs []string) ([]model.RemanejamentoFuncionario, error) {
	porFuncionario := make(map[uint]bool)
	for _, id := range funcionarioIDs {
		porFuncionario[id] = true
	}
	porRemanejamento := make(map[string]bool)
	for _, id := range remanejamentoIDs {
		porRemanejamento[id] = true
	}

	var out []model.RemanejamentoFuncionario
	for _, rem := range m.st.remanejamentos {
		f, ok := m.st.funcionarios[rem.FuncionarioID]
		if !ok || !f.EmMigracao {
			continue
		}
		if len(porFuncionario) > 0 && !porFuncionario[rem.FuncionarioID] {
			continue
		}
		if len(porRemanejamento) > 0 && !porRemanejamento[rem.ID] {
			continue
		}
		out = append(out, m.preencher(rem))
	}
	return out, nil
}

func (m *mockRemanejamentoRepo) UpdateStatusPrestserv(_ context.Context, id, status string) error {
	rem, ok := m.st.remanejamentos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	rem.StatusPrestserv = status
	return nil
}

func (m *mockRemanejamentoRepo) Update(_ context.Context, rem *model.RemanejamentoFuncionario) error {
	if _, ok := m.st.remanejamentos[rem.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *rem
	cp.Funcionario = nil
	cp.Solicitacao = nil
	cp.Tarefas = nil
	m.st.remanejamentos[rem.ID] = &cp
	return nil
}

func (m *mockRemanejamentoRepo) CountByFuncionario(_ context.Context, funcionarioID uint) (int64, error) {
	var n int64
	for _, rem := range m.st.remanejamentos {
		if rem.FuncionarioID == funcionarioID {
			n++
		}
	}
	return n, nil
}

func (m *mockRemanejamentoRepo) Delete(_ context.Context, id string) error {
	delete(m.st.remanejamentos, id)
	return nil
}

func (m *mockRemanejamentoRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.st.remanejamentos))
	m.st.remanejamentos = make(map[string]*model.RemanejamentoFuncionario)
	return n, nil
}

// ── Tarefa ──

type mockTarefaRepo struct{ st *mockStore }

func (m *mockTarefaRepo) Create(_ context.Context, t *model.TarefaRemanejamento) error {
	for _, x := range m.st.tarefas {
		if x.RemanejamentoFuncionarioID == t.RemanejamentoFuncionarioID &&
			x.Tipo == t.Tipo && x.Responsavel == t.Responsavel {
			return pkgerrors.ErrChaveDuplicada
		}
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.DataCriacao.IsZero() {
		t.DataCriacao = time.Now().UTC()
	}
	cp := *t
	m.st.tarefas[t.ID] = &cp
	return nil
}

func (m *mockTarefaRepo) GetByID(_ context.Context, id string) (*model.TarefaRemanejamento, error) {
	t, ok := m.st.tarefas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	for _, o := range m.st.observacoes {
		if o.TarefaID == id {
			cp.Observacoes = append(cp.Observacoes, o)
		}
	}
	return &cp, nil
}

func (m *mockTarefaRepo) ListByRemanejamento(_ context.Context, remanejamentoID string) ([]model.TarefaRemanejamento, error) {
	var out []model.TarefaRemanejamento
	for _, t := range m.st.tarefas {
		if t.RemanejamentoFuncionarioID == remanejamentoID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DataCriacao.Before(out[j].DataCriacao) })
	return out, nil
}

func (m *mockTarefaRepo) ListAll(_ context.Context) ([]model.TarefaRemanejamento, error) {
	var out []model.TarefaRemanejamento
	for _, t := range m.st.tarefas {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DataCriacao.Before(out[j].DataCriacao) })
	return out, nil
}

func (m *mockTarefaRepo) ListAtivasComDataLimite(_ context.Context) ([]model.TarefaRemanejamento, error) {
	var out []model.TarefaRemanejamento
	for _, t := range m.st.tarefas {
		if t.DataLimite == nil {
			continue
		}
		if t.Status != model.TarefaPendente && t.Status != model.TarefaEmAndamento {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTarefaRepo) UpdateStatus(_ context.Context, id, status string, dataConclusao *time.Time) error {
	t, ok := m.st.tarefas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Status = status
	if dataConclusao != nil {
		t.DataConclusao = dataConclusao
	}
	return nil
}

func (m *mockTarefaRepo) UpdateStatusFrom(_ context.Context, id, statusAtual, novoStatus string) error {
	t, ok := m.st.tarefas[id]
	if !ok || t.Status != statusAtual {
		return pkgerrors.ErrOptimisticLock
	}
	t.Status = novoStatus
	return nil
}

func (m *mockTarefaRepo) AddObservacao(_ context.Context, obs *model.TarefaObservacao) error {
	if obs.ID == "" {
		obs.ID = uuid.New().String()
	}
	m.st.observacoes = append(m.st.observacoes, *obs)
	return nil
}

func (m *mockTarefaRepo) DeleteByRemanejamento(_ context.Context, remanejamentoID string) (int64, error) {
	var n int64
	for id, t := range m.st.tarefas {
		if t.RemanejamentoFuncionarioID == remanejamentoID {
			delete(m.st.tarefas, id)
			n++
		}
	}
	return n, nil
}

func (m *mockTarefaRepo) DeleteObservacoesByRemanejamento(_ context.Context, remanejamentoID string) (int64, error) {
	pertence := make(map[string]bool)
	for id, t := range m.st.tarefas {
		if t.RemanejamentoFuncionarioID == remanejamentoID {
			pertence[id] = true
		}
	}
	var mantidas []model.TarefaObservacao
	var n int64
	for _, o := range m.st.observacoes {
		if pertence[o.TarefaID] {
			n++
			continue
		}
		mantidas = append(mantidas, o)
	}
	m.st.observacoes = mantidas
	return n, nil
}

func (m *mockTarefaRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.st.tarefas))
	m.st.tarefas = make(map[string]*model.TarefaRemanejamento)
	return n, nil
}

func (m *mockTarefaRepo) DeleteAllObservacoes(_ context.Context) (int64, error) {
	n := int64(len(m.st.observacoes))
	m.st.observacoes = nil
	return n, nil
}

// ── Evento ──

type mockEventoRepo struct{ st *mockStore }

func (m *mockEventoRepo) Create(_ context.Context, e *model.TarefaStatusEvento) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	m.st.eventos = append(m.st.eventos, *e)
	return nil
}

func (m *mockEventoRepo) ListByTarefa(_ context.Context, tarefaID string) ([]model.TarefaStatusEvento, error) {
	var out []model.TarefaStatusEvento
	for _, e := range m.st.eventos {
		if e.TarefaID == tarefaID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DataEvento.Before(out[j].DataEvento) })
	return out, nil
}

func (m *mockEventoRepo) Exists(_ context.Context, tarefaID, statusNovo string, dataEvento time.Time) (bool, error) {
	for _, e := range m.st.eventos {
		if e.TarefaID == tarefaID && e.StatusNovo == statusNovo && e.DataEvento.Equal(dataEvento.UTC()) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEventoRepo) ListConcluidos(_ context.Context) ([]model.TarefaStatusEvento, error) {
	var out []model.TarefaStatusEvento
	for _, e := range m.st.eventos {
		if model.StatusConcluido(e.StatusNovo) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEventoRepo) UpdateDataEvento(_ context.Context, id string, dataEvento time.Time) error {
	for i := range m.st.eventos {
		if m.st.eventos[i].ID == id {
			m.st.eventos[i].DataEvento = dataEvento.UTC()
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockEventoRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.st.eventos))
	m.st.eventos = nil
	return n, nil
}

// ── Historico ──

type mockHistoricoRepo struct{ st *mockStore }

func (m *mockHistoricoRepo) Create(_ context.Context, h *model.HistoricoRemanejamento) error {
	m.st.seqHistorico++
	h.ID = m.st.seqHistorico
	if h.DataAcao.IsZero() {
		h.DataAcao = time.Now().UTC()
	}
	m.st.historicos = append(m.st.historicos, *h)
	return nil
}

func (m *mockHistoricoRepo) BatchCreate(ctx context.Context, hs []model.HistoricoRemanejamento, batchSize int) error {
	for i := range hs {
		if err := m.Create(ctx, &hs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockHistoricoRepo) Query(_ context.Context, filtro repository.FiltroHistorico, offset, limit int) ([]model.HistoricoRemanejamento, int64, error) {
	var out []model.HistoricoRemanejamento
	for _, h := range m.st.historicos {
		if filtro.SolicitacaoID != "" && (h.SolicitacaoID == nil || *h.SolicitacaoID != filtro.SolicitacaoID) {
			continue
		}
		if filtro.RemanejamentoFuncionarioID != "" && (h.RemanejamentoFuncionarioID == nil || *h.RemanejamentoFuncionarioID != filtro.RemanejamentoFuncionarioID) {
			continue
		}
		if filtro.TarefaID != "" && (h.TarefaID == nil || *h.TarefaID != filtro.TarefaID) {
			continue
		}
		if filtro.Entidade != "" && h.Entidade != filtro.Entidade {
			continue
		}
		if filtro.TipoAcao != "" && h.TipoAcao != filtro.TipoAcao {
			continue
		}
		if filtro.Desde != nil && h.DataAcao.Before(*filtro.Desde) {
			continue
		}
		out = append(out, h)
	}
	total := int64(len(out))
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DataAcao.Equal(out[j].DataAcao) {
			return out[i].DataAcao.After(out[j].DataAcao)
		}
		return out[i].ID > out[j].ID
	})
	if offset > len(out) {
		offset = len(out)
	}
	fim := offset + limit
	if limit <= 0 || fim > len(out) {
		fim = len(out)
	}
	return out[offset:fim], total, nil
}

func (m *mockHistoricoRepo) ListReativacoesDesde(_ context.Context, desde time.Time, identidades []string) ([]model.HistoricoRemanejamento, error) {
	permitidas := make(map[string]bool)
	for _, id := range identidades {
		permitidas[id] = true
	}
	var out []model.HistoricoRemanejamento
	for _, h := range m.st.historicos {
		if h.TipoAcao != model.AcaoReativacao || h.Entidade != model.EntidadeTarefa {
			continue
		}
		if h.TarefaID == nil || h.DataAcao.Before(desde) || !permitidas[h.UsuarioNome] {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockHistoricoRepo) GetUltimoPorTarefa(_ context.Context, tarefaID string) (*model.HistoricoRemanejamento, error) {
	var ultimo *model.HistoricoRemanejamento
	for i := range m.st.historicos {
		h := &m.st.historicos[i]
		if h.TarefaID == nil || *h.TarefaID != tarefaID {
			continue
		}
		if ultimo == nil || h.DataAcao.After(ultimo.DataAcao) ||
			(h.DataAcao.Equal(ultimo.DataAcao) && h.ID > ultimo.ID) {
			ultimo = h
		}
	}
	if ultimo == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ultimo
	return &cp, nil
}

func (m *mockHistoricoRepo) ListMudancasStatusTarefas(_ context.Context, tarefaIDs []string) ([]model.HistoricoRemanejamento, error) {
	filtro := make(map[string]bool)
	for _, id := range tarefaIDs {
		filtro[id] = true
	}
	var out []model.HistoricoRemanejamento
	for _, h := range m.st.historicos {
		if h.Entidade != model.EntidadeTarefa || h.TarefaID == nil {
			continue
		}
		if h.CampoAlterado == nil || !strings.EqualFold(*h.CampoAlterado, "status") {
			continue
		}
		if len(filtro) > 0 && !filtro[*h.TarefaID] {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DataAcao.Equal(out[j].DataAcao) {
			return out[i].DataAcao.Before(out[j].DataAcao)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *mockHistoricoRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.st.historicos))
	m.st.historicos = nil
	return n, nil
}

// ── Usuario ──

type mockUsuarioRepo struct{ st *mockStore }

func (m *mockUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	cp := *u
	m.st.usuarios[u.ID] = &cp
	return nil
}

func (m *mockUsuarioRepo) GetByID(_ context.Context, id string) (*model.Usuario, error) {
	u, ok := m.st.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUsuarioRepo) GetByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range m.st.usuarios {
		if u.Email == email && u.Ativo {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
