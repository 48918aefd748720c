package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/model"
)

// FiltroHistorico filtros da consulta ao livro-razão
type FiltroHistorico struct {
	SolicitacaoID              string
	RemanejamentoFuncionarioID string
	TarefaID                   string
	Entidade                   string
	TipoAcao                   string
	Desde                      *time.Time
}

// HistoricoRepository acesso a dados do livro-razão de auditoria.
// Somente inserção e consulta; DeleteAll existe apenas para o purge administrativo.
type HistoricoRepository interface {
	Create(ctx context.Context, h *model.HistoricoRemanejamento) error
	BatchCreate(ctx context.Context, hs []model.HistoricoRemanejamento, batchSize int) error
	Query(ctx context.Context, filtro FiltroHistorico, offset, limit int) ([]model.HistoricoRemanejamento, int64, error)
	// ListReativacoesDesde reativações automáticas de tarefas dentro da janela,
	// atribuídas a uma das identidades informadas.
	ListReativacoesDesde(ctx context.Context, desde time.Time, identidades []string) ([]model.HistoricoRemanejamento, error)
	// GetUltimoPorTarefa entrada mais recente da tarefa; desempate por id (BIGSERIAL).
	GetUltimoPorTarefa(ctx context.Context, tarefaID string) (*model.HistoricoRemanejamento, error)
	// ListMudancasStatusTarefas varredura do backfill: entidade=TAREFA,
	// campo_alterado=status, ordem crescente de data_acao.
	ListMudancasStatusTarefas(ctx context.Context, tarefaIDs []string) ([]model.HistoricoRemanejamento, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type historicoRepo struct {
	db *gorm.DB
}

// NewHistoricoRepo cria o repositório do histórico
func NewHistoricoRepo(db *gorm.DB) HistoricoRepository {
	return &historicoRepo{db: db}
}

func (r *historicoRepo) Create(ctx context.Context, h *model.HistoricoRemanejamento) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *historicoRepo) BatchCreate(ctx context.Context, hs []model.HistoricoRemanejamento, batchSize int) error {
	if len(hs) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}
	return r.db.WithContext(ctx).CreateInBatches(&hs, batchSize).Error
}

func (r *historicoRepo) Query(ctx context.Context, filtro FiltroHistorico, offset, limit int) ([]model.HistoricoRemanejamento, int64, error) {
	var entradas []model.HistoricoRemanejamento
	var total int64

	db := r.db.WithContext(ctx).Model(&model.HistoricoRemanejamento{})
	if filtro.SolicitacaoID != "" {
		db = db.Where("solicitacao_id = ?", filtro.SolicitacaoID)
	}
	if filtro.RemanejamentoFuncionarioID != "" {
		db = db.Where("remanejamento_funcionario_id = ?", filtro.RemanejamentoFuncionarioID)
	}
	if filtro.TarefaID != "" {
		db = db.Where("tarefa_id = ?", filtro.TarefaID)
	}
	if filtro.Entidade != "" {
		db = db.Where("entidade = ?", filtro.Entidade)
	}
	if filtro.TipoAcao != "" {
		db = db.Where("tipo_acao = ?", filtro.TipoAcao)
	}
	if filtro.Desde != nil {
		db = db.Where("data_acao >= ?", *filtro.Desde)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("data_acao DESC, id DESC").
		Find(&entradas).Error
	return entradas, total, err
}

func (r *historicoRepo) ListReativacoesDesde(ctx context.Context, desde time.Time, identidades []string) ([]model.HistoricoRemanejamento, error) {
	var entradas []model.HistoricoRemanejamento
	err := r.db.WithContext(ctx).
		Where("tipo_acao = ? AND entidade = ? AND data_acao >= ?", model.AcaoReativacao, model.EntidadeTarefa, desde).
		Where("usuario_nome IN ?", identidades).
		Where("tarefa_id IS NOT NULL").
		Order("data_acao ASC, id ASC").
		Find(&entradas).Error
	return entradas, err
}

func (r *historicoRepo) GetUltimoPorTarefa(ctx context.Context, tarefaID string) (*model.HistoricoRemanejamento, error) {
	var h model.HistoricoRemanejamento
	err := r.db.WithContext(ctx).
		Where("tarefa_id = ?", tarefaID).
		Order("data_acao DESC, id DESC").
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *historicoRepo) ListMudancasStatusTarefas(ctx context.Context, tarefaIDs []string) ([]model.HistoricoRemanejamento, error) {
	var entradas []model.HistoricoRemanejamento
	db := r.db.WithContext(ctx).
		Where("entidade = ? AND campo_alterado = ?", model.EntidadeTarefa, "status").
		Where("tarefa_id IS NOT NULL")
	if len(tarefaIDs) > 0 {
		db = db.Where("tarefa_id IN ?", tarefaIDs)
	}
	err := db.Order("data_acao ASC, id ASC").Find(&entradas).Error
	return entradas, err
}

func (r *historicoRepo) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.HistoricoRemanejamento{})
	return result.RowsAffected, result.Error
}
