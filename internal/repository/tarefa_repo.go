package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/model"
	pkgerrors "github.com/GranTechDigital/crewflow-sub006/pkg/errors"
)

// TarefaRepository acesso a dados das tarefas de remanejamento
type TarefaRepository interface {
	Create(ctx context.Context, t *model.TarefaRemanejamento) error
	GetByID(ctx context.Context, id string) (*model.TarefaRemanejamento, error)
	ListByRemanejamento(ctx context.Context, remanejamentoID string) ([]model.TarefaRemanejamento, error)
	ListAll(ctx context.Context) ([]model.TarefaRemanejamento, error)
	ListAtivasComDataLimite(ctx context.Context) ([]model.TarefaRemanejamento, error)
	UpdateStatus(ctx context.Context, id, status string, dataConclusao *time.Time) error
	// UpdateStatusFrom atualiza o status apenas se o valor atual for statusAtual;
	// devolve ErrOptimisticLock quando outra operação alterou a tarefa antes.
	UpdateStatusFrom(ctx context.Context, id, statusAtual, novoStatus string) error
	AddObservacao(ctx context.Context, obs *model.TarefaObservacao) error
	DeleteByRemanejamento(ctx context.Context, remanejamentoID string) (int64, error)
	DeleteObservacoesByRemanejamento(ctx context.Context, remanejamentoID string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	DeleteAllObservacoes(ctx context.Context) (int64, error)
}

type tarefaRepo struct {
	db *gorm.DB
}

// NewTarefaRepo cria o repositório de tarefas
func NewTarefaRepo(db *gorm.DB) TarefaRepository {
	return &tarefaRepo{db: db}
}

func (r *tarefaRepo) Create(ctx context.Context, t *model.TarefaRemanejamento) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tarefaRepo) GetByID(ctx context.Context, id string) (*model.TarefaRemanejamento, error) {
	var t model.TarefaRemanejamento
	err := r.db.WithContext(ctx).
		Preload("Observacoes").
		Where("id = ?", id).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tarefaRepo) ListByRemanejamento(ctx context.Context, remanejamentoID string) ([]model.TarefaRemanejamento, error) {
	var tarefas []model.TarefaRemanejamento
	err := r.db.WithContext(ctx).
		Where("remanejamento_funcionario_id = ?", remanejamentoID).
		Order("data_criacao ASC").
		Find(&tarefas).Error
	return tarefas, err
}

func (r *tarefaRepo) ListAll(ctx context.Context) ([]model.TarefaRemanejamento, error) {
	var tarefas []model.TarefaRemanejamento
	err := r.db.WithContext(ctx).
		Order("data_criacao ASC").
		Find(&tarefas).Error
	return tarefas, err
}

func (r *tarefaRepo) ListAtivasComDataLimite(ctx context.Context) ([]model.TarefaRemanejamento, error) {
	var tarefas []model.TarefaRemanejamento
	err := r.db.WithContext(ctx).
		Preload("Remanejamento").
		Preload("Remanejamento.Funcionario").
		Where("status IN ? AND data_limite IS NOT NULL", []string{model.TarefaPendente, model.TarefaEmAndamento}).
		Order("data_limite ASC").
		Find(&tarefas).Error
	return tarefas, err
}

func (r *tarefaRepo) UpdateStatus(ctx context.Context, id, status string, dataConclusao *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if dataConclusao != nil {
		updates["data_conclusao"] = *dataConclusao
	}
	return r.db.WithContext(ctx).
		Model(&model.TarefaRemanejamento{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *tarefaRepo) UpdateStatusFrom(ctx context.Context, id, statusAtual, novoStatus string) error {
	result := r.db.WithContext(ctx).
		Model(&model.TarefaRemanejamento{}).
		Where("id = ? AND status = ?", id, statusAtual).
		Update("status", novoStatus)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	return nil
}

func (r *tarefaRepo) AddObservacao(ctx context.Context, obs *model.TarefaObservacao) error {
	return r.db.WithContext(ctx).Create(obs).Error
}

func (r *tarefaRepo) DeleteByRemanejamento(ctx context.Context, remanejamentoID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("remanejamento_funcionario_id = ?", remanejamentoID).
		Delete(&model.TarefaRemanejamento{})
	return result.RowsAffected, result.Error
}

func (r *tarefaRepo) DeleteObservacoesByRemanejamento(ctx context.Context, remanejamentoID string) (int64, error) {
	sub := r.db.Model(&model.TarefaRemanejamento{}).
		Select("id").
		Where("remanejamento_funcionario_id = ?", remanejamentoID)
	result := r.db.WithContext(ctx).
		Where("tarefa_id IN (?)", sub).
		Delete(&model.TarefaObservacao{})
	return result.RowsAffected, result.Error
}

func (r *tarefaRepo) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.TarefaRemanejamento{})
	return result.RowsAffected, result.Error
}

func (r *tarefaRepo) DeleteAllObservacoes(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.TarefaObservacao{})
	return result.RowsAffected, result.Error
}
