package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/model"
)

// EventoRepository acesso a dados dos eventos de status de tarefa
type EventoRepository interface {
	Create(ctx context.Context, e *model.TarefaStatusEvento) error
	ListByTarefa(ctx context.Context, tarefaID string) ([]model.TarefaStatusEvento, error)
	// Exists aplica a regra de deduplicação: mesmo tarefa_id, status_novo e
	// data_evento comparada como instante exato.
	Exists(ctx context.Context, tarefaID, statusNovo string, dataEvento time.Time) (bool, error)
	ListConcluidos(ctx context.Context) ([]model.TarefaStatusEvento, error)
	UpdateDataEvento(ctx context.Context, id string, dataEvento time.Time) error
	DeleteAll(ctx context.Context) (int64, error)
}

type eventoRepo struct {
	db *gorm.DB
}

// NewEventoRepo cria o repositório de eventos de status
func NewEventoRepo(db *gorm.DB) EventoRepository {
	return &eventoRepo{db: db}
}

func (r *eventoRepo) Create(ctx context.Context, e *model.TarefaStatusEvento) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventoRepo) ListByTarefa(ctx context.Context, tarefaID string) ([]model.TarefaStatusEvento, error) {
	var eventos []model.TarefaStatusEvento
	err := r.db.WithContext(ctx).
		Where("tarefa_id = ?", tarefaID).
		Order("data_evento ASC").
		Find(&eventos).Error
	return eventos, err
}

func (r *eventoRepo) Exists(ctx context.Context, tarefaID, statusNovo string, dataEvento time.Time) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.TarefaStatusEvento{}).
		Where("tarefa_id = ? AND status_novo = ? AND data_evento = ?", tarefaID, statusNovo, dataEvento.UTC()).
		Count(&total).Error
	return total > 0, err
}

func (r *eventoRepo) ListConcluidos(ctx context.Context) ([]model.TarefaStatusEvento, error) {
	var eventos []model.TarefaStatusEvento
	err := r.db.WithContext(ctx).
		Where("status_novo IN ?", []string{"CONCLUIDO", "CONCLUIDA"}).
		Find(&eventos).Error
	return eventos, err
}

func (r *eventoRepo) UpdateDataEvento(ctx context.Context, id string, dataEvento time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.TarefaStatusEvento{}).
		Where("id = ?", id).
		Update("data_evento", dataEvento.UTC()).Error
}

func (r *eventoRepo) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.TarefaStatusEvento{})
	return result.RowsAffected, result.Error
}
