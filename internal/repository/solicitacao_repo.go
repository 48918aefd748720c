package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/model"
)

// SolicitacaoRepository acesso a dados de solicitações de remanejamento
type SolicitacaoRepository interface {
	Create(ctx context.Context, s *model.SolicitacaoRemanejamento) error
	GetByID(ctx context.Context, id string) (*model.SolicitacaoRemanejamento, error)
	List(ctx context.Context, status string, offset, limit int) ([]model.SolicitacaoRemanejamento, int64, error)
	UpdateStatus(ctx context.Context, id, status string, dataConclusao *time.Time) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type solicitacaoRepo struct {
	db *gorm.DB
}

// NewSolicitacaoRepo cria o repositório de solicitações
func NewSolicitacaoRepo(db *gorm.DB) SolicitacaoRepository {
	return &solicitacaoRepo{db: db}
}

func (r *solicitacaoRepo) Create(ctx context.Context, s *model.SolicitacaoRemanejamento) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *solicitacaoRepo) GetByID(ctx context.Context, id string) (*model.SolicitacaoRemanejamento, error) {
	var s model.SolicitacaoRemanejamento
	err := r.db.WithContext(ctx).
		Preload("ContratoOrigem").
		Preload("ContratoDestino").
		Preload("Remanejamentos").
		Preload("Remanejamentos.Funcionario").
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *solicitacaoRepo) List(ctx context.Context, status string, offset, limit int) ([]model.SolicitacaoRemanejamento, int64, error) {
	var solicitacoes []model.SolicitacaoRemanejamento
	var total int64

	db := r.db.WithContext(ctx).Model(&model.SolicitacaoRemanejamento{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("data_solicitacao DESC").
		Find(&solicitacoes).Error
	return solicitacoes, total, err
}

func (r *solicitacaoRepo) UpdateStatus(ctx context.Context, id, status string, dataConclusao *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if dataConclusao != nil {
		updates["data_conclusao"] = *dataConclusao
	}
	return r.db.WithContext(ctx).
		Model(&model.SolicitacaoRemanejamento{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *solicitacaoRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SolicitacaoRemanejamento{}).Error
}

func (r *solicitacaoRepo) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.SolicitacaoRemanejamento{})
	return result.RowsAffected, result.Error
}
