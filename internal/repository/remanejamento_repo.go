package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/model"
)

// RemanejamentoRepository acesso a dados dos remanejamentos por funcionário
type RemanejamentoRepository interface {
	Create(ctx context.Context, rem *model.RemanejamentoFuncionario) error
	BatchCreate(ctx context.Context, rems []model.RemanejamentoFuncionario) error
	GetByID(ctx context.Context, id string) (*model.RemanejamentoFuncionario, error)
	ListBySolicitacao(ctx context.Context, solicitacaoID string) ([]model.RemanejamentoFuncionario, error)
	// ListEscopoAtivo resolve o conjunto de trabalho da sincronização: remanejamentos
	// de funcionários em migração, opcionalmente restrito a funcionários/registros.
	ListEscopoAtivo(ctx context.Context, funcionarioIDs []uint, remanejamentoIDs []string) ([]model.RemanejamentoFuncionario, error)
	UpdateStatusPrestserv(ctx context.Context, id, status string) error
	Update(ctx context.Context, rem *model.RemanejamentoFuncionario) error
	CountByFuncionario(ctx context.Context, funcionarioID uint) (int64, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type remanejamentoRepo struct {
	db *gorm.DB
}

// NewRemanejamentoRepo cria o repositório de remanejamentos
func NewRemanejamentoRepo(db *gorm.DB) RemanejamentoRepository {
	return &remanejamentoRepo{db: db}
}

func (r *remanejamentoRepo) Create(ctx context.Context, rem *model.RemanejamentoFuncionario) error {
	return r.db.WithContext(ctx).Create(rem).Error
}

func (r *remanejamentoRepo) BatchCreate(ctx context.Context, rems []model.RemanejamentoFuncionario) error {
	if len(rems) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rems).Error
}

func (r *remanejamentoRepo) GetByID(ctx context.Context, id string) (*model.RemanejamentoFuncionario, error) {
	var rem model.RemanejamentoFuncionario
	err := r.db.WithContext(ctx).
		Preload("Funcionario").
		Preload("Funcionario.Funcao").
		Preload("Solicitacao").
		Preload("Tarefas").
		Where("id = ?", id).
		First(&rem).Error
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *remanejamentoRepo) ListBySolicitacao(ctx context.Context, solicitacaoID string) ([]model.RemanejamentoFuncionario, error) {
	var rems []model.RemanejamentoFuncionario
	err := r.db.WithContext(ctx).
		Preload("Funcionario").
		Where("solicitacao_id = ?", solicitacaoID).
		Order("created_at ASC").
		Find(&rems).Error
	return rems, err
}

func (r *remanejamentoRepo) ListEscopoAtivo(ctx context.Context, funcionarioIDs []uint, remanejamentoIDs []string) ([]model.RemanejamentoFuncionario, error) {
	var rems []model.RemanejamentoFuncionario
	db := r.db.WithContext(ctx).
		Preload("Funcionario").
		Preload("Funcionario.Funcao").
		Preload("Solicitacao").
		Joins("JOIN funcionarios ON funcionarios.id = remanejamentos_funcionario.funcionario_id").
		Where("funcionarios.em_migracao = ?", true)

	if len(funcionarioIDs) > 0 {
		db = db.Where("remanejamentos_funcionario.funcionario_id IN ?", funcionarioIDs)
	}
	if len(remanejamentoIDs) > 0 {
		db = db.Where("remanejamentos_funcionario.id IN ?", remanejamentoIDs)
	}

	err := db.Find(&rems).Error
	return rems, err
}

func (r *remanejamentoRepo) UpdateStatusPrestserv(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.RemanejamentoFuncionario{}).
		Where("id = ?", id).
		Update("status_prestserv", status).Error
}

func (r *remanejamentoRepo) Update(ctx context.Context, rem *model.RemanejamentoFuncionario) error {
	return r.db.WithContext(ctx).Save(rem).Error
}

func (r *remanejamentoRepo) CountByFuncionario(ctx context.Context, funcionarioID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.RemanejamentoFuncionario{}).
		Where("funcionario_id = ?", funcionarioID).
		Count(&total).Error
	return total, err
}

func (r *remanejamentoRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RemanejamentoFuncionario{}).Error
}

func (r *remanejamentoRepo) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.RemanejamentoFuncionario{})
	return result.RowsAffected, result.Error
}
