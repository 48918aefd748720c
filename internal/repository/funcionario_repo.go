package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/model"
)

// FuncionarioRepository acesso a dados de funcionários
type FuncionarioRepository interface {
	Create(ctx context.Context, f *model.Funcionario) error
	GetByID(ctx context.Context, id uint) (*model.Funcionario, error)
	List(ctx context.Context, offset, limit int) ([]model.Funcionario, int64, error)
	Update(ctx context.Context, f *model.Funcionario) error
	SetEmMigracao(ctx context.Context, id uint, emMigracao bool) error
	ResetEmMigracao(ctx context.Context) (int64, error)
}

type funcionarioRepo struct {
	db *gorm.DB
}

// NewFuncionarioRepo cria o repositório de funcionários
func NewFuncionarioRepo(db *gorm.DB) FuncionarioRepository {
	return &funcionarioRepo{db: db}
}

func (r *funcionarioRepo) Create(ctx context.Context, f *model.Funcionario) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *funcionarioRepo) GetByID(ctx context.Context, id uint) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.WithContext(ctx).
		Preload("Contrato").
		Preload("CentroCusto").
		Preload("Funcao").
		Where("id = ?", id).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *funcionarioRepo) List(ctx context.Context, offset, limit int) ([]model.Funcionario, int64, error) {
	var funcionarios []model.Funcionario
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Funcionario{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Contrato").Preload("Funcao").
		Offset(offset).Limit(limit).
		Order("nome ASC").
		Find(&funcionarios).Error
	return funcionarios, total, err
}

func (r *funcionarioRepo) Update(ctx context.Context, f *model.Funcionario) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *funcionarioRepo) SetEmMigracao(ctx context.Context, id uint, emMigracao bool) error {
	return r.db.WithContext(ctx).
		Model(&model.Funcionario{}).
		Where("id = ?", id).
		Update("em_migracao", emMigracao).Error
}

func (r *funcionarioRepo) ResetEmMigracao(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Funcionario{}).
		Where("em_migracao = ?", true).
		Update("em_migracao", false)
	return result.RowsAffected, result.Error
}
