package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/model"
)

// MatrizTreinamentoRepository acesso a dados da matriz de treinamento
type MatrizTreinamentoRepository interface {
	Create(ctx context.Context, m *model.MatrizTreinamento) error
	GetByID(ctx context.Context, id string) (*model.MatrizTreinamento, error)
	List(ctx context.Context, contratoID, funcaoID string, offset, limit int) ([]model.MatrizTreinamento, int64, error)
	ListPorContratoFuncao(ctx context.Context, contratoID, funcaoID string) ([]model.MatrizTreinamento, error)
	Update(ctx context.Context, m *model.MatrizTreinamento) error
	Delete(ctx context.Context, id string) error
}

type matrizRepo struct {
	db *gorm.DB
}

// NewMatrizRepo cria o repositório da matriz de treinamento
func NewMatrizRepo(db *gorm.DB) MatrizTreinamentoRepository {
	return &matrizRepo{db: db}
}

func (r *matrizRepo) Create(ctx context.Context, m *model.MatrizTreinamento) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *matrizRepo) GetByID(ctx context.Context, id string) (*model.MatrizTreinamento, error) {
	var m model.MatrizTreinamento
	err := r.db.WithContext(ctx).
		Preload("Contrato").
		Preload("Funcao").
		Preload("Treinamento").
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matrizRepo) List(ctx context.Context, contratoID, funcaoID string, offset, limit int) ([]model.MatrizTreinamento, int64, error) {
	var entradas []model.MatrizTreinamento
	var total int64

	db := r.db.WithContext(ctx).Model(&model.MatrizTreinamento{})
	if contratoID != "" {
		db = db.Where("contrato_id = ?", contratoID)
	}
	if funcaoID != "" {
		db = db.Where("funcao_id = ?", funcaoID)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Treinamento").Preload("Funcao").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&entradas).Error
	return entradas, total, err
}

func (r *matrizRepo) ListPorContratoFuncao(ctx context.Context, contratoID, funcaoID string) ([]model.MatrizTreinamento, error) {
	var entradas []model.MatrizTreinamento
	err := r.db.WithContext(ctx).
		Preload("Treinamento").
		Where("contrato_id = ? AND funcao_id = ?", contratoID, funcaoID).
		Find(&entradas).Error
	return entradas, err
}

func (r *matrizRepo) Update(ctx context.Context, m *model.MatrizTreinamento) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *matrizRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MatrizTreinamento{}).Error
}
