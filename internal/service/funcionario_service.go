package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/model"
	"github.com/GranTechDigital/crewflow-sub006/internal/repository"
)

// FuncionarioService consulta de funcionários para as telas do domínio de remanejamento
type FuncionarioService interface {
	GetByID(ctx context.Context, id uint) (*model.Funcionario, error)
	Listar(ctx context.Context, offset, limit int) ([]model.Funcionario, int64, error)
}

type funcionarioService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFuncionarioService cria o FuncionarioService
func NewFuncionarioService(repo *repository.Repository, logger *zap.Logger) FuncionarioService {
	return &funcionarioService{repo: repo, logger: logger}
}

func (s *funcionarioService) GetByID(ctx context.Context, id uint) (*model.Funcionario, error) {
	f, err := s.repo.Funcionario.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFuncionarioNaoEncontrado
		}
		return nil, err
	}
	return f, nil
}

func (s *funcionarioService) Listar(ctx context.Context, offset, limit int) ([]model.Funcionario, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.Funcionario.List(ctx, offset, limit)
}
