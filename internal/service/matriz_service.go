package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/model"
	"github.com/GranTechDigital/crewflow-sub006/internal/repository"
)

// ── Erros do módulo da matriz ──

var (
	ErrMatrizNaoEncontrada     = errors.New("entrada da matriz de treinamento não encontrada")
	ErrMatrizDuplicada         = errors.New("entrada duplicada na matriz de treinamento")
	ErrObrigatoriedadeInvalida = errors.New("tipo de obrigatoriedade inválido")
)

var obrigatoriedadesValidas = map[string]bool{
	model.ObrigatoriedadeOB: true,
	model.ObrigatoriedadeAP: true,
	model.ObrigatoriedadeRC: true,
	model.ObrigatoriedadeAD: true,
	model.ObrigatoriedadeNA: true,
}

// MatrizService manutenção da matriz de treinamento, a fonte de verdade da sincronização
type MatrizService interface {
	Criar(ctx context.Context, req *dto.CriarMatrizRequest) (*model.MatrizTreinamento, error)
	GetByID(ctx context.Context, id string) (*model.MatrizTreinamento, error)
	Listar(ctx context.Context, req *dto.MatrizListRequest) ([]model.MatrizTreinamento, int64, error)
	Atualizar(ctx context.Context, id string, req *dto.AtualizarMatrizRequest) (*model.MatrizTreinamento, error)
	Excluir(ctx context.Context, id string) error
}

type matrizService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMatrizService cria o MatrizService
func NewMatrizService(repo *repository.Repository, logger *zap.Logger) MatrizService {
	return &matrizService{repo: repo, logger: logger}
}

func (s *matrizService) Criar(ctx context.Context, req *dto.CriarMatrizRequest) (*model.MatrizTreinamento, error) {
	if !obrigatoriedadesValidas[req.TipoObrigatoriedade] {
		return nil, ErrObrigatoriedadeInvalida
	}
	setor, ok := model.ParseSetor(req.Setor)
	if !ok {
		return nil, ErrSetorInvalido
	}

	m := &model.MatrizTreinamento{
		ContratoID:          req.ContratoID,
		FuncaoID:            req.FuncaoID,
		TreinamentoID:       req.TreinamentoID,
		TipoObrigatoriedade: req.TipoObrigatoriedade,
		Setor:               string(setor),
		Ativo:               true,
	}
	if err := s.repo.Matriz.Create(ctx, m); err != nil {
		if repository.IsChaveDuplicada(err) {
			return nil, ErrMatrizDuplicada
		}
		s.logger.Error("falha ao criar entrada da matriz", zap.Error(err))
		return nil, err
	}
	return m, nil
}

func (s *matrizService) GetByID(ctx context.Context, id string) (*model.MatrizTreinamento, error) {
	m, err := s.repo.Matriz.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatrizNaoEncontrada
		}
		return nil, err
	}
	return m, nil
}

func (s *matrizService) Listar(ctx context.Context, req *dto.MatrizListRequest) ([]model.MatrizTreinamento, int64, error) {
	limit := req.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	return s.repo.Matriz.List(ctx, req.ContratoID, req.FuncaoID, offset, limit)
}

func (s *matrizService) Atualizar(ctx context.Context, id string, req *dto.AtualizarMatrizRequest) (*model.MatrizTreinamento, error) {
	m, err := s.repo.Matriz.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatrizNaoEncontrada
		}
		return nil, err
	}

	if req.TipoObrigatoriedade != nil {
		if !obrigatoriedadesValidas[*req.TipoObrigatoriedade] {
			return nil, ErrObrigatoriedadeInvalida
		}
		m.TipoObrigatoriedade = *req.TipoObrigatoriedade
	}
	if req.Setor != nil {
		setor, ok := model.ParseSetor(*req.Setor)
		if !ok {
			return nil, ErrSetorInvalido
		}
		m.Setor = string(setor)
	}
	if req.Ativo != nil {
		m.Ativo = *req.Ativo
	}

	if err := s.repo.Matriz.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *matrizService) Excluir(ctx context.Context, id string) error {
	if _, err := s.repo.Matriz.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMatrizNaoEncontrada
		}
		return err
	}
	return s.repo.Matriz.Delete(ctx, id)
}
