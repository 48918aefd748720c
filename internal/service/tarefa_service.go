package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/model"
	"github.com/GranTechDigital/crewflow-sub006/internal/repository"
)

// ── Erros do módulo de tarefas ──

var (
	ErrStatusTarefaInvalido = errors.New("status de tarefa inválido")
)

var statusTarefaValidos = map[string]bool{
	model.TarefaPendente:    true,
	model.TarefaEmAndamento: true,
	model.TarefaConcluida:   true,
	model.TarefaCancelada:   true,
}

// TarefaService progressão manual das tarefas de remanejamento.
// A criação/cancelamento/reativação em massa pertence ao SincronizacaoService;
// aqui vive o que um responsável de setor faz tarefa a tarefa.
type TarefaService interface {
	GetByID(ctx context.Context, id string) (*model.TarefaRemanejamento, error)
	ListarPorRemanejamento(ctx context.Context, remanejamentoID string) ([]model.TarefaRemanejamento, error)
	// AtualizarStatus muda o status da tarefa, carimba a conclusão quando for o
	// caso e alimenta histórico e linha do tempo de eventos.
	AtualizarStatus(ctx context.Context, tarefaID string, req *dto.AtualizarStatusTarefaRequest, ator dto.Ator) (*model.TarefaRemanejamento, error)
	AdicionarObservacao(ctx context.Context, tarefaID string, req *dto.ObservacaoRequest, ator dto.Ator) error
}

type tarefaService struct {
	repo      *repository.Repository
	historico HistoricoService
	eventos   EventoService
	logger    *zap.Logger
}

// NewTarefaService cria o TarefaService
func NewTarefaService(repo *repository.Repository, historico HistoricoService, eventos EventoService, logger *zap.Logger) TarefaService {
	return &tarefaService{repo: repo, historico: historico, eventos: eventos, logger: logger}
}

func (s *tarefaService) GetByID(ctx context.Context, id string) (*model.TarefaRemanejamento, error) {
	t, err := s.repo.Tarefa.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTarefaNaoEncontrada
		}
		return nil, err
	}
	return t, nil
}

func (s *tarefaService) ListarPorRemanejamento(ctx context.Context, remanejamentoID string) ([]model.TarefaRemanejamento, error) {
	if _, err := s.repo.Remanejamento.GetByID(ctx, remanejamentoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRemanejamentoNaoEncontrado
		}
		return nil, err
	}
	return s.repo.Tarefa.ListByRemanejamento(ctx, remanejamentoID)
}

func (s *tarefaService) AtualizarStatus(ctx context.Context, tarefaID string, req *dto.AtualizarStatusTarefaRequest, ator dto.Ator) (*model.TarefaRemanejamento, error) {
	if !statusTarefaValidos[req.Status] {
		return nil, ErrStatusTarefaInvalido
	}

	t, err := s.repo.Tarefa.GetByID(ctx, tarefaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTarefaNaoEncontrada
		}
		return nil, err
	}

	agora := time.Now().UTC()
	anterior := t.Status
	var dataConclusao *time.Time
	if model.StatusConcluido(req.Status) {
		dataConclusao = &agora
	}

	if err := s.repo.Tarefa.UpdateStatus(ctx, tarefaID, req.Status, dataConclusao); err != nil {
		s.logger.Error("falha ao atualizar status da tarefa",
			zap.String("tarefa_id", tarefaID), zap.Error(err))
		return nil, err
	}
	t.Status = req.Status
	t.DataConclusao = dataConclusao

	if req.Observacao != "" {
		if err := s.repo.Tarefa.AddObservacao(ctx, &model.TarefaObservacao{
			TarefaID: tarefaID,
			Texto:    req.Observacao,
			Autor:    ator.Nome,
			Data:     agora,
		}); err != nil {
			s.logger.Warn("falha ao gravar observação da mudança de status (ignorada)",
				zap.String("tarefa_id", tarefaID), zap.Error(err))
		}
	}

	s.historico.RegistrarSeguro(ctx, &model.HistoricoRemanejamento{
		RemanejamentoFuncionarioID: &t.RemanejamentoFuncionarioID,
		TarefaID:                   &t.ID,
		TipoAcao:                   model.AcaoAtualizacaoStatus,
		Entidade:                   model.EntidadeTarefa,
		CampoAlterado:              ptr("status"),
		ValorAnterior:              &anterior,
		ValorNovo:                  &req.Status,
		DescricaoAcao:              fmt.Sprintf("Status da tarefa %s alterado de %s para %s", t.Tipo, anterior, req.Status),
		UsuarioNome:                ator.Nome,
		UsuarioID:                  ator.UsuarioID,
		EquipeID:                   ator.EquipeID,
		DataAcao:                   agora,
	})
	if err := s.eventos.RegistrarMudancaStatus(ctx, t.ID, &anterior, req.Status, agora, ator); err != nil {
		s.logger.Warn("falha ao gravar evento de status (ignorada)",
			zap.String("tarefa_id", t.ID), zap.Error(err))
	}

	return t, nil
}

func (s *tarefaService) AdicionarObservacao(ctx context.Context, tarefaID string, req *dto.ObservacaoRequest, ator dto.Ator) error {
	t, err := s.repo.Tarefa.GetByID(ctx, tarefaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTarefaNaoEncontrada
		}
		return err
	}

	agora := time.Now().UTC()
	if err := s.repo.Tarefa.AddObservacao(ctx, &model.TarefaObservacao{
		TarefaID: tarefaID,
		Texto:    req.Texto,
		Autor:    ator.Nome,
		Data:     agora,
	}); err != nil {
		return err
	}

	s.historico.RegistrarSeguro(ctx, &model.HistoricoRemanejamento{
		RemanejamentoFuncionarioID: &t.RemanejamentoFuncionarioID,
		TarefaID:                   &t.ID,
		TipoAcao:                   model.AcaoObservacao,
		Entidade:                   model.EntidadeTarefa,
		DescricaoAcao:              fmt.Sprintf("Observação adicionada à tarefa %s", t.Tipo),
		UsuarioNome:                ator.Nome,
		UsuarioID:                  ator.UsuarioID,
		EquipeID:                   ator.EquipeID,
		DataAcao:                   agora,
	})
	return nil
}
