package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/repository"
)

// AdminService operações administrativas destrutivas do subsistema de remanejamento
type AdminService interface {
	// Purgar remove todo o subsistema em ordem de dependência, dentro de uma única
	// transação, e zera a flag em_migracao de todos os funcionários. É o único
	// caminho de código que apaga linhas do histórico.
	Purgar(ctx context.Context, ator dto.Ator) (*dto.ResultadoPurge, error)
}

type adminService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAdminService cria o AdminService
func NewAdminService(repo *repository.Repository, logger *zap.Logger) AdminService {
	return &adminService{repo: repo, logger: logger}
}

func (s *adminService) Purgar(ctx context.Context, ator dto.Ator) (*dto.ResultadoPurge, error) {
	resultado := &dto.ResultadoPurge{}

	err := s.repo.Atomic(ctx, func(tx *repository.Repository) error {
		var err error
		if resultado.ObservacoesRemovidas, err = tx.Tarefa.DeleteAllObservacoes(ctx); err != nil {
			return err
		}
		if resultado.EventosRemovidos, err = tx.Evento.DeleteAll(ctx); err != nil {
			return err
		}
		if resultado.HistoricosRemovidos, err = tx.Historico.DeleteAll(ctx); err != nil {
			return err
		}
		if resultado.TarefasRemovidas, err = tx.Tarefa.DeleteAll(ctx); err != nil {
			return err
		}
		if resultado.RemanejamentosRemovidos, err = tx.Remanejamento.DeleteAll(ctx); err != nil {
			return err
		}
		if resultado.SolicitacoesRemovidas, err = tx.Solicitacao.DeleteAll(ctx); err != nil {
			return err
		}
		if resultado.FuncionariosDesmarcados, err = tx.Funcionario.ResetEmMigracao(ctx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		s.logger.Error("falha no purge do subsistema de remanejamento", zap.Error(err))
		return nil, err
	}

	s.logger.Warn("purge do subsistema de remanejamento executado",
		zap.String("executor", ator.Nome),
		zap.Int64("historicos", resultado.HistoricosRemovidos),
		zap.Int64("tarefas", resultado.TarefasRemovidas),
		zap.Int64("remanejamentos", resultado.RemanejamentosRemovidos),
		zap.Int64("solicitacoes", resultado.SolicitacoesRemovidas),
	)
	return resultado, nil
}
