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

// ── Erros do módulo de solicitações ──

var (
	ErrSolicitacaoNaoEncontrada   = errors.New("solicitação de remanejamento não encontrada")
	ErrRemanejamentoNaoEncontrado = errors.New("remanejamento de funcionário não encontrado")
	ErrFuncionarioNaoEncontrado   = errors.New("funcionário não encontrado")
	ErrStatusPrestservInvalido    = errors.New("status prestserv inválido")
	ErrRemanejamentoEncerrado     = errors.New("remanejamento com status encerrado não pode ser alterado")
	ErrSemFuncionarios            = errors.New("solicitação sem funcionários")
)

var statusPrestservValidos = map[string]bool{
	model.PrestservPendente:  true,
	model.PrestservCriado:    true,
	model.PrestservSubmetido: true,
	model.PrestservAprovado:  true,
	model.PrestservValidado:  true,
	model.PrestservRejeitado: true,
	model.PrestservCancelado: true,
}

// SolicitacaoService agregado da solicitação de remanejamento e seus filhos
type SolicitacaoService interface {
	// Criar abre uma solicitação com um remanejamento por funcionário e marca
	// cada funcionário como em migração.
	Criar(ctx context.Context, req *dto.CriarSolicitacaoRequest, ator dto.Ator) (*model.SolicitacaoRemanejamento, error)
	GetByID(ctx context.Context, id string) (*model.SolicitacaoRemanejamento, error)
	Listar(ctx context.Context, req *dto.SolicitacaoListRequest) ([]model.SolicitacaoRemanejamento, int64, error)
	// AtualizarStatusPrestserv muda o status de submissão de um remanejamento e
	// dispara a verificação de conclusão da solicitação pai.
	AtualizarStatusPrestserv(ctx context.Context, remanejamentoID, novoStatus string, ator dto.Ator) (*model.RemanejamentoFuncionario, error)
	// VerificarConclusao recalcula o status derivado da solicitação a partir do
	// conjunto de filhos e o persiste. Sempre grava uma entrada
	// ATUALIZACAO_STATUS, mesmo quando o valor derivado não muda.
	VerificarConclusao(ctx context.Context, solicitacaoID string, ator dto.Ator) (string, error)
	// ExcluirRemanejamento remove o remanejamento e tudo abaixo dele em uma
	// transação; se era o último do funcionário, limpa em_migracao.
	ExcluirRemanejamento(ctx context.Context, remanejamentoID string, ator dto.Ator) error
}

type solicitacaoService struct {
	repo      *repository.Repository
	historico HistoricoService
	logger    *zap.Logger
}

// NewSolicitacaoService cria o SolicitacaoService
func NewSolicitacaoService(repo *repository.Repository, historico HistoricoService, logger *zap.Logger) SolicitacaoService {
	return &solicitacaoService{repo: repo, historico: historico, logger: logger}
}

func (s *solicitacaoService) Criar(ctx context.Context, req *dto.CriarSolicitacaoRequest, ator dto.Ator) (*model.SolicitacaoRemanejamento, error) {
	if len(req.FuncionarioIDs) == 0 {
		return nil, ErrSemFuncionarios
	}

	// 1. Valida os funcionários antes de abrir a transação
	funcionarios := make([]*model.Funcionario, 0, len(req.FuncionarioIDs))
	for _, id := range req.FuncionarioIDs {
		f, err := s.repo.Funcionario.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFuncionarioNaoEncontrado
			}
			s.logger.Error("falha ao consultar funcionário", zap.Uint("funcionario_id", id), zap.Error(err))
			return nil, err
		}
		funcionarios = append(funcionarios, f)
	}

	prioridade := req.Prioridade
	if prioridade == "" {
		prioridade = model.PrioridadeMedia
	}

	solicitacao := &model.SolicitacaoRemanejamento{
		ContratoOrigemID:     req.ContratoOrigemID,
		CentroCustoOrigemID:  req.CentroCustoOrigemID,
		ContratoDestinoID:    req.ContratoDestinoID,
		CentroCustoDestinoID: req.CentroCustoDestinoID,
		Justificativa:        req.Justificativa,
		Status:               model.SolicitacaoPendente,
		Prioridade:           prioridade,
		SolicitanteNome:      ator.Nome,
		SolicitanteID:        ator.UsuarioID,
		DataSolicitacao:      time.Now().UTC(),
	}

	// 2. Solicitação + remanejamentos + flags em uma transação
	err := s.repo.Atomic(ctx, func(tx *repository.Repository) error {
		if err := tx.Solicitacao.Create(ctx, solicitacao); err != nil {
			return err
		}
		rems := make([]model.RemanejamentoFuncionario, 0, len(funcionarios))
		for _, f := range funcionarios {
			rems = append(rems, model.RemanejamentoFuncionario{
				SolicitacaoID:   solicitacao.ID,
				FuncionarioID:   f.ID,
				StatusTarefas:   model.StatusTarefasSubmeterRascunho,
				StatusPrestserv: model.PrestservPendente,
			})
		}
		if err := tx.Remanejamento.BatchCreate(ctx, rems); err != nil {
			return err
		}
		for _, f := range funcionarios {
			if err := tx.Funcionario.SetEmMigracao(ctx, f.ID, true); err != nil {
				return err
			}
		}
		solicitacao.Remanejamentos = rems
		return nil
	})
	if err != nil {
		s.logger.Error("falha ao criar solicitação", zap.Error(err))
		return nil, err
	}

	// 3. Auditoria (melhor-esforço)
	s.historico.RegistrarSeguro(ctx, &model.HistoricoRemanejamento{
		SolicitacaoID: &solicitacao.ID,
		TipoAcao:      model.AcaoCriacao,
		Entidade:      model.EntidadeSolicitacao,
		DescricaoAcao: fmt.Sprintf("Solicitação criada com %d funcionário(s)", len(funcionarios)),
		UsuarioNome:   ator.Nome,
		UsuarioID:     ator.UsuarioID,
		EquipeID:      ator.EquipeID,
	})
	for i := range solicitacao.Remanejamentos {
		rem := &solicitacao.Remanejamentos[i]
		s.historico.RegistrarSeguro(ctx, &model.HistoricoRemanejamento{
			SolicitacaoID:              &solicitacao.ID,
			RemanejamentoFuncionarioID: &rem.ID,
			TipoAcao:                   model.AcaoCriacao,
			Entidade:                   model.EntidadeRemanejamento,
			DescricaoAcao:              fmt.Sprintf("Remanejamento criado para o funcionário %d", rem.FuncionarioID),
			UsuarioNome:                ator.Nome,
			UsuarioID:                  ator.UsuarioID,
			EquipeID:                   ator.EquipeID,
		})
	}

	return solicitacao, nil
}

func (s *solicitacaoService) GetByID(ctx context.Context, id string) (*model.SolicitacaoRemanejamento, error) {
	sol, err := s.repo.Solicitacao.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSolicitacaoNaoEncontrada
		}
		return nil, err
	}
	return sol, nil
}

func (s *solicitacaoService) Listar(ctx context.Context, req *dto.SolicitacaoListRequest) ([]model.SolicitacaoRemanejamento, int64, error) {
	limit := req.Limit
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	return s.repo.Solicitacao.List(ctx, req.Status, offset, limit)
}

func (s *solicitacaoService) AtualizarStatusPrestserv(ctx context.Context, remanejamentoID, novoStatus string, ator dto.Ator) (*model.RemanejamentoFuncionario, error) {
	if !statusPrestservValidos[novoStatus] {
		return nil, ErrStatusPrestservInvalido
	}

	rem, err := s.repo.Remanejamento.GetByID(ctx, remanejamentoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRemanejamentoNaoEncontrado
		}
		return nil, err
	}

	// Status terminal encerra a participação do funcionário na solicitação
	if model.PrestservTerminal(rem.StatusPrestserv) && novoStatus != rem.StatusPrestserv {
		return nil, ErrRemanejamentoEncerrado
	}

	anterior := rem.StatusPrestserv
	if err := s.repo.Remanejamento.UpdateStatusPrestserv(ctx, remanejamentoID, novoStatus); err != nil {
		s.logger.Error("falha ao atualizar status prestserv", zap.String("remanejamento_id", remanejamentoID), zap.Error(err))
		return nil, err
	}
	rem.StatusPrestserv = novoStatus

	campo := "status_prestserv"
	s.historico.RegistrarSeguro(ctx, &model.HistoricoRemanejamento{
		SolicitacaoID:              &rem.SolicitacaoID,
		RemanejamentoFuncionarioID: &rem.ID,
		TipoAcao:                   model.AcaoAtualizacaoStatus,
		Entidade:                   model.EntidadeRemanejamento,
		CampoAlterado:              &campo,
		ValorAnterior:              &anterior,
		ValorNovo:                  &novoStatus,
		DescricaoAcao:              fmt.Sprintf("Status prestserv alterado de %s para %s", anterior, novoStatus),
		UsuarioNome:                ator.Nome,
		UsuarioID:                  ator.UsuarioID,
		EquipeID:                   ator.EquipeID,
	})

	// Toda mudança de status de filho recalcula o status derivado do pai
	if _, err := s.VerificarConclusao(ctx, rem.SolicitacaoID, ator); err != nil {
		s.logger.Warn("falha na verificação de conclusão da solicitação",
			zap.String("solicitacao_id", rem.SolicitacaoID), zap.Error(err))
	}

	return rem, nil
}

func (s *solicitacaoService) VerificarConclusao(ctx context.Context, solicitacaoID string, ator dto.Ator) (string, error) {
	sol, err := s.repo.Solicitacao.GetByID(ctx, solicitacaoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSolicitacaoNaoEncontrada
		}
		return "", err
	}

	filhos, err := s.repo.Remanejamento.ListBySolicitacao(ctx, solicitacaoID)
	if err != nil {
		return "", err
	}

	// Regra de derivação:
	//   todos em {VALIDADO, CANCELADO} → Concluído (carimba data_conclusao)
	//   algum != PENDENTE             → Em Andamento
	//   todos PENDENTE                → permanece Pendente
	derivado := sol.Status
	var dataConclusao *time.Time
	if len(filhos) > 0 {
		todosEncerrados := true
		algumIniciado := false
		for _, f := range filhos {
			if f.StatusPrestserv != model.PrestservValidado && f.StatusPrestserv != model.PrestservCancelado {
				todosEncerrados = false
			}
			if f.StatusPrestserv != model.PrestservPendente {
				algumIniciado = true
			}
		}
		switch {
		case todosEncerrados:
			derivado = model.SolicitacaoConcluida
			agora := time.Now().UTC()
			dataConclusao = &agora
		case algumIniciado:
			derivado = model.SolicitacaoEmAndamento
		}
	}

	if derivado != sol.Status {
		if err := s.repo.Solicitacao.UpdateStatus(ctx, solicitacaoID, derivado, dataConclusao); err != nil {
			return "", err
		}
	}

	// A verificação é sempre registrada, mesmo sem mudança de valor
	campo := "status"
	anterior := sol.Status
	s.historico.RegistrarSeguro(ctx, &model.HistoricoRemanejamento{
		SolicitacaoID: &solicitacaoID,
		TipoAcao:      model.AcaoAtualizacaoStatus,
		Entidade:      model.EntidadeSolicitacao,
		CampoAlterado: &campo,
		ValorAnterior: &anterior,
		ValorNovo:     &derivado,
		DescricaoAcao: fmt.Sprintf("Verificação de conclusão: %s → %s", anterior, derivado),
		UsuarioNome:   ator.Nome,
		UsuarioID:     ator.UsuarioID,
		EquipeID:      ator.EquipeID,
	})

	return derivado, nil
}

func (s *solicitacaoService) ExcluirRemanejamento(ctx context.Context, remanejamentoID string, ator dto.Ator) error {
	rem, err := s.repo.Remanejamento.GetByID(ctx, remanejamentoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRemanejamentoNaoEncontrado
		}
		return err
	}

	funcionarioNome := ""
	if rem.Funcionario != nil {
		funcionarioNome = rem.Funcionario.Nome
	}

	// Observações → tarefas → remanejamento, tudo-ou-nada
	err = s.repo.Atomic(ctx, func(tx *repository.Repository) error {
		if _, err := tx.Tarefa.DeleteObservacoesByRemanejamento(ctx, remanejamentoID); err != nil {
			return err
		}
		if _, err := tx.Tarefa.DeleteByRemanejamento(ctx, remanejamentoID); err != nil {
			return err
		}
		return tx.Remanejamento.Delete(ctx, remanejamentoID)
	})
	if err != nil {
		s.logger.Error("falha na exclusão em cascata do remanejamento",
			zap.String("remanejamento_id", remanejamentoID), zap.Error(err))
		return err
	}

	// Último remanejamento do funcionário → limpa em_migracao
	restantes, err := s.repo.Remanejamento.CountByFuncionario(ctx, rem.FuncionarioID)
	if err != nil {
		s.logger.Warn("falha ao contar remanejamentos restantes",
			zap.Uint("funcionario_id", rem.FuncionarioID), zap.Error(err))
	} else if restantes == 0 {
		if err := s.repo.Funcionario.SetEmMigracao(ctx, rem.FuncionarioID, false); err != nil {
			s.logger.Warn("falha ao limpar em_migracao",
				zap.Uint("funcionario_id", rem.FuncionarioID), zap.Error(err))
		}
	}

	// A linha de auditoria referencia o agregado excluído apenas por texto
	// descritivo; a linha não pode apontar para um registro que não existe mais.
	s.historico.RegistrarSeguro(ctx, &model.HistoricoRemanejamento{
		SolicitacaoID: &rem.SolicitacaoID,
		TipoAcao:      model.AcaoExclusao,
		Entidade:      model.EntidadeRemanejamento,
		DescricaoAcao: fmt.Sprintf("Remanejamento %s (funcionário %d - %s) excluído com suas tarefas e observações",
			remanejamentoID, rem.FuncionarioID, funcionarioNome),
		UsuarioNome: ator.Nome,
		UsuarioID:   ator.UsuarioID,
		EquipeID:    ator.EquipeID,
	})

	return nil
}
