package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/model"
	"github.com/GranTechDigital/crewflow-sub006/internal/repository"
)

// ── Erros do módulo de eventos ──

var (
	ErrTarefaNaoEncontrada = errors.New("tarefa não encontrada")
)

// EventoService linha do tempo canônica de status por tarefa.
// Alimentada de forma incremental a cada mudança de status e, para dados
// legados, por backfill a partir do histórico.
type EventoService interface {
	// RegistrarMudancaStatus grava um evento de transição, respeitando a regra
	// de deduplicação (tarefa_id, status_novo, data_evento como instante exato).
	RegistrarMudancaStatus(ctx context.Context, tarefaID string, statusAnterior *string, statusNovo string, quando time.Time, ator dto.Ator) error
	// Timeline eventos da tarefa em ordem cronológica.
	Timeline(ctx context.Context, tarefaID string) ([]model.TarefaStatusEvento, error)
	// Backfill sintetiza eventos a partir das linhas de histórico
	// (entidade=TAREFA, campo=status) ainda não representadas. Tarefas sem
	// nenhuma linha de histórico ganham exatamente um evento derivado do status
	// atual, datado da conclusão ou, na falta dela, da criação.
	Backfill(ctx context.Context, tarefaIDs []string) (*dto.ResultadoBackfill, error)
	// CorrigirDatasConclusao realinha data_evento dos eventos concluídos com a
	// data de conclusão registrada na tarefa, corrigindo deriva de gravações
	// assíncronas.
	CorrigirDatasConclusao(ctx context.Context) (*dto.ResultadoCorrecao, error)
}

type eventoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventoService cria o EventoService
func NewEventoService(repo *repository.Repository, logger *zap.Logger) EventoService {
	return &eventoService{repo: repo, logger: logger}
}

func (s *eventoService) RegistrarMudancaStatus(ctx context.Context, tarefaID string, statusAnterior *string, statusNovo string, quando time.Time, ator dto.Ator) error {
	quando = quando.UTC()

	existe, err := s.repo.Evento.Exists(ctx, tarefaID, statusNovo, quando)
	if err != nil {
		return err
	}
	if existe {
		return nil
	}

	return s.repo.Evento.Create(ctx, &model.TarefaStatusEvento{
		TarefaID:       tarefaID,
		StatusAnterior: statusAnterior,
		StatusNovo:     statusNovo,
		DataEvento:     quando,
		UsuarioNome:    ator.Nome,
		EquipeID:       ator.EquipeID,
	})
}

func (s *eventoService) Timeline(ctx context.Context, tarefaID string) ([]model.TarefaStatusEvento, error) {
	if _, err := s.repo.Tarefa.GetByID(ctx, tarefaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTarefaNaoEncontrada
		}
		return nil, err
	}
	return s.repo.Evento.ListByTarefa(ctx, tarefaID)
}

func (s *eventoService) Backfill(ctx context.Context, tarefaIDs []string) (*dto.ResultadoBackfill, error) {
	resultado := &dto.ResultadoBackfill{}

	// 1. Linhas de histórico de mudança de status, ordem crescente de data_acao
	linhas, err := s.repo.Historico.ListMudancasStatusTarefas(ctx, tarefaIDs)
	if err != nil {
		return nil, err
	}

	comHistorico := make(map[string]bool)
	for _, linha := range linhas {
		if linha.TarefaID == nil || linha.ValorNovo == nil {
			continue
		}
		comHistorico[*linha.TarefaID] = true

		existe, err := s.repo.Evento.Exists(ctx, *linha.TarefaID, *linha.ValorNovo, linha.DataAcao.UTC())
		if err != nil {
			s.logger.Warn("falha na checagem de deduplicação do backfill",
				zap.String("tarefa_id", *linha.TarefaID), zap.Error(err))
			continue
		}
		if existe {
			continue
		}

		if err := s.repo.Evento.Create(ctx, &model.TarefaStatusEvento{
			TarefaID:       *linha.TarefaID,
			StatusAnterior: linha.ValorAnterior,
			StatusNovo:     *linha.ValorNovo,
			DataEvento:     linha.DataAcao.UTC(),
			UsuarioNome:    linha.UsuarioNome,
			EquipeID:       linha.EquipeID,
		}); err != nil {
			s.logger.Warn("falha ao sintetizar evento do backfill",
				zap.String("tarefa_id", *linha.TarefaID), zap.Error(err))
			continue
		}
		resultado.EventosCriados++
	}

	// 2. Tarefas sem nenhuma linha de histórico: um único evento do status atual
	tarefas, err := s.tarefasDoEscopo(ctx, tarefaIDs)
	if err != nil {
		return nil, err
	}
	for i := range tarefas {
		t := &tarefas[i]
		if comHistorico[t.ID] {
			continue
		}

		quando := t.DataCriacao
		if t.DataConclusao != nil {
			quando = *t.DataConclusao
		}
		quando = quando.UTC()

		existe, err := s.repo.Evento.Exists(ctx, t.ID, t.Status, quando)
		if err != nil {
			s.logger.Warn("falha na checagem de deduplicação do backfill",
				zap.String("tarefa_id", t.ID), zap.Error(err))
			continue
		}
		if existe {
			continue
		}

		if err := s.repo.Evento.Create(ctx, &model.TarefaStatusEvento{
			TarefaID:    t.ID,
			StatusNovo:  t.Status,
			DataEvento:  quando,
			UsuarioNome: model.IdentidadeSistema,
		}); err != nil {
			s.logger.Warn("falha ao sintetizar evento inicial",
				zap.String("tarefa_id", t.ID), zap.Error(err))
			continue
		}
		resultado.EventosCriados++
	}

	return resultado, nil
}

func (s *eventoService) tarefasDoEscopo(ctx context.Context, tarefaIDs []string) ([]model.TarefaRemanejamento, error) {
	if len(tarefaIDs) == 0 {
		return s.repo.Tarefa.ListAll(ctx)
	}
	tarefas := make([]model.TarefaRemanejamento, 0, len(tarefaIDs))
	for _, id := range tarefaIDs {
		t, err := s.repo.Tarefa.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // ausência de um item não aborta o lote
			}
			return nil, err
		}
		tarefas = append(tarefas, *t)
	}
	return tarefas, nil
}

func (s *eventoService) CorrigirDatasConclusao(ctx context.Context) (*dto.ResultadoCorrecao, error) {
	resultado := &dto.ResultadoCorrecao{}

	eventos, err := s.repo.Evento.ListConcluidos(ctx)
	if err != nil {
		return nil, err
	}

	for i := range eventos {
		e := &eventos[i]
		if !model.StatusConcluido(e.StatusNovo) {
			continue
		}

		t, err := s.repo.Tarefa.GetByID(ctx, e.TarefaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			s.logger.Warn("falha ao carregar tarefa na correção de datas",
				zap.String("tarefa_id", e.TarefaID), zap.Error(err))
			continue
		}
		if t.DataConclusao == nil {
			continue
		}
		if e.DataEvento.Equal(t.DataConclusao.UTC()) {
			continue
		}

		if err := s.repo.Evento.UpdateDataEvento(ctx, e.ID, t.DataConclusao.UTC()); err != nil {
			s.logger.Warn("falha ao corrigir data_evento",
				zap.String("evento_id", e.ID), zap.Error(err))
			continue
		}
		resultado.EventosCorrigidos++
	}

	return resultado, nil
}
