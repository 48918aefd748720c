package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/model"
	"github.com/GranTechDigital/crewflow-sub006/internal/repository"
)

// ── Erros do módulo de histórico ──

var (
	ErrHistoricoInvalido = errors.New("entrada de histórico sem tipo de ação ou entidade")
)

// HistoricoService livro-razão de auditoria do domínio de remanejamento.
// Apenas inserção e consulta; nenhuma atualização ou remoção é exposta
// (o purge administrativo vive no AdminService).
type HistoricoService interface {
	// Registrar insere uma entrada; falha é propagada ao chamador.
	Registrar(ctx context.Context, entrada *model.HistoricoRemanejamento) error
	// RegistrarSeguro insere em modo melhor-esforço: falhas são apenas logadas,
	// para que a gravação de auditoria nunca aborte a mutação principal.
	RegistrarSeguro(ctx context.Context, entrada *model.HistoricoRemanejamento)
	// RegistrarLote insere muitas entradas em lotes limitados, evitando
	// transações longas no banco.
	RegistrarLote(ctx context.Context, entradas []model.HistoricoRemanejamento) error
	// Listar consulta paginada, ordem decrescente de data_acao (desempate por id).
	Listar(ctx context.Context, req *dto.HistoricoListRequest) ([]model.HistoricoRemanejamento, int64, error)
}

type historicoService struct {
	repo        *repository.Repository
	tamanhoLote int
	logger      *zap.Logger
}

// NewHistoricoService cria o HistoricoService
func NewHistoricoService(repo *repository.Repository, tamanhoLote int, logger *zap.Logger) HistoricoService {
	if tamanhoLote <= 0 {
		tamanhoLote = 500
	}
	return &historicoService{repo: repo, tamanhoLote: tamanhoLote, logger: logger}
}

func (s *historicoService) Registrar(ctx context.Context, entrada *model.HistoricoRemanejamento) error {
	if entrada.TipoAcao == "" || entrada.Entidade == "" {
		return ErrHistoricoInvalido
	}
	if entrada.DataAcao.IsZero() {
		entrada.DataAcao = time.Now().UTC()
	}
	return s.repo.Historico.Create(ctx, entrada)
}

func (s *historicoService) RegistrarSeguro(ctx context.Context, entrada *model.HistoricoRemanejamento) {
	if err := s.Registrar(ctx, entrada); err != nil {
		s.logger.Warn("falha ao gravar histórico (ignorada)",
			zap.String("tipo_acao", entrada.TipoAcao),
			zap.String("entidade", entrada.Entidade),
			zap.Error(err),
		)
	}
}

func (s *historicoService) RegistrarLote(ctx context.Context, entradas []model.HistoricoRemanejamento) error {
	if len(entradas) == 0 {
		return nil
	}
	agora := time.Now().UTC()
	for i := range entradas {
		if entradas[i].TipoAcao == "" || entradas[i].Entidade == "" {
			return ErrHistoricoInvalido
		}
		if entradas[i].DataAcao.IsZero() {
			entradas[i].DataAcao = agora
		}
	}
	return s.repo.Historico.BatchCreate(ctx, entradas, s.tamanhoLote)
}

func (s *historicoService) Listar(ctx context.Context, req *dto.HistoricoListRequest) ([]model.HistoricoRemanejamento, int64, error) {
	limit := req.Limit
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	filtro := repository.FiltroHistorico{
		SolicitacaoID:              req.SolicitacaoID,
		RemanejamentoFuncionarioID: req.RemanejamentoFuncionarioID,
		TarefaID:                   req.TarefaID,
		Entidade:                   req.Entidade,
		TipoAcao:                   req.TipoAcao,
		Desde:                      req.Desde,
	}
	return s.repo.Historico.Query(ctx, filtro, offset, limit)
}
