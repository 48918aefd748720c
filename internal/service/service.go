package service

import (
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/config"
	"github.com/GranTechDigital/crewflow-sub006/internal/repository"
	"github.com/GranTechDigital/crewflow-sub006/pkg/jwt"
	"github.com/GranTechDigital/crewflow-sub006/pkg/redis"
)

// Service ponto de agregação de todos os serviços
type Service struct {
	Auth          AuthService
	Funcionario   FuncionarioService
	Matriz        MatrizService
	Solicitacao   SolicitacaoService
	Tarefa        TarefaService
	Evento        EventoService
	Sincronizacao SincronizacaoService
	Historico     HistoricoService
	Export        ExportService
	Admin         AdminService
}

// NewService monta o grafo de serviços sobre os repositórios
func NewService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *Service {
	historico := NewHistoricoService(repo, cfg.Sync.LoteHistorico, logger)
	eventos := NewEventoService(repo, logger)

	return &Service{
		Auth:          NewAuthService(repo, jwtMgr, rdb, logger),
		Funcionario:   NewFuncionarioService(repo, logger),
		Matriz:        NewMatrizService(repo, logger),
		Solicitacao:   NewSolicitacaoService(repo, historico, logger),
		Tarefa:        NewTarefaService(repo, historico, eventos, logger),
		Evento:        eventos,
		Sincronizacao: NewSincronizacaoService(repo, historico, eventos, cfg.Sync.JanelaDesfazerMin, logger),
		Historico:     historico,
		Export:        NewExportService(repo, logger),
		Admin:         NewAdminService(repo, logger),
	}
}

func ptr(s string) *string { return &s }
