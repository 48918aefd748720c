package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/config"
	"github.com/GranTechDigital/crewflow-sub006/internal/api/handler"
	"github.com/GranTechDigital/crewflow-sub006/internal/api/middleware"
	"github.com/GranTechDigital/crewflow-sub006/pkg/jwt"
	"github.com/GranTechDigital/crewflow-sub006/pkg/redis"
)

// New monta o roteador gin com todos os middlewares e rotas
func New(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(&cfg.Server.CORS),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	// ── Rotas públicas ──
	v1.POST("/auth/login", h.Login)

	// ── Rotas autenticadas ──
	auth := v1.Group("", middleware.Auth(jwtMgr, rdb, logger))
	{
		auth.POST("/auth/logout", h.Logout)
		auth.GET("/auth/me", h.Me)

		auth.GET("/funcionarios", h.ListarFuncionarios)
		auth.GET("/funcionarios/:id", h.GetFuncionario)

		auth.POST("/matriz", h.CriarMatriz)
		auth.GET("/matriz", h.ListarMatriz)
		auth.GET("/matriz/:id", h.GetMatriz)
		auth.PUT("/matriz/:id", h.AtualizarMatriz)
		auth.DELETE("/matriz/:id", h.ExcluirMatriz)

		auth.POST("/solicitacoes", h.CriarSolicitacao)
		auth.GET("/solicitacoes", h.ListarSolicitacoes)
		auth.GET("/solicitacoes/:id", h.GetSolicitacao)

		auth.PUT("/remanejamentos/:id/status", h.AtualizarStatusPrestserv)
		auth.DELETE("/remanejamentos/:id", h.ExcluirRemanejamento)
		auth.GET("/remanejamentos/:id/tarefas", h.ListarTarefasDoRemanejamento)

		auth.GET("/tarefas/:id", h.GetTarefa)
		auth.PUT("/tarefas/:id/status", h.AtualizarStatusTarefa)
		auth.POST("/tarefas/:id/observacoes", h.AdicionarObservacaoTarefa)
		auth.GET("/tarefas/:id/eventos", h.TimelineTarefa)

		auth.POST("/sincronizacao", h.Sincronizar)
		auth.POST("/sincronizacao/desfazer", h.DesfazerSincronizacao)

		auth.GET("/historico", h.ListarHistorico)
		auth.POST("/eventos/backfill", h.BackfillEventos)
		auth.POST("/eventos/corrigir-datas", h.CorrigirDatasConclusao)

		auth.GET("/relatorios/historico.xlsx", h.ExportarHistoricoXLSX)
		auth.GET("/relatorios/tarefas.ics", h.ExportarTarefasICS)
	}

	// ── Rotas administrativas ──
	admin := v1.Group("/admin", middleware.Auth(jwtMgr, rdb, logger), middleware.RequireAdmin())
	{
		admin.POST("/purgar", h.Purgar)
	}

	return r
}
