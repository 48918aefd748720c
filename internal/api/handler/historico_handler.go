package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/pkg/response"
)

// ListarHistorico GET /api/v1/historico
func (h *Handler) ListarHistorico(c *gin.Context) {
	var req dto.HistoricoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	entradas, total, err := h.svc.Historico.Listar(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("falha na consulta ao histórico", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OKPage(c, entradas, total, req.Limit, req.Offset)
}

// BackfillEventos POST /api/v1/eventos/backfill
func (h *Handler) BackfillEventos(c *gin.Context) {
	var req dto.BackfillEventosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	resultado, err := h.svc.Evento.Backfill(c.Request.Context(), req.TarefaIDs)
	if err != nil {
		h.logger.Error("falha no backfill de eventos", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, resultado)
}

// CorrigirDatasConclusao POST /api/v1/eventos/corrigir-datas
func (h *Handler) CorrigirDatasConclusao(c *gin.Context) {
	resultado, err := h.svc.Evento.CorrigirDatasConclusao(c.Request.Context())
	if err != nil {
		h.logger.Error("falha na correção de datas de conclusão", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, resultado)
}
