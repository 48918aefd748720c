package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/service"
	"github.com/GranTechDigital/crewflow-sub006/pkg/response"
)

// ExportarHistoricoXLSX GET /api/v1/relatorios/historico.xlsx
func (h *Handler) ExportarHistoricoXLSX(c *gin.Context) {
	var req dto.HistoricoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	conteudo, err := h.svc.Export.HistoricoXLSX(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("falha na exportação do histórico", zap.Error(err))
		response.InternalError(c)
		return
	}

	nome := fmt.Sprintf("historico-remanejamento-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nome))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", conteudo)
}

// ExportarTarefasICS GET /api/v1/relatorios/tarefas.ics
func (h *Handler) ExportarTarefasICS(c *gin.Context) {
	conteudo, err := h.svc.Export.TarefasICS(c.Request.Context(), c.Query("setor"))
	if err != nil {
		if errors.Is(err, service.ErrSetorInvalido) {
			response.BadRequest(c, 40005, err.Error())
			return
		}
		h.logger.Error("falha na geração do calendário de tarefas", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tarefas-remanejamento.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(conteudo))
}
