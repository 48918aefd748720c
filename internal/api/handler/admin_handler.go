package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/pkg/response"
)

// Purgar POST /api/v1/admin/purgar
//
// Remove todo o subsistema de remanejamento. Protegida pelo middleware de perfil
// admin; devolve as contagens de remoção por tabela.
func (h *Handler) Purgar(c *gin.Context) {
	resultado, err := h.svc.Admin.Purgar(c.Request.Context(), atorDoContexto(c))
	if err != nil {
		h.logger.Error("falha no purge administrativo", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, resultado)
}
