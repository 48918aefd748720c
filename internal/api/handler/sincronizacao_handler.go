package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/model"
	"github.com/GranTechDigital/crewflow-sub006/internal/service"
	"github.com/GranTechDigital/crewflow-sub006/pkg/response"
)

// Sincronizar POST /api/v1/sincronizacao
func (h *Handler) Sincronizar(c *gin.Context) {
	var req dto.SincronizarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	// As mutações desta rota levam a identidade automática, que a janela de
	// desfazer reconhece; o usuário autenticado permanece no usuario_id da auditoria
	ator := atorDoContexto(c)
	ator.Nome = model.IdentidadeSincronizacaoManual

	resultado, err := h.svc.Sincronizacao.Sincronizar(c.Request.Context(), &req, ator)
	if err != nil {
		if errors.Is(err, service.ErrSetorInvalido) {
			response.BadRequest(c, 40005, err.Error())
			return
		}
		h.logger.Error("falha na sincronização", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, resultado)
}

// DesfazerSincronizacao POST /api/v1/sincronizacao/desfazer
func (h *Handler) DesfazerSincronizacao(c *gin.Context) {
	var req dto.DesfazerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	resultado, err := h.svc.Sincronizacao.DesfazerReativacoesRecentes(c.Request.Context(), req.JanelaMinutos, atorDoContexto(c))
	if err != nil {
		h.logger.Error("falha na reversão de reativações", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, resultado)
}
