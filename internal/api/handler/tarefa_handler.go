package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/service"
	"github.com/GranTechDigital/crewflow-sub006/pkg/response"
)

// GetTarefa GET /api/v1/tarefas/:id
func (h *Handler) GetTarefa(c *gin.Context) {
	t, err := h.svc.Tarefa.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTarefaNaoEncontrada) {
			response.NotFound(c, 40405, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, t)
}

// AtualizarStatusTarefa PUT /api/v1/tarefas/:id/status
func (h *Handler) AtualizarStatusTarefa(c *gin.Context) {
	var req dto.AtualizarStatusTarefaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	t, err := h.svc.Tarefa.AtualizarStatus(c.Request.Context(), c.Param("id"), &req, atorDoContexto(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStatusTarefaInvalido):
			response.BadRequest(c, 40004, err.Error())
		case errors.Is(err, service.ErrTarefaNaoEncontrada):
			response.NotFound(c, 40405, err.Error())
		default:
			h.logger.Error("falha ao atualizar status da tarefa", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	response.OK(c, t)
}

// AdicionarObservacaoTarefa POST /api/v1/tarefas/:id/observacoes
func (h *Handler) AdicionarObservacaoTarefa(c *gin.Context) {
	var req dto.ObservacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	err := h.svc.Tarefa.AdicionarObservacao(c.Request.Context(), c.Param("id"), &req, atorDoContexto(c))
	if err != nil {
		if errors.Is(err, service.ErrTarefaNaoEncontrada) {
			response.NotFound(c, 40405, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, nil)
}

// TimelineTarefa GET /api/v1/tarefas/:id/eventos
func (h *Handler) TimelineTarefa(c *gin.Context) {
	eventos, err := h.svc.Evento.Timeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTarefaNaoEncontrada) {
			response.NotFound(c, 40405, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, eventos)
}
