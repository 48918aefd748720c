package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/service"
	"github.com/GranTechDigital/crewflow-sub006/pkg/response"
)

// CriarSolicitacao POST /api/v1/solicitacoes
func (h *Handler) CriarSolicitacao(c *gin.Context) {
	var req dto.CriarSolicitacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	sol, err := h.svc.Solicitacao.Criar(c.Request.Context(), &req, atorDoContexto(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSemFuncionarios):
			response.BadRequest(c, 40002, err.Error())
		case errors.Is(err, service.ErrFuncionarioNaoEncontrado):
			response.NotFound(c, 40402, err.Error())
		default:
			h.logger.Error("falha ao criar solicitação", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	response.Created(c, sol)
}

// GetSolicitacao GET /api/v1/solicitacoes/:id
func (h *Handler) GetSolicitacao(c *gin.Context) {
	sol, err := h.svc.Solicitacao.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSolicitacaoNaoEncontrada) {
			response.NotFound(c, 40403, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, sol)
}

// ListarSolicitacoes GET /api/v1/solicitacoes
func (h *Handler) ListarSolicitacoes(c *gin.Context) {
	var req dto.SolicitacaoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	lista, total, err := h.svc.Solicitacao.Listar(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, lista, total, req.Limit, req.Offset)
}

// AtualizarStatusPrestserv PUT /api/v1/remanejamentos/:id/status
func (h *Handler) AtualizarStatusPrestserv(c *gin.Context) {
	var req dto.AtualizarStatusPrestservRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	rem, err := h.svc.Solicitacao.AtualizarStatusPrestserv(c.Request.Context(), c.Param("id"), req.Status, atorDoContexto(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStatusPrestservInvalido):
			response.BadRequest(c, 40003, err.Error())
		case errors.Is(err, service.ErrRemanejamentoEncerrado):
			response.Conflict(c, 40902, err.Error())
		case errors.Is(err, service.ErrRemanejamentoNaoEncontrado):
			response.NotFound(c, 40404, err.Error())
		default:
			h.logger.Error("falha ao atualizar status prestserv", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	response.OK(c, rem)
}

// ExcluirRemanejamento DELETE /api/v1/remanejamentos/:id
func (h *Handler) ExcluirRemanejamento(c *gin.Context) {
	err := h.svc.Solicitacao.ExcluirRemanejamento(c.Request.Context(), c.Param("id"), atorDoContexto(c))
	if err != nil {
		if errors.Is(err, service.ErrRemanejamentoNaoEncontrado) {
			response.NotFound(c, 40404, err.Error())
			return
		}
		h.logger.Error("falha ao excluir remanejamento", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ListarTarefasDoRemanejamento GET /api/v1/remanejamentos/:id/tarefas
func (h *Handler) ListarTarefasDoRemanejamento(c *gin.Context) {
	tarefas, err := h.svc.Tarefa.ListarPorRemanejamento(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrRemanejamentoNaoEncontrado) {
			response.NotFound(c, 40404, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, tarefas)
}
