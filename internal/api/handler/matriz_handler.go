package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/service"
	"github.com/GranTechDigital/crewflow-sub006/pkg/response"
)

// CriarMatriz POST /api/v1/matriz
func (h *Handler) CriarMatriz(c *gin.Context) {
	var req dto.CriarMatrizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	m, err := h.svc.Matriz.Criar(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrObrigatoriedadeInvalida), errors.Is(err, service.ErrSetorInvalido):
			response.BadRequest(c, 40006, err.Error())
		case errors.Is(err, service.ErrMatrizDuplicada):
			response.Conflict(c, 40901, err.Error())
		default:
			h.logger.Error("falha ao criar entrada da matriz", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	response.Created(c, m)
}

// GetMatriz GET /api/v1/matriz/:id
func (h *Handler) GetMatriz(c *gin.Context) {
	m, err := h.svc.Matriz.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMatrizNaoEncontrada) {
			response.NotFound(c, 40406, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, m)
}

// ListarMatriz GET /api/v1/matriz
func (h *Handler) ListarMatriz(c *gin.Context) {
	var req dto.MatrizListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	lista, total, err := h.svc.Matriz.Listar(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, lista, total, req.Limit, req.Offset)
}

// AtualizarMatriz PUT /api/v1/matriz/:id
func (h *Handler) AtualizarMatriz(c *gin.Context) {
	var req dto.AtualizarMatrizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	m, err := h.svc.Matriz.Atualizar(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrObrigatoriedadeInvalida), errors.Is(err, service.ErrSetorInvalido):
			response.BadRequest(c, 40006, err.Error())
		case errors.Is(err, service.ErrMatrizNaoEncontrada):
			response.NotFound(c, 40406, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, m)
}

// ExcluirMatriz DELETE /api/v1/matriz/:id
func (h *Handler) ExcluirMatriz(c *gin.Context) {
	if err := h.svc.Matriz.Excluir(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrMatrizNaoEncontrada) {
			response.NotFound(c, 40406, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
