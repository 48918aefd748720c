package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GranTechDigital/crewflow-sub006/internal/service"
	"github.com/GranTechDigital/crewflow-sub006/pkg/response"
)

// GetFuncionario GET /api/v1/funcionarios/:id
func (h *Handler) GetFuncionario(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	f, err := h.svc.Funcionario.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrFuncionarioNaoEncontrado) {
			response.NotFound(c, 40402, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, f)
}

// ListarFuncionarios GET /api/v1/funcionarios
func (h *Handler) ListarFuncionarios(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	lista, total, err := h.svc.Funcionario.Listar(c.Request.Context(), offset, limit)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, lista, total, limit, offset)
}
