package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/internal/api/middleware"
	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/service"
	"github.com/GranTechDigital/crewflow-sub006/pkg/jwt"
	"github.com/GranTechDigital/crewflow-sub006/pkg/response"
)

// Login POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "requisição inválida")
		return
	}

	resp, err := h.svc.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCredenciaisInvalidas) {
			response.Unauthorized(c, 40104, err.Error())
			return
		}
		h.logger.Error("falha no login", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// Logout POST /api/v1/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	claims, ok := c.MustGet(middleware.CtxClaims).(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 40102, "token de acesso inválido ou expirado")
		return
	}
	if err := h.svc.Auth.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Me GET /api/v1/auth/me
func (h *Handler) Me(c *gin.Context) {
	usuario, err := h.svc.Auth.Me(c.Request.Context(), c.GetString(middleware.CtxUsuarioID))
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNaoEncontrado) {
			response.NotFound(c, 40401, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, usuario)
}
