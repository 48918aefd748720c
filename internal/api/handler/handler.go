package handler

import (
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/internal/service"
)

// Handler ponto de agregação dos handlers HTTP
type Handler struct {
	svc    *service.Service
	logger *zap.Logger
}

// New cria o agregado de handlers
func New(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}
