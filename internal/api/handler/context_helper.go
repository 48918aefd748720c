package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/GranTechDigital/crewflow-sub006/internal/api/middleware"
	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
)

// atorDoContexto monta o Ator a partir da identidade injetada pelo middleware de
// autenticação. Em rotas sem autenticação devolve um Ator vazio; os serviços
// aplicam suas identidades padrão de sistema quando o nome está em branco.
func atorDoContexto(c *gin.Context) dto.Ator {
	ator := dto.Ator{Nome: c.GetString(middleware.CtxUsuarioNome)}
	if id := c.GetString(middleware.CtxUsuarioID); id != "" {
		ator.UsuarioID = &id
	}
	if equipe := c.GetString(middleware.CtxEquipeID); equipe != "" {
		ator.EquipeID = &equipe
	}
	return ator
}
