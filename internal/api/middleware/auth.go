package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/internal/model"
	"github.com/GranTechDigital/crewflow-sub006/pkg/jwt"
	"github.com/GranTechDigital/crewflow-sub006/pkg/redis"
	"github.com/GranTechDigital/crewflow-sub006/pkg/response"
)

// Chaves do contexto preenchidas pelo middleware de autenticação
const (
	CtxUsuarioID   = "usuario_id"
	CtxUsuarioNome = "usuario_nome"
	CtxPerfil      = "perfil"
	CtxEquipeID    = "equipe_id"
	CtxClaims      = "claims"
)

// Auth valida o Bearer token, rejeita tokens na blacklist e injeta a identidade
// do usuário no contexto da requisição
func Auth(jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, 40101, "token de acesso ausente")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c, 40102, "token de acesso inválido ou expirado")
			c.Abort()
			return
		}
		if claims.TokenType != "access" {
			response.Unauthorized(c, 40102, "token de acesso inválido ou expirado")
			c.Abort()
			return
		}

		bloqueado, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
		if err != nil {
			// Redis fora do ar não derruba a autenticação; o token já foi validado
			logger.Warn("falha ao consultar blacklist de tokens", zap.Error(err))
		} else if bloqueado {
			response.Unauthorized(c, 40103, "token revogado")
			c.Abort()
			return
		}

		c.Set(CtxUsuarioID, claims.UsuarioID)
		c.Set(CtxUsuarioNome, claims.Nome)
		c.Set(CtxPerfil, claims.Perfil)
		c.Set(CtxEquipeID, claims.EquipeID)
		c.Set(CtxClaims, claims)
		c.Next()
	}
}

// RequireAdmin exige perfil admin; usar depois de Auth
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxPerfil) != model.PerfilAdmin {
			response.Forbidden(c, 40301, "operação restrita a administradores")
			c.Abort()
			return
		}
		c.Next()
	}
}
