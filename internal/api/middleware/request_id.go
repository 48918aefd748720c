package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxRequestID chave do contexto com o id da requisição
const CtxRequestID = "request_id"

const headerRequestID = "X-Request-ID"

// RequestID propaga ou gera um identificador único por requisição
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}
