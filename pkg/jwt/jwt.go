package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/GranTechDigital/crewflow-sub006/config"
)

var (
	ErrTokenExpirado = errors.New("token expirado")
	ErrTokenInvalido = errors.New("token inválido")
)

// Claims declarações customizadas do JWT
type Claims struct {
	UsuarioID string `json:"usuario_id"`
	Nome      string `json:"nome"`
	Perfil    string `json:"perfil"`
	EquipeID  string `json:"equipe_id,omitempty"`
	TokenType string `json:"token_type"` // "access" | "refresh"
	jwtv5.RegisteredClaims
}

// Manager gerenciador de tokens JWT
type Manager struct {
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewManager cria o gerenciador de JWT
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:          []byte(cfg.JWTSecret),
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

// GenerateAccessToken gera um Access Token
func (m *Manager) GenerateAccessToken(usuarioID, nome, perfil, equipeID string) (string, error) {
	return m.generate(usuarioID, nome, perfil, equipeID, "access", m.accessTokenTTL)
}

// GenerateRefreshToken gera um Refresh Token
func (m *Manager) GenerateRefreshToken(usuarioID, nome, perfil, equipeID string) (string, error) {
	return m.generate(usuarioID, nome, perfil, equipeID, "refresh", m.refreshTokenTTL)
}

func (m *Manager) generate(usuarioID, nome, perfil, equipeID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UsuarioID: usuarioID,
		Nome:      nome,
		Perfil:    perfil,
		EquipeID:  equipeID,
		TokenType: tokenType,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
			Issuer:    "gransystem",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken valida e decodifica um token
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalido
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpirado
		}
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalido
	}

	return claims, nil
}
