package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/GranTechDigital/crewflow-sub006/config"
)

func newTestManager(accessTTL time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "segredo-de-teste-com-32-caracteres",
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func TestManager_GenerateAndParse(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	token, err := m.GenerateAccessToken("usr-1", "Maria Silva", "admin", "eq-rh")
	if err != nil {
		t.Fatalf("GenerateAccessToken deveria funcionar: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken deveria funcionar: %v", err)
	}
	if claims.UsuarioID != "usr-1" {
		t.Errorf("esperado UsuarioID=usr-1, obtido %s", claims.UsuarioID)
	}
	if claims.Nome != "Maria Silva" {
		t.Errorf("esperado Nome=Maria Silva, obtido %s", claims.Nome)
	}
	if claims.TokenType != "access" {
		t.Errorf("esperado TokenType=access, obtido %s", claims.TokenType)
	}
	if claims.EquipeID != "eq-rh" {
		t.Errorf("esperado EquipeID=eq-rh, obtido %s", claims.EquipeID)
	}
}

func TestManager_ParseExpired(t *testing.T) {
	m := newTestManager(-1 * time.Minute)

	token, err := m.GenerateAccessToken("usr-1", "Maria Silva", "admin", "")
	if err != nil {
		t.Fatalf("GenerateAccessToken deveria funcionar: %v", err)
	}

	_, err = m.ParseToken(token)
	if !errors.Is(err, ErrTokenExpirado) {
		t.Errorf("esperado ErrTokenExpirado, obtido: %v", err)
	}
}

func TestManager_ParseGarbage(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	_, err := m.ParseToken("nao-e-um-token")
	if !errors.Is(err, ErrTokenInvalido) {
		t.Errorf("esperado ErrTokenInvalido, obtido: %v", err)
	}
}

func TestManager_RefreshTokenType(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	token, err := m.GenerateRefreshToken("usr-2", "João", "padrao", "")
	if err != nil {
		t.Fatalf("GenerateRefreshToken deveria funcionar: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken deveria funcionar: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("esperado TokenType=refresh, obtido %s", claims.TokenType)
	}
}
