package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/repository"
	"github.com/GranTechDigital/crewflow-sub006/pkg/jwt"
	"github.com/GranTechDigital/crewflow-sub006/pkg/redis"
)

// ── Erros do módulo de autenticação ──

var (
	ErrCredenciaisInvalidas = errors.New("e-mail ou senha inválidos")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
)

// AuthService autenticação de usuários e ciclo de vida dos tokens
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout coloca o JTI do token na blacklist pelo tempo de vida restante
	Logout(ctx context.Context, claims *jwt.Claims) error
	Me(ctx context.Context, usuarioID string) (*dto.UsuarioResponse, error)
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService cria o AuthService
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := s.repo.Usuario.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciaisInvalidas
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(req.Senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	equipeID := ""
	if u.EquipeID != nil {
		equipeID = *u.EquipeID
	}
	accessToken, err := s.jwtMgr.GenerateAccessToken(u.ID, u.Nome, u.Perfil, equipeID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(u.ID, u.Nome, u.Perfil, equipeID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login efetuado", zap.String("usuario_id", u.ID))

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Usuario: dto.UsuarioResponse{
			ID:       u.ID,
			Nome:     u.Nome,
			Email:    u.Email,
			Perfil:   u.Perfil,
			EquipeID: u.EquipeID,
		},
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("falha ao colocar token na blacklist",
			zap.String("usuario_id", claims.UsuarioID), zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) Me(ctx context.Context, usuarioID string) (*dto.UsuarioResponse, error) {
	u, err := s.repo.Usuario.GetByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNaoEncontrado
		}
		return nil, err
	}
	return &dto.UsuarioResponse{
		ID:       u.ID,
		Nome:     u.Nome,
		Email:    u.Email,
		Perfil:   u.Perfil,
		EquipeID: u.EquipeID,
	}, nil
}
