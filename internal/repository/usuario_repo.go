package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/model"
)

// UsuarioRepository acesso a dados de usuários da aplicação
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	GetByID(ctx context.Context, id string) (*model.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*model.Usuario, error)
}

type usuarioRepo struct {
	db *gorm.DB
}

// NewUsuarioRepo cria o repositório de usuários
func NewUsuarioRepo(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{db: db}
}

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) GetByID(ctx context.Context, id string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("email = ? AND ativo = ?", email, true).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
