package repository

import (
	"context"

	"ferreteria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Crear(ctx context.Context, u *model.Usuario) error
	ObtenerPorUsername(ctx context.Context, username string) (*model.Usuario, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
}

type usuarioRepository struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepository{db: db} }

func (r *usuarioRepository) Crear(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepository) ObtenerPorUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("username = ? AND activo = true", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
