package repository

import (
	"context"

	"ferreteria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Crear(ctx context.Context, c *model.Cliente) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	ObtenerPorUsuarioID(ctx context.Context, usuarioID uuid.UUID) (*model.Cliente, error)
	// ExistePorRFC backs the pre-check that rejects a duplicate tax id before
	// the insert ever reaches the unique constraint.
	ExistePorRFC(ctx context.Context, rfc string) (bool, error)
	ExistePorCorreo(ctx context.Context, correo string) (bool, error)
}

type clienteRepository struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepository{db: db} }

func (r *clienteRepository) Crear(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepository) ObtenerPorUsuarioID(ctx context.Context, usuarioID uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepository) ExistePorRFC(ctx context.Context, rfc string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("rfc = ?", rfc).Count(&n).Error
	return n > 0, err
}

func (r *clienteRepository) ExistePorCorreo(ctx context.Context, correo string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("correo = ?", correo).Count(&n).Error
	return n > 0, err
}
