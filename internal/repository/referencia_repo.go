package repository

import (
	"context"

	"ferreteria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CRUD for the three reference entities the import pipeline resolves against.
// Listing order is the storage iteration order the resolver's tie-break rule
// refers to: creation order, oldest first.

type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	Listar(ctx context.Context) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
}

type categoriaRepository struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func (r *categoriaRepository) Crear(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepository) Listar(ctx context.Context) ([]model.Categoria, error) {
	var list []model.Categoria
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&list).Error
	return list, err
}

func (r *categoriaRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	var c model.Categoria
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

type MarcaRepository interface {
	Crear(ctx context.Context, m *model.Marca) error
	Listar(ctx context.Context) ([]model.Marca, error)
}

type marcaRepository struct{ db *gorm.DB }

func NewMarcaRepository(db *gorm.DB) MarcaRepository { return &marcaRepository{db: db} }

func (r *marcaRepository) Crear(ctx context.Context, m *model.Marca) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *marcaRepository) Listar(ctx context.Context) ([]model.Marca, error) {
	var list []model.Marca
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&list).Error
	return list, err
}

type ProveedorRepository interface {
	Crear(ctx context.Context, p *model.Proveedor) error
	Listar(ctx context.Context) ([]model.Proveedor, error)
}

type proveedorRepository struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepository{db: db} }

func (r *proveedorRepository) Crear(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepository) Listar(ctx context.Context) ([]model.Proveedor, error) {
	var list []model.Proveedor
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&list).Error
	return list, err
}
