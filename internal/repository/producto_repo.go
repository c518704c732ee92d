package repository

import (
	"context"
	"errors"

	"ferreteria/internal/dto"
	"ferreteria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductoRepository interface {
	Crear(ctx context.Context, p *model.Producto) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	// BuscarPorClave resolves the import business key; (nil, nil) when absent.
	BuscarPorClave(ctx context.Context, clave string) (*model.Producto, error)
	Actualizar(ctx context.Context, p *model.Producto) error
	Listar(ctx context.Context, filtro dto.ProductoFilter) ([]model.Producto, int64, error)
	// BuscarInventario is the staff search: q over descripcion/clave/departamento.
	BuscarInventario(ctx context.Context, q string, categoriaID string) ([]model.Producto, error)

	// Used inside transactions — callers must pass the tx instance.
	ObtenerPorIDTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Crear(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Categoria").Preload("Marca").Preload("Proveedor").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) BuscarPorClave(ctx context.Context, clave string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("clave = ?", clave).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) Actualizar(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Listar(ctx context.Context, filtro dto.ProductoFilter) ([]model.Producto, int64, error) {
	var productos []model.Producto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Producto{})

	if filtro.Q != "" {
		patron := "%" + filtro.Q + "%"
		q = q.Where("nombre ILIKE ? OR descripcion ILIKE ? OR clave ILIKE ?", patron, patron, patron)
	}
	if filtro.Categoria != "" {
		q = q.Joins("JOIN categorias ON categorias.id = productos.categoria_id").
			Where("categorias.nombre = ?", filtro.Categoria)
	}
	if filtro.Marca != "" {
		q = q.Joins("JOIN marcas ON marcas.id = productos.marca_id").
			Where("marcas.nombre = ?", filtro.Marca)
	}
	if filtro.Proveedor != "" {
		q = q.Joins("JOIN proveedores ON proveedores.id = productos.proveedor_id").
			Where("proveedores.nombre = ?", filtro.Proveedor)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filtro.Page - 1) * filtro.Limit
	err := q.Preload("Categoria").Preload("Marca").Preload("Proveedor").
		Order("nombre ASC").Limit(filtro.Limit).Offset(offset).Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) BuscarInventario(ctx context.Context, q string, categoriaID string) ([]model.Producto, error) {
	consulta := r.db.WithContext(ctx).Model(&model.Producto{})
	if q != "" {
		patron := "%" + q + "%"
		consulta = consulta.Where("descripcion ILIKE ? OR clave ILIKE ? OR departamento ILIKE ?",
			patron, patron, patron)
	}
	if categoriaID != "" {
		consulta = consulta.Where("categoria_id = ?", categoriaID)
	}
	var productos []model.Producto
	err := consulta.Preload("Categoria").Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ObtenerPorIDTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	if err := tx.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
