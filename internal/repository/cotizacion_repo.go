package repository

import (
	"context"

	"ferreteria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CotizacionRepository interface {
	// Crear persists the quotation together with its items.
	Crear(ctx context.Context, c *model.Cotizacion) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cotizacion, error)
	// ObtenerDeClienteNoConvertida scopes by owner and conversion state via
	// the query filter itself: someone else's or an already-converted
	// quotation surfaces as not-found, never as permission-denied.
	ObtenerDeClienteNoConvertida(ctx context.Context, id, clienteID uuid.UUID) (*model.Cotizacion, error)
	ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Cotizacion, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	MarcarConvertidaTx(tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type cotizacionRepository struct{ db *gorm.DB }

func NewCotizacionRepository(db *gorm.DB) CotizacionRepository {
	return &cotizacionRepository{db: db}
}

func (r *cotizacionRepository) Crear(ctx context.Context, c *model.Cotizacion) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cotizacionRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cotizacion, error) {
	var c model.Cotizacion
	err := r.db.WithContext(ctx).Preload("Items.Producto").Preload("Cliente").
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cotizacionRepository) ObtenerDeClienteNoConvertida(ctx context.Context, id, clienteID uuid.UUID) (*model.Cotizacion, error) {
	var c model.Cotizacion
	err := r.db.WithContext(ctx).Preload("Items.Producto").
		Where("id = ? AND cliente_id = ? AND convertida_en_pedido = false", id, clienteID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cotizacionRepository) ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Cotizacion, error) {
	var list []model.Cotizacion
	err := r.db.WithContext(ctx).Preload("Items.Producto").
		Where("cliente_id = ? AND convertida_en_pedido = false", clienteID).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *cotizacionRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	// Items cascade with the parent.
	return r.db.WithContext(ctx).Select("Items").Delete(&model.Cotizacion{ID: id}).Error
}

func (r *cotizacionRepository) MarcarConvertidaTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&model.Cotizacion{}).Where("id = ?", id).
		Update("convertida_en_pedido", true).Error
}

func (r *cotizacionRepository) DB() *gorm.DB { return r.db }
