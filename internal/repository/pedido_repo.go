package repository

import (
	"context"
	"errors"

	"ferreteria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PedidoRepository interface {
	Crear(ctx context.Context, p *model.Pedido) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	// ObtenerDeCliente conflates "not yours" with "not found" by filter.
	ObtenerDeCliente(ctx context.Context, id, clienteID uuid.UUID) (*model.Pedido, error)
	// ObtenerPendiente returns the client's open pending cart-order, or
	// (nil, nil) when none exists.
	ObtenerPendiente(ctx context.Context, clienteID uuid.UUID) (*model.Pedido, error)
	ListarStaff(ctx context.Context) ([]model.Pedido, error)
	ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Pedido, error)
	Actualizar(ctx context.Context, p *model.Pedido) error
	ActualizarEstado(ctx context.Context, id uuid.UUID, estado string) error
	Eliminar(ctx context.Context, id uuid.UUID) error

	// Used inside transactions — callers must pass the tx instance.
	CrearTx(tx *gorm.DB, p *model.Pedido) error

	DB() *gorm.DB
}

type pedidoRepository struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepository{db: db} }

func (r *pedidoRepository) Crear(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepository) CrearTx(tx *gorm.DB, p *model.Pedido) error {
	return tx.Create(p).Error
}

func (r *pedidoRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Items.Producto").Preload("Cliente").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepository) ObtenerDeCliente(ctx context.Context, id, clienteID uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Items.Producto").
		Where("id = ? AND cliente_id = ?", id, clienteID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepository) ObtenerPendiente(ctx context.Context, clienteID uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Items").
		Where("cliente_id = ? AND estado = ?", clienteID, model.PedidoPendiente).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepository) ListarStaff(ctx context.Context) ([]model.Pedido, error) {
	var list []model.Pedido
	err := r.db.WithContext(ctx).Preload("Items.Producto").Preload("Cliente").
		Where("estado <> ?", model.PedidoPendiente).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *pedidoRepository) ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Pedido, error) {
	var list []model.Pedido
	err := r.db.WithContext(ctx).Preload("Items.Producto").
		Where("cliente_id = ?", clienteID).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *pedidoRepository) Actualizar(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
}

func (r *pedidoRepository) ActualizarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).
		Update("estado", estado).Error
}

func (r *pedidoRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Items").Delete(&model.Pedido{ID: id}).Error
}

func (r *pedidoRepository) DB() *gorm.DB { return r.db }
