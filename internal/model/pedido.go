package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	PedidoPendiente = "pendiente"
	PedidoProcesado = "procesado"
	PedidoEntregado = "entregado"
)

// Pedido is a committed sale, independent of the quotation that may have
// spawned it. A client may also accumulate one via the pending-cart flow.
type Pedido struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Folio     int             `gorm:"autoIncrement;uniqueIndex;<-:create"`
	Estado    string          `gorm:"type:varchar(20);not null;default:'pendiente'"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Cliente *Cliente     `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE"`
	Items   []PedidoItem `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE"`
}

func (Pedido) TableName() string { return "pedidos" }

// PedidoItem snapshots the unit price at creation time; the subtotal is
// derived, never stored.
type PedidoItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Cantidad       int             `gorm:"not null;default:1"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
}

func (PedidoItem) TableName() string { return "pedido_items" }

// Subtotal is cantidad × precio unitario congelado.
func (i *PedidoItem) Subtotal() decimal.Decimal {
	return i.PrecioUnitario.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}
