package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cotizacion is a priced, itemized proposal generated from a session cart.
// ConvertidaEnPedido is one-directional: once true it is never cleared.
type Cotizacion struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID *uuid.UUID `gorm:"type:uuid;index"`
	// Folio is a human-friendly sequential number for messages and listings.
	Folio              int             `gorm:"autoIncrement;uniqueIndex;<-:create"`
	Total              decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ConvertidaEnPedido bool            `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Cliente *Cliente         `gorm:"foreignKey:ClienteID;constraint:OnDelete:SET NULL"`
	Items   []CotizacionItem `gorm:"foreignKey:CotizacionID;constraint:OnDelete:CASCADE"`
}

func (Cotizacion) TableName() string { return "cotizaciones" }

// CotizacionItem freezes price-at-quotation-time: Subtotal is computed once
// at creation and never recomputed if the product price changes later.
type CotizacionItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CotizacionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID   uuid.UUID       `gorm:"type:uuid;not null"`
	Cantidad     int             `gorm:"not null;default:1"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
}

func (CotizacionItem) TableName() string { return "cotizacion_items" }
