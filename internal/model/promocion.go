package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Promocion is a discount campaign shown on the storefront.
type Promocion struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Titulo      string    `gorm:"not null"`
	Descripcion *string
	// Descuento is a percentage, not an amount.
	Descuento    decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Imagen       *string
	VigenteHasta time.Time `gorm:"type:date;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Promocion) TableName() string { return "promociones" }

// PromocionTicker is a free-text scrolling promo line, independent of Promocion.
type PromocionTicker struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Texto     string    `gorm:"not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (PromocionTicker) TableName() string { return "promocion_tickers" }
