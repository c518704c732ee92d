package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog item. Clave is the stable business key used by the
// import pipeline to match rows; the UUID primary key is never used for that.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Clave       string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	// Precio is nullable: products can be listed before pricing is known.
	Precio       *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Existencia   int              `gorm:"not null;default:0"`
	Color        *string
	Departamento *string
	Imagen       *string
	CategoriaID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	MarcaID      *uuid.UUID `gorm:"type:uuid;index"`
	ProveedorID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE"`
	Marca     *Marca     `gorm:"foreignKey:MarcaID;constraint:OnDelete:SET NULL"`
	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID;constraint:OnDelete:SET NULL"`
}

func (Producto) TableName() string { return "productos" }

// PrecioOCero returns the list price, treating an unpriced product as zero.
// Mirrors the lenient-import policy: dirty price data never aborts a flow.
func (p *Producto) PrecioOCero() decimal.Decimal {
	if p.Precio == nil {
		return decimal.Zero
	}
	return *p.Precio
}
