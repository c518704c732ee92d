package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor is a supplier. Optional on products; deleting a supplier leaves
// its products without one.
type Proveedor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	Contacto  *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Productos []Producto `gorm:"foreignKey:ProveedorID"`
}

func (Proveedor) TableName() string { return "proveedores" }
