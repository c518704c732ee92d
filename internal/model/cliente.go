package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a customer profile, optionally linked 1:1 to a login Usuario.
// RFC is the Mexican tax id; both it and the email are unique.
type Cliente struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID    *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Nombre       string     `gorm:"not null"`
	Correo       string     `gorm:"uniqueIndex;not null"`
	Telefono     *string
	Direccion    *string
	Estado       *string
	Ciudad       *string
	CodigoPostal *string
	RFC          string `gorm:"column:rfc;uniqueIndex;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Usuario *Usuario `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE"`
}

func (Cliente) TableName() string { return "clientes" }
