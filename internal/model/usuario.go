package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles de usuario. Staff = vendedor o administrador.
const (
	RolCliente       = "cliente"
	RolVendedor      = "vendedor"
	RolAdministrador = "administrador"
)

// Usuario stores login identities with role-based access.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Rol          string `gorm:"type:varchar(20);not null"`
	Activo       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }

// EsStaff reports whether the user may access staff-only surfaces
// (inventory search, order administration, the notification socket).
func (u *Usuario) EsStaff() bool {
	return u.Rol == RolVendedor || u.Rol == RolAdministrador
}
