package model

import (
	"time"

	"github.com/google/uuid"
)

// Categoria classifies products. Every product belongs to exactly one.
type Categoria struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Categoria) TableName() string { return "categorias" }
