package model

import (
	"time"

	"github.com/google/uuid"
)

// Marca is a product brand. Optional on products; deleting a brand leaves
// its products brandless.
type Marca struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Marca) TableName() string { return "marcas" }
