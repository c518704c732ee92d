package dto

import "github.com/shopspring/decimal"

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// ProductoFilter drives the public catalog browse: free-text q over
// nombre/descripcion/clave plus reference-entity name filters.
type ProductoFilter struct {
	Q         string `form:"q"`
	Categoria string `form:"categoria"`
	Marca     string `form:"marca"`
	Proveedor string `form:"proveedor"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=12" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID           string           `json:"id"`
	Nombre       string           `json:"nombre"`
	Clave        string           `json:"clave"`
	Descripcion  *string          `json:"descripcion"`
	Precio       *decimal.Decimal `json:"precio"`
	Existencia   int              `json:"existencia"`
	Color        *string          `json:"color,omitempty"`
	Departamento *string          `json:"departamento,omitempty"`
	Imagen       *string          `json:"imagen,omitempty"`
	Categoria    string           `json:"categoria"`
	Marca        *string          `json:"marca,omitempty"`
	Proveedor    *string          `json:"proveedor,omitempty"`
}

type ProductoListResponse struct {
	Data       []ProductoResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}
