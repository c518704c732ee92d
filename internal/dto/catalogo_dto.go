package dto

import "github.com/shopspring/decimal"

type CategoriaResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
}

type MarcaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

type ProveedorResponse struct {
	ID       string  `json:"id"`
	Nombre   string  `json:"nombre"`
	Contacto *string `json:"contacto,omitempty"`
}

type PromocionResponse struct {
	ID           string          `json:"id"`
	Titulo       string          `json:"titulo"`
	Descripcion  *string         `json:"descripcion,omitempty"`
	Descuento    decimal.Decimal `json:"descuento"`
	Imagen       *string         `json:"imagen,omitempty"`
	VigenteHasta string          `json:"vigente_hasta"`
}

type TickerResponse struct {
	Texto string `json:"texto"`
}
