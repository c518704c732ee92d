package dto

import "github.com/shopspring/decimal"

// ─── Carrito ─────────────────────────────────────────────────────────────────

// CarritoItemResponse is a live cart line: priced at view time with the
// current product price, never frozen.
type CarritoItemResponse struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Cantidad   int             `json:"cantidad"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type CarritoResponse struct {
	Items    []CarritoItemResponse `json:"items"`
	Total    decimal.Decimal       `json:"total"`
	Editando *string               `json:"editando_cotizacion_id,omitempty"`
}

// ─── Cotizaciones ────────────────────────────────────────────────────────────

type CotizacionItemResponse struct {
	ProductoID string          `json:"producto_id"`
	Producto   string          `json:"producto"`
	Cantidad   int             `json:"cantidad"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type CotizacionResponse struct {
	ID         string                   `json:"id"`
	Folio      int                      `json:"folio"`
	Total      decimal.Decimal          `json:"total"`
	Convertida bool                     `json:"convertida_en_pedido"`
	Fecha      string                   `json:"fecha"`
	Items      []CotizacionItemResponse `json:"items"`
}
