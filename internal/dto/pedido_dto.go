package dto

import "github.com/shopspring/decimal"

type PedidoItemResponse struct {
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type PedidoResponse struct {
	ID      string               `json:"id"`
	Folio   int                  `json:"folio"`
	Estado  string               `json:"estado"`
	Total   decimal.Decimal      `json:"total"`
	Fecha   string               `json:"fecha"`
	Cliente string               `json:"cliente,omitempty"`
	Items   []PedidoItemResponse `json:"items"`
}
