// Package carrito holds the session-scoped quotation cart: a plain
// product-id → accumulated-quantity mapping with no coupling to request
// internals. Persistence is delegated to a Store keyed by session id.
package carrito

import "github.com/google/uuid"

// Carrito is the cart value object carried through checkout parameters.
type Carrito struct {
	// Items maps the string form of a product id to its accumulated quantity.
	Items map[string]int `json:"items"`
	// EditandoCotizacionID marks an edit-in-progress: checkout then deletes
	// the referenced quotation and creates a fresh one in its place.
	EditandoCotizacionID *uuid.UUID `json:"editando_cotizacion_id,omitempty"`
}

// Nuevo returns an empty cart.
func Nuevo() *Carrito {
	return &Carrito{Items: make(map[string]int)}
}

// Agregar increments the accumulated quantity for a product. Quantities of
// zero or less are ignored. No upper bound, no stock check.
func (c *Carrito) Agregar(productoID string, cantidad int) {
	if cantidad <= 0 {
		return
	}
	c.Items[productoID] += cantidad
}

// Quitar removes a product from the cart; removing an absent product is a
// no-op.
func (c *Carrito) Quitar(productoID string) {
	delete(c.Items, productoID)
}

// Vacio reports whether the cart holds no items.
func (c *Carrito) Vacio() bool { return len(c.Items) == 0 }
