package service

import (
	"context"
	"errors"
	"sort"

	"ferreteria/internal/carrito"
	"ferreteria/internal/dto"
	"ferreteria/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func decimalObligatorio(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// In-memory stubs used across the service tests. DB() returns nil on every
// stub, which makes runTx execute its closure directly without a real
// transaction.

var errNoEncontrado = errors.New("record not found")

// ── Carrito store ────────────────────────────────────────────────────────────

type memCarritoStore struct {
	carritos map[string]*carrito.Carrito
}

func newMemCarritoStore() *memCarritoStore {
	return &memCarritoStore{carritos: make(map[string]*carrito.Carrito)}
}

func (s *memCarritoStore) Obtener(_ context.Context, sesionID string) (*carrito.Carrito, error) {
	c, ok := s.carritos[sesionID]
	if !ok {
		return carrito.Nuevo(), nil
	}
	return c, nil
}

func (s *memCarritoStore) Guardar(_ context.Context, sesionID string, c *carrito.Carrito) error {
	s.carritos[sesionID] = c
	return nil
}

func (s *memCarritoStore) Limpiar(_ context.Context, sesionID string) error {
	delete(s.carritos, sesionID)
	return nil
}

// ── ProductoRepository ───────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Crear(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errNoEncontrado
	}
	return p, nil
}

func (r *stubProductoRepo) BuscarPorClave(_ context.Context, clave string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.Clave == clave {
			return p, nil
		}
	}
	return nil, nil
}

func (r *stubProductoRepo) Actualizar(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Listar(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	result := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nombre < result[j].Nombre })
	return result, int64(len(result)), nil
}

func (r *stubProductoRepo) BuscarInventario(_ context.Context, _ string, _ string) ([]model.Producto, error) {
	result := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		result = append(result, *p)
	}
	return result, nil
}

func (r *stubProductoRepo) ObtenerPorIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	return r.ObtenerPorID(context.Background(), id)
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

// ── ClienteRepository ────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Crear(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errNoEncontrado
	}
	return c, nil
}

func (r *stubClienteRepo) ObtenerPorUsuarioID(_ context.Context, usuarioID uuid.UUID) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.UsuarioID != nil && *c.UsuarioID == usuarioID {
			return c, nil
		}
	}
	return nil, errNoEncontrado
}

func (r *stubClienteRepo) ExistePorRFC(_ context.Context, rfc string) (bool, error) {
	for _, c := range r.clientes {
		if c.RFC == rfc {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubClienteRepo) ExistePorCorreo(_ context.Context, correo string) (bool, error) {
	for _, c := range r.clientes {
		if c.Correo == correo {
			return true, nil
		}
	}
	return false, nil
}

// ── UsuarioRepository ────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Crear(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) ObtenerPorUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username && u.Activo {
			return u, nil
		}
	}
	return nil, errNoEncontrado
}

func (r *stubUsuarioRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errNoEncontrado
	}
	return u, nil
}

// ── CotizacionRepository ─────────────────────────────────────────────────────

type stubCotizacionRepo struct {
	cotizaciones map[uuid.UUID]*model.Cotizacion
	folio        int
	eliminadas   []uuid.UUID
}

func newStubCotizacionRepo() *stubCotizacionRepo {
	return &stubCotizacionRepo{cotizaciones: make(map[uuid.UUID]*model.Cotizacion)}
}

func (r *stubCotizacionRepo) Crear(_ context.Context, c *model.Cotizacion) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.folio++
	c.Folio = r.folio
	r.cotizaciones[c.ID] = c
	return nil
}

func (r *stubCotizacionRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Cotizacion, error) {
	c, ok := r.cotizaciones[id]
	if !ok {
		return nil, errNoEncontrado
	}
	return c, nil
}

func (r *stubCotizacionRepo) ObtenerDeClienteNoConvertida(_ context.Context, id, clienteID uuid.UUID) (*model.Cotizacion, error) {
	c, ok := r.cotizaciones[id]
	if !ok || c.ConvertidaEnPedido || c.ClienteID == nil || *c.ClienteID != clienteID {
		return nil, errNoEncontrado
	}
	return c, nil
}

func (r *stubCotizacionRepo) ListarPorCliente(_ context.Context, clienteID uuid.UUID) ([]model.Cotizacion, error) {
	var result []model.Cotizacion
	for _, c := range r.cotizaciones {
		if c.ClienteID != nil && *c.ClienteID == clienteID && !c.ConvertidaEnPedido {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (r *stubCotizacionRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	if _, ok := r.cotizaciones[id]; !ok {
		return errNoEncontrado
	}
	delete(r.cotizaciones, id)
	r.eliminadas = append(r.eliminadas, id)
	return nil
}

func (r *stubCotizacionRepo) MarcarConvertidaTx(_ *gorm.DB, id uuid.UUID) error {
	c, ok := r.cotizaciones[id]
	if !ok {
		return errNoEncontrado
	}
	c.ConvertidaEnPedido = true
	return nil
}

func (r *stubCotizacionRepo) DB() *gorm.DB { return nil }

// ── PedidoRepository ─────────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos map[uuid.UUID]*model.Pedido
	folio   int
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uuid.UUID]*model.Pedido)}
}

func (r *stubPedidoRepo) Crear(_ context.Context, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.folio++
	p.Folio = r.folio
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) CrearTx(_ *gorm.DB, p *model.Pedido) error {
	return r.Crear(context.Background(), p)
}

func (r *stubPedidoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, errNoEncontrado
	}
	return p, nil
}

func (r *stubPedidoRepo) ObtenerDeCliente(_ context.Context, id, clienteID uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok || p.ClienteID != clienteID {
		return nil, errNoEncontrado
	}
	return p, nil
}

func (r *stubPedidoRepo) ObtenerPendiente(_ context.Context, clienteID uuid.UUID) (*model.Pedido, error) {
	for _, p := range r.pedidos {
		if p.ClienteID == clienteID && p.Estado == model.PedidoPendiente {
			return p, nil
		}
	}
	return nil, nil
}

func (r *stubPedidoRepo) ListarStaff(_ context.Context) ([]model.Pedido, error) {
	var result []model.Pedido
	for _, p := range r.pedidos {
		if p.Estado != model.PedidoPendiente {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubPedidoRepo) ListarPorCliente(_ context.Context, clienteID uuid.UUID) ([]model.Pedido, error) {
	var result []model.Pedido
	for _, p := range r.pedidos {
		if p.ClienteID == clienteID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubPedidoRepo) Actualizar(_ context.Context, p *model.Pedido) error {
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) ActualizarEstado(_ context.Context, id uuid.UUID, estado string) error {
	p, ok := r.pedidos[id]
	if !ok {
		return errNoEncontrado
	}
	p.Estado = estado
	return nil
}

func (r *stubPedidoRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	if _, ok := r.pedidos[id]; !ok {
		return errNoEncontrado
	}
	delete(r.pedidos, id)
	return nil
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

// ── Semillas ─────────────────────────────────────────────────────────────────

func seedProducto(repo *stubProductoRepo, nombre, clave, precio string) *model.Producto {
	p := &model.Producto{
		ID:          uuid.New(),
		Nombre:      nombre,
		Clave:       clave,
		CategoriaID: uuid.New(),
	}
	if precio != "" {
		d := decimalObligatorio(precio)
		p.Precio = &d
	}
	repo.productos[p.ID] = p
	return p
}

func seedCliente(repo *stubClienteRepo, nombre string, usuarioID uuid.UUID) *model.Cliente {
	c := &model.Cliente{
		ID:        uuid.New(),
		UsuarioID: &usuarioID,
		Nombre:    nombre,
		Correo:    nombre + "@clientes.mx",
		RFC:       "XAXX010101000",
	}
	repo.clientes[c.ID] = c
	return c
}
