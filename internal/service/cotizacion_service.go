package service

import (
	"context"
	"errors"

	"ferreteria/internal/carrito"
	"ferreteria/internal/dto"
	"ferreteria/internal/model"
	"ferreteria/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSinCliente           = errors.New("no tienes un cliente dado de alta")
	ErrCotizacionNoHallada  = errors.New("cotizacion no encontrada")
	ErrCotizacionConvertida = errors.New("la cotizacion ya fue convertida en pedido")
)

type CotizacionService interface {
	// AgregarAlCarrito accumulates quantities per product in the session cart.
	AgregarAlCarrito(ctx context.Context, sesionID string, cantidades map[string]int) error
	QuitarDelCarrito(ctx context.Context, sesionID, productoID string) error
	// VerCarrito prices the cart at current product prices; the cart itself
	// never freezes a price.
	VerCarrito(ctx context.Context, sesionID string) (*dto.CarritoResponse, error)
	// Generar checks the cart out into a persisted quotation and clears it.
	Generar(ctx context.Context, sesionID string, usuarioID *uuid.UUID) (*dto.CotizacionResponse, error)
	// CargarParaEditar replaces the cart with an existing quotation's items
	// and records the edit marker: the next checkout deletes-and-recreates.
	CargarParaEditar(ctx context.Context, sesionID string, cotizacionID uuid.UUID) error
	ListarDelCliente(ctx context.Context, usuarioID uuid.UUID) ([]dto.CotizacionResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.CotizacionResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type cotizacionService struct {
	carritos     carrito.Store
	repo         repository.CotizacionRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
}

func NewCotizacionService(
	carritos carrito.Store,
	repo repository.CotizacionRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
) CotizacionService {
	return &cotizacionService{
		carritos:     carritos,
		repo:         repo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
	}
}

func (s *cotizacionService) AgregarAlCarrito(ctx context.Context, sesionID string, cantidades map[string]int) error {
	c, err := s.carritos.Obtener(ctx, sesionID)
	if err != nil {
		return err
	}
	for productoID, cantidad := range cantidades {
		c.Agregar(productoID, cantidad)
	}
	return s.carritos.Guardar(ctx, sesionID, c)
}

func (s *cotizacionService) QuitarDelCarrito(ctx context.Context, sesionID, productoID string) error {
	c, err := s.carritos.Obtener(ctx, sesionID)
	if err != nil {
		return err
	}
	c.Quitar(productoID)
	return s.carritos.Guardar(ctx, sesionID, c)
}

func (s *cotizacionService) VerCarrito(ctx context.Context, sesionID string) (*dto.CarritoResponse, error) {
	c, err := s.carritos.Obtener(ctx, sesionID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CarritoResponse{Items: make([]dto.CarritoItemResponse, 0, len(c.Items)), Total: decimal.Zero}
	if c.EditandoCotizacionID != nil {
		id := c.EditandoCotizacionID.String()
		resp.Editando = &id
	}
	for productoID, cantidad := range c.Items {
		pid, err := uuid.Parse(productoID)
		if err != nil {
			continue
		}
		p, err := s.productoRepo.ObtenerPorID(ctx, pid)
		if err != nil {
			continue
		}
		sub := p.PrecioOCero().Mul(decimal.NewFromInt(int64(cantidad)))
		resp.Items = append(resp.Items, dto.CarritoItemResponse{
			ProductoID: productoID,
			Nombre:     p.Nombre,
			Cantidad:   cantidad,
			Subtotal:   sub,
		})
		resp.Total = resp.Total.Add(sub)
	}
	return resp, nil
}

// Generar re-resolves every cart entry against the current product price,
// freezes one CotizacionItem per entry and persists the quotation with the
// summed total. Products deleted since being added are silently dropped; an
// empty cart still persists a quotation with total 0 and no items. An edit
// marker turns the save into delete-then-recreate, so the quotation id
// changes on every edit.
func (s *cotizacionService) Generar(ctx context.Context, sesionID string, usuarioID *uuid.UUID) (*dto.CotizacionResponse, error) {
	c, err := s.carritos.Obtener(ctx, sesionID)
	if err != nil {
		return nil, err
	}
	var clienteID *uuid.UUID
	if usuarioID != nil {
		cliente, err := s.clienteRepo.ObtenerPorUsuarioID(ctx, *usuarioID)
		if err != nil {
			return nil, ErrSinCliente
		}
		clienteID = &cliente.ID
	}

	if c.EditandoCotizacionID != nil {
		if err := s.repo.Eliminar(ctx, *c.EditandoCotizacionID); err != nil {
			return nil, err
		}
	}

	cot := &model.Cotizacion{ClienteID: clienteID, Total: decimal.Zero}
	total := decimal.Zero
	for productoID, cantidad := range c.Items {
		pid, err := uuid.Parse(productoID)
		if err != nil {
			continue
		}
		p, err := s.productoRepo.ObtenerPorID(ctx, pid)
		if err != nil {
			// Product gone since it was added — drop the entry, no error.
			continue
		}
		sub := p.PrecioOCero().Mul(decimal.NewFromInt(int64(cantidad)))
		cot.Items = append(cot.Items, model.CotizacionItem{
			ProductoID: pid,
			Cantidad:   cantidad,
			Subtotal:   sub,
		})
		total = total.Add(sub)
	}
	cot.Total = total

	if err := s.repo.Crear(ctx, cot); err != nil {
		return nil, err
	}

	if err := s.carritos.Limpiar(ctx, sesionID); err != nil {
		return nil, err
	}
	return cotizacionToResponse(cot), nil
}

func (s *cotizacionService) CargarParaEditar(ctx context.Context, sesionID string, cotizacionID uuid.UUID) error {
	cot, err := s.repo.ObtenerPorID(ctx, cotizacionID)
	if err != nil {
		return ErrCotizacionNoHallada
	}
	if cot.ConvertidaEnPedido {
		return ErrCotizacionConvertida
	}

	c := carrito.Nuevo()
	for _, item := range cot.Items {
		c.Items[item.ProductoID.String()] = item.Cantidad
	}
	id := cot.ID
	c.EditandoCotizacionID = &id
	return s.carritos.Guardar(ctx, sesionID, c)
}

func (s *cotizacionService) ListarDelCliente(ctx context.Context, usuarioID uuid.UUID) ([]dto.CotizacionResponse, error) {
	cliente, err := s.clienteRepo.ObtenerPorUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, ErrSinCliente
	}
	cotizaciones, err := s.repo.ListarPorCliente(ctx, cliente.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CotizacionResponse, 0, len(cotizaciones))
	for i := range cotizaciones {
		resp = append(resp, *cotizacionToResponse(&cotizaciones[i]))
	}
	return resp, nil
}

func (s *cotizacionService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.CotizacionResponse, error) {
	cot, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, ErrCotizacionNoHallada
	}
	return cotizacionToResponse(cot), nil
}

func (s *cotizacionService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return ErrCotizacionNoHallada
	}
	return s.repo.Eliminar(ctx, id)
}

func cotizacionToResponse(c *model.Cotizacion) *dto.CotizacionResponse {
	items := make([]dto.CotizacionItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}
		items = append(items, dto.CotizacionItemResponse{
			ProductoID: item.ProductoID.String(),
			Producto:   nombre,
			Cantidad:   item.Cantidad,
			Subtotal:   item.Subtotal,
		})
	}
	return &dto.CotizacionResponse{
		ID:         c.ID.String(),
		Folio:      c.Folio,
		Total:      c.Total,
		Convertida: c.ConvertidaEnPedido,
		Fecha:      c.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Items:      items,
	}
}
