package service

import (
	"context"
	"errors"
	"fmt"

	"ferreteria/internal/dto"
	"ferreteria/internal/model"
	"ferreteria/internal/notifier"
	"ferreteria/internal/repository"
	"ferreteria/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrPedidoNoHallado = errors.New("pedido no encontrado")

type PedidoService interface {
	// ConvertirCotizacion materializes a client's quotation into an order
	// atomically: order + re-priced items + conversion flag, or nothing.
	ConvertirCotizacion(ctx context.Context, usuarioID, cotizacionID uuid.UUID) (*dto.PedidoResponse, error)
	// AgregarAlCarrito is the second, independent path to an order: a
	// get-or-create pending order per client, accumulated product by product.
	AgregarAlCarrito(ctx context.Context, usuarioID, productoID uuid.UUID) (*dto.PedidoResponse, error)
	ConfirmarPedido(ctx context.Context, usuarioID, pedidoID uuid.UUID) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, usuarioID uuid.UUID, esStaff bool) ([]dto.PedidoResponse, error)
	ObtenerPorID(ctx context.Context, usuarioID uuid.UUID, esStaff bool, id uuid.UUID) (*dto.PedidoResponse, error)
	Eliminar(ctx context.Context, usuarioID uuid.UUID, esStaff bool, id uuid.UUID) error
}

type pedidoService struct {
	repo           repository.PedidoRepository
	cotizacionRepo repository.CotizacionRepository
	productoRepo   repository.ProductoRepository
	clienteRepo    repository.ClienteRepository
	hub            *notifier.Hub
	dispatcher     *worker.Dispatcher
}

func NewPedidoService(
	repo repository.PedidoRepository,
	cotizacionRepo repository.CotizacionRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	hub *notifier.Hub,
	dispatcher *worker.Dispatcher,
) PedidoService {
	return &pedidoService{
		repo:           repo,
		cotizacionRepo: cotizacionRepo,
		productoRepo:   productoRepo,
		clienteRepo:    clienteRepo,
		hub:            hub,
		dispatcher:     dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── ConvertirCotizacion ──────────────────────────────────────────────────────
// Ownership and conversion state are enforced by the lookup filter itself, so
// a foreign or already-converted quotation surfaces as not-found. All steps
// commit atomically; the conversion alert is published inside the
// transactional closure, matching the observed behavior this system keeps.

func (s *pedidoService) ConvertirCotizacion(ctx context.Context, usuarioID, cotizacionID uuid.UUID) (*dto.PedidoResponse, error) {
	cliente, err := s.clienteRepo.ObtenerPorUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, ErrSinCliente
	}

	cot, err := s.cotizacionRepo.ObtenerDeClienteNoConvertida(ctx, cotizacionID, cliente.ID)
	if err != nil {
		return nil, ErrCotizacionNoHallada
	}

	var pedido model.Pedido
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		pedido = model.Pedido{
			ClienteID: cliente.ID,
			Total:     cot.Total,
			// Conversion skips the "pendiente" state outright.
			Estado: model.PedidoProcesado,
		}

		// Unit prices are re-read from the current product record: conversion
		// re-prices intentionally, it does not copy the frozen subtotals.
		for _, item := range cot.Items {
			p, err := s.obtenerProductoTx(ctx, tx, item.ProductoID)
			if err != nil {
				return fmt.Errorf("producto %s no disponible: %w", item.ProductoID, err)
			}
			pedido.Items = append(pedido.Items, model.PedidoItem{
				ProductoID:     item.ProductoID,
				Cantidad:       item.Cantidad,
				PrecioUnitario: p.PrecioOCero(),
			})
		}

		if err := s.repo.CrearTx(tx, &pedido); err != nil {
			return err
		}
		if err := s.cotizacionRepo.MarcarConvertidaTx(tx, cot.ID); err != nil {
			return err
		}

		s.hub.Publicar(notifier.TopicoConversiones, notifier.Evento{
			Titulo:  "¡Nuevo Pedido Confirmado!",
			Mensaje: fmt.Sprintf("La cotización #%d ha sido convertida", cot.Folio),
			Total:   cot.Total.StringFixed(2),
			Cliente: cliente.Nombre,
		})
		s.notificarPedidoNuevo(&pedido, cliente)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.avisarPorCorreo(ctx, &pedido, cliente)
	return pedidoToResponse(&pedido, cliente.Nombre), nil
}

// obtenerProductoTx reads the product inside the transaction when one is
// open, or through the repository in unit test mode.
func (s *pedidoService) obtenerProductoTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	if tx == nil {
		return s.productoRepo.ObtenerPorID(ctx, id)
	}
	return s.productoRepo.ObtenerPorIDTx(tx, id)
}

// ── AgregarAlCarrito ─────────────────────────────────────────────────────────

func (s *pedidoService) AgregarAlCarrito(ctx context.Context, usuarioID, productoID uuid.UUID) (*dto.PedidoResponse, error) {
	cliente, err := s.clienteRepo.ObtenerPorUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, ErrSinCliente
	}
	producto, err := s.productoRepo.ObtenerPorID(ctx, productoID)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}

	pedido, err := s.repo.ObtenerPendiente(ctx, cliente.ID)
	if err != nil {
		return nil, err
	}

	if pedido == nil {
		pedido = &model.Pedido{
			ClienteID: cliente.ID,
			Estado:    model.PedidoPendiente,
			Total:     decimal.Zero,
			Items: []model.PedidoItem{{
				ProductoID:     productoID,
				Cantidad:       1,
				PrecioUnitario: producto.PrecioOCero(),
			}},
		}
		recalcularTotal(pedido)
		if err := s.repo.Crear(ctx, pedido); err != nil {
			return nil, err
		}
		// A brand-new order alerts staff immediately, same as a conversion.
		s.notificarPedidoNuevo(pedido, cliente)
		s.avisarPorCorreo(ctx, pedido, cliente)
		return pedidoToResponse(pedido, cliente.Nombre), nil
	}

	encontrado := false
	for i := range pedido.Items {
		if pedido.Items[i].ProductoID == productoID {
			pedido.Items[i].Cantidad++
			encontrado = true
			break
		}
	}
	if !encontrado {
		pedido.Items = append(pedido.Items, model.PedidoItem{
			PedidoID:       pedido.ID,
			ProductoID:     productoID,
			Cantidad:       1,
			PrecioUnitario: producto.PrecioOCero(),
		})
	}
	recalcularTotal(pedido)
	if err := s.repo.Actualizar(ctx, pedido); err != nil {
		return nil, err
	}
	return pedidoToResponse(pedido, cliente.Nombre), nil
}

func recalcularTotal(p *model.Pedido) {
	total := decimal.Zero
	for i := range p.Items {
		total = total.Add(p.Items[i].Subtotal())
	}
	p.Total = total
}

// ── Consultas y transiciones ─────────────────────────────────────────────────

func (s *pedidoService) ConfirmarPedido(ctx context.Context, usuarioID, pedidoID uuid.UUID) (*dto.PedidoResponse, error) {
	cliente, err := s.clienteRepo.ObtenerPorUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, ErrSinCliente
	}
	pedido, err := s.repo.ObtenerDeCliente(ctx, pedidoID, cliente.ID)
	if err != nil {
		return nil, ErrPedidoNoHallado
	}
	if err := s.repo.ActualizarEstado(ctx, pedido.ID, model.PedidoProcesado); err != nil {
		return nil, err
	}
	pedido.Estado = model.PedidoProcesado
	return pedidoToResponse(pedido, cliente.Nombre), nil
}

func (s *pedidoService) Listar(ctx context.Context, usuarioID uuid.UUID, esStaff bool) ([]dto.PedidoResponse, error) {
	var pedidos []model.Pedido
	var err error
	nombreCliente := ""

	if esStaff {
		pedidos, err = s.repo.ListarStaff(ctx)
	} else {
		var cliente *model.Cliente
		cliente, err = s.clienteRepo.ObtenerPorUsuarioID(ctx, usuarioID)
		if err != nil {
			return nil, ErrSinCliente
		}
		nombreCliente = cliente.Nombre
		pedidos, err = s.repo.ListarPorCliente(ctx, cliente.ID)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		nombre := nombreCliente
		if pedidos[i].Cliente != nil {
			nombre = pedidos[i].Cliente.Nombre
		}
		resp = append(resp, *pedidoToResponse(&pedidos[i], nombre))
	}
	return resp, nil
}

func (s *pedidoService) ObtenerPorID(ctx context.Context, usuarioID uuid.UUID, esStaff bool, id uuid.UUID) (*dto.PedidoResponse, error) {
	if esStaff {
		pedido, err := s.repo.ObtenerPorID(ctx, id)
		if err != nil {
			return nil, ErrPedidoNoHallado
		}
		nombre := ""
		if pedido.Cliente != nil {
			nombre = pedido.Cliente.Nombre
		}
		return pedidoToResponse(pedido, nombre), nil
	}

	cliente, err := s.clienteRepo.ObtenerPorUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, ErrSinCliente
	}
	pedido, err := s.repo.ObtenerDeCliente(ctx, id, cliente.ID)
	if err != nil {
		return nil, ErrPedidoNoHallado
	}
	return pedidoToResponse(pedido, cliente.Nombre), nil
}

func (s *pedidoService) Eliminar(ctx context.Context, usuarioID uuid.UUID, esStaff bool, id uuid.UUID) error {
	if esStaff {
		if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
			return ErrPedidoNoHallado
		}
		return s.repo.Eliminar(ctx, id)
	}

	cliente, err := s.clienteRepo.ObtenerPorUsuarioID(ctx, usuarioID)
	if err != nil {
		return ErrSinCliente
	}
	if _, err := s.repo.ObtenerDeCliente(ctx, id, cliente.ID); err != nil {
		return ErrPedidoNoHallado
	}
	return s.repo.Eliminar(ctx, id)
}

// ── Notificaciones ───────────────────────────────────────────────────────────

func (s *pedidoService) notificarPedidoNuevo(p *model.Pedido, cliente *model.Cliente) {
	s.hub.Publicar(notifier.TopicoPedidosAdmin, notifier.Evento{
		Titulo:  "¡Nuevo Pedido!",
		Mensaje: fmt.Sprintf("Pedido #%d recibido", p.Folio),
		Total:   p.Total.StringFixed(2),
		Cliente: cliente.Nombre,
	})
}

// avisarPorCorreo enqueues the staff email job. Best-effort — fire & forget.
func (s *pedidoService) avisarPorCorreo(ctx context.Context, p *model.Pedido, cliente *model.Cliente) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.EnqueueAviso(ctx, worker.AvisoPayload{
		Asunto: fmt.Sprintf("Nuevo pedido #%d", p.Folio),
		Cuerpo: fmt.Sprintf("Pedido #%d de %s por $%s.", p.Folio, cliente.Nombre, p.Total.StringFixed(2)),
	})
}

func pedidoToResponse(p *model.Pedido, cliente string) *dto.PedidoResponse {
	items := make([]dto.PedidoItemResponse, 0, len(p.Items))
	for i := range p.Items {
		item := &p.Items[i]
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}
		items = append(items, dto.PedidoItemResponse{
			ProductoID:     item.ProductoID.String(),
			Producto:       nombre,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal(),
		})
	}
	return &dto.PedidoResponse{
		ID:      p.ID.String(),
		Folio:   p.Folio,
		Estado:  p.Estado,
		Total:   p.Total,
		Fecha:   p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Cliente: cliente,
		Items:   items,
	}
}
