package service

import (
	"context"
	"errors"

	"ferreteria/internal/dto"
	"ferreteria/internal/model"
	"ferreteria/internal/repository"

	"github.com/google/uuid"
)

var ErrProductoNoHallado = errors.New("producto no encontrado")

type ProductoService interface {
	Listar(ctx context.Context, filtro dto.ProductoFilter) (*dto.ProductoListResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	BuscarInventario(ctx context.Context, q string, categoriaID string) ([]dto.ProductoResponse, error)
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Listar(ctx context.Context, filtro dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filtro.Page < 1 {
		filtro.Page = 1
	}
	if filtro.Limit < 1 {
		filtro.Limit = 12
	}

	productos, total, err := s.repo.Listar(ctx, filtro)
	if err != nil {
		return nil, err
	}

	data := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		data = append(data, *productoToResponse(&productos[i]))
	}

	totalPages := int(total) / filtro.Limit
	if int(total)%filtro.Limit != 0 {
		totalPages++
	}

	return &dto.ProductoListResponse{
		Data:       data,
		Total:      total,
		Page:       filtro.Page,
		Limit:      filtro.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, ErrProductoNoHallado
	}
	return productoToResponse(p), nil
}

func (s *productoService) BuscarInventario(ctx context.Context, q string, categoriaID string) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.BuscarInventario(ctx, q, categoriaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, *productoToResponse(&productos[i]))
	}
	return resp, nil
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	resp := &dto.ProductoResponse{
		ID:           p.ID.String(),
		Nombre:       p.Nombre,
		Clave:        p.Clave,
		Descripcion:  p.Descripcion,
		Precio:       p.Precio,
		Existencia:   p.Existencia,
		Color:        p.Color,
		Departamento: p.Departamento,
		Imagen:       p.Imagen,
	}
	if p.Categoria != nil {
		resp.Categoria = p.Categoria.Nombre
	}
	if p.Marca != nil {
		resp.Marca = &p.Marca.Nombre
	}
	if p.Proveedor != nil {
		resp.Proveedor = &p.Proveedor.Nombre
	}
	return resp
}
