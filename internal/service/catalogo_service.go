package service

import (
	"context"

	"ferreteria/internal/dto"
	"ferreteria/internal/repository"
)

// CatalogoService exposes the reference entities (categorías, marcas,
// proveedores) as read-only listings for the storefront filters.
type CatalogoService interface {
	ListarCategorias(ctx context.Context) ([]dto.CategoriaResponse, error)
	ListarMarcas(ctx context.Context) ([]dto.MarcaResponse, error)
	ListarProveedores(ctx context.Context) ([]dto.ProveedorResponse, error)
}

type catalogoService struct {
	categoriaRepo repository.CategoriaRepository
	marcaRepo     repository.MarcaRepository
	proveedorRepo repository.ProveedorRepository
}

func NewCatalogoService(
	categoriaRepo repository.CategoriaRepository,
	marcaRepo repository.MarcaRepository,
	proveedorRepo repository.ProveedorRepository,
) CatalogoService {
	return &catalogoService{
		categoriaRepo: categoriaRepo,
		marcaRepo:     marcaRepo,
		proveedorRepo: proveedorRepo,
	}
}

func (s *catalogoService) ListarCategorias(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.categoriaRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoriaResponse, len(categorias))
	for i, c := range categorias {
		resp[i] = dto.CategoriaResponse{
			ID:          c.ID.String(),
			Nombre:      c.Nombre,
			Descripcion: c.Descripcion,
		}
	}
	return resp, nil
}

func (s *catalogoService) ListarMarcas(ctx context.Context) ([]dto.MarcaResponse, error) {
	marcas, err := s.marcaRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MarcaResponse, len(marcas))
	for i, m := range marcas {
		resp[i] = dto.MarcaResponse{ID: m.ID.String(), Nombre: m.Nombre}
	}
	return resp, nil
}

func (s *catalogoService) ListarProveedores(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.proveedorRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProveedorResponse, len(proveedores))
	for i, p := range proveedores {
		resp[i] = dto.ProveedorResponse{
			ID:       p.ID.String(),
			Nombre:   p.Nombre,
			Contacto: p.Contacto,
		}
	}
	return resp, nil
}
