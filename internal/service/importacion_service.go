package service

import (
	"context"

	"ferreteria/internal/importer"
	"ferreteria/internal/model"
	"ferreteria/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ImportacionService runs spreadsheet uploads through the import pipeline,
// wiring the reference resolvers to their repositories.
type ImportacionService interface {
	ImportarArchivo(ctx context.Context, nombre string, contenido []byte) (*importer.Reporte, error)
}

type importacionService struct {
	recurso *importer.Recurso
}

func NewImportacionService(
	productoRepo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
	marcaRepo repository.MarcaRepository,
	proveedorRepo repository.ProveedorRepository,
) ImportacionService {
	categorias := importer.NewResolutorReferencia(
		func(ctx context.Context) ([]importer.Referencia, error) {
			list, err := categoriaRepo.Listar(ctx)
			if err != nil {
				return nil, err
			}
			refs := make([]importer.Referencia, len(list))
			for i, c := range list {
				refs[i] = importer.Referencia{ID: c.ID, Nombre: c.Nombre}
			}
			return refs, nil
		},
		func(ctx context.Context, nombre string) (uuid.UUID, error) {
			c := &model.Categoria{Nombre: nombre}
			if err := categoriaRepo.Crear(ctx, c); err != nil {
				return uuid.Nil, err
			}
			return c.ID, nil
		},
	)

	marcas := importer.NewResolutorReferencia(
		func(ctx context.Context) ([]importer.Referencia, error) {
			list, err := marcaRepo.Listar(ctx)
			if err != nil {
				return nil, err
			}
			refs := make([]importer.Referencia, len(list))
			for i, m := range list {
				refs[i] = importer.Referencia{ID: m.ID, Nombre: m.Nombre}
			}
			return refs, nil
		},
		func(ctx context.Context, nombre string) (uuid.UUID, error) {
			m := &model.Marca{Nombre: nombre}
			if err := marcaRepo.Crear(ctx, m); err != nil {
				return uuid.Nil, err
			}
			return m.ID, nil
		},
	)

	proveedores := importer.NewResolutorReferencia(
		func(ctx context.Context) ([]importer.Referencia, error) {
			list, err := proveedorRepo.Listar(ctx)
			if err != nil {
				return nil, err
			}
			refs := make([]importer.Referencia, len(list))
			for i, p := range list {
				refs[i] = importer.Referencia{ID: p.ID, Nombre: p.Nombre}
			}
			return refs, nil
		},
		func(ctx context.Context, nombre string) (uuid.UUID, error) {
			p := &model.Proveedor{Nombre: nombre}
			if err := proveedorRepo.Crear(ctx, p); err != nil {
				return uuid.Nil, err
			}
			return p.ID, nil
		},
	)

	return &importacionService{
		recurso: importer.NewRecurso(productoRepo, categorias, marcas, proveedores),
	}
}

func (s *importacionService) ImportarArchivo(ctx context.Context, nombre string, contenido []byte) (*importer.Reporte, error) {
	ds, err := importer.LeerArchivo(nombre, contenido)
	if err != nil {
		return nil, err
	}

	reporte, err := s.recurso.Importar(ctx, *ds)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("archivo", nombre).
		Int("creados", reporte.Creados).
		Int("actualizados", reporte.Actualizados).
		Int("sin_cambios", reporte.SinCambios).
		Int("omitidos", reporte.Omitidos).
		Msg("importacion completada")
	return reporte, nil
}
