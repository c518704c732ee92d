package importer

import (
	"context"
	"strings"

	"ferreteria/internal/normalizar"

	"github.com/google/uuid"
)

// Referencia is the projection of a Categoria, Marca or Proveedor the
// resolver needs: identity plus the name it matches on.
type Referencia struct {
	ID     uuid.UUID
	Nombre string
}

// ResolutorReferencia performs fuzzy match-or-create foreign-key resolution:
// a deduplicating upsert keyed by the accent/case-normalized name, layered
// over the storage-level exact-uniqueness rule.
//
// It guarantees at-most-one creation per normalized key only under serial
// row processing; concurrent imports can race the scan-then-create sequence
// and produce duplicates. If storage already holds two entities with the same
// normalized key, the first in repository iteration order wins.
type ResolutorReferencia struct {
	listar func(ctx context.Context) ([]Referencia, error)
	crear  func(ctx context.Context, nombre string) (uuid.UUID, error)
}

func NewResolutorReferencia(
	listar func(ctx context.Context) ([]Referencia, error),
	crear func(ctx context.Context, nombre string) (uuid.UUID, error),
) *ResolutorReferencia {
	return &ResolutorReferencia{listar: listar, crear: crear}
}

// Resolver maps a raw cell value to an entity id. Null-like values resolve to
// no reference (nil, no error). A miss creates a new entity carrying the raw
// trimmed name — not the normalized key — and persists it as a side effect.
func (r *ResolutorReferencia) Resolver(ctx context.Context, valor string) (*uuid.UUID, error) {
	if normalizar.EsNulo(valor) {
		return nil, nil
	}
	crudo := strings.TrimSpace(valor)
	buscada := normalizar.Clave(crudo)

	existentes, err := r.listar(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range existentes {
		if normalizar.Clave(e.Nombre) == buscada {
			id := e.ID
			return &id, nil
		}
	}

	id, err := r.crear(ctx, crudo)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
