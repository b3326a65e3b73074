package catalog

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// ProductAssembler hidrata una fila de producto con sus atributos y sus vínculos de categoría.
// Las categorías quedan como lista plana de ids: no se resuelve el subárbol de cada una.
type ProductAssembler struct {
	attributes repository.AttributeRepository
	links      repository.CategoryLinkRepository
}

// NewProductAssembler construye el ensamblador.
func NewProductAssembler(repos repository.Repositories) *ProductAssembler {
	return &ProductAssembler{attributes: repos.Attributes, links: repos.Links}
}

// Assemble devuelve una copia de row con Attributes y Categories cargados.
func (a *ProductAssembler) Assemble(ctx context.Context, row *entity.Product) (*entity.Product, error) {
	attrs, err := a.attributes.ListByOwner(ctx, entity.OwnerProduct, row.InstanceID)
	if err != nil {
		return nil, err
	}
	links, err := a.links.ListByOwner(ctx, entity.OwnerProduct, row.InstanceID)
	if err != nil {
		return nil, err
	}
	out := *row
	out.Attributes = attrs
	out.Categories = links
	return &out, nil
}

// AssembleAll ensambla cada fila conservando orden y multiplicidad.
func (a *ProductAssembler) AssembleAll(ctx context.Context, rows []*entity.Product) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		p, err := a.Assemble(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
