package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// DefaultMaxDepth niveles de subcategorías resueltos si no se configura otro límite.
const DefaultMaxDepth = 64

// CategoryResolver materializa el grafo de subcategorías de una categoría en un árbol.
//
// Cada llamada consulta el almacén sin memoización: una categoría alcanzable por dos
// caminos se resuelve dos veces. La ruta actual (ancestros) se lleva en un conjunto;
// volver a un ancestro es un ciclo y se rechaza con domain.ErrCategoryCycle.
type CategoryResolver struct {
	categories repository.CategoryRepository
	attributes repository.AttributeRepository
	links      repository.CategoryLinkRepository
	maxDepth   int
	log        *logger.Logger
}

// NewCategoryResolver construye el resolvedor. maxDepth <= 0 usa DefaultMaxDepth.
func NewCategoryResolver(repos repository.Repositories, maxDepth int, log *logger.Logger) *CategoryResolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &CategoryResolver{
		categories: repos.Categories,
		attributes: repos.Attributes,
		links:      repos.Links,
		maxDepth:   maxDepth,
		log:        log,
	}
}

// Resolve carga la categoría id con sus atributos y su subárbol completo.
func (r *CategoryResolver) Resolve(ctx context.Context, id int64) (*entity.Category, error) {
	return r.resolve(ctx, id, make(map[int64]struct{}), 0)
}

// Hydrate completa una fila de categoría ya cargada (p. ej. un resultado de búsqueda).
func (r *CategoryResolver) Hydrate(ctx context.Context, row *entity.Category) (*entity.Category, error) {
	return r.hydrate(ctx, row, make(map[int64]struct{}), 0)
}

// ResolveChildLinks vínculos directos categoría -> subcategoría, en orden de inserción.
func (r *CategoryResolver) ResolveChildLinks(ctx context.Context, id int64) ([]entity.CategoryLink, error) {
	return r.links.ListByOwner(ctx, entity.OwnerCategory, id)
}

func (r *CategoryResolver) resolve(ctx context.Context, id int64, path map[int64]struct{}, depth int) (*entity.Category, error) {
	if _, onPath := path[id]; onPath {
		r.log.Warn().Int64("category_id", id).Int("depth", depth).Msg("ciclo detectado en el grafo de categorías")
		return nil, fmt.Errorf("categoría %d ya está en la ruta de resolución: %w", id, domain.ErrCategoryCycle)
	}
	if depth > r.maxDepth {
		r.log.Warn().Int64("category_id", id).Int("max_depth", r.maxDepth).Msg("profundidad máxima de categorías excedida")
		return nil, fmt.Errorf("categoría %d a %d niveles: %w", id, depth, domain.ErrCategoryDepth)
	}
	row, err := r.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.hydrate(ctx, row, path, depth)
}

func (r *CategoryResolver) hydrate(ctx context.Context, row *entity.Category, path map[int64]struct{}, depth int) (*entity.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolver categoría %d: %w", row.InstanceID, err)
	}
	path[row.InstanceID] = struct{}{}
	defer delete(path, row.InstanceID)

	attrs, err := r.attributes.ListByOwner(ctx, entity.OwnerCategory, row.InstanceID)
	if err != nil {
		return nil, err
	}
	links, err := r.ResolveChildLinks(ctx, row.InstanceID)
	if err != nil {
		return nil, err
	}

	out := *row
	out.Attributes = attrs
	out.Categories = make([]*entity.Category, 0, len(links))
	for _, l := range links {
		child, err := r.resolve(ctx, l.CategoryInstanceID, path, depth+1)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("categoría %d enlaza a la categoría inexistente %d: %w",
					row.InstanceID, l.CategoryInstanceID, domain.ErrCorruptData)
			}
			return nil, err
		}
		out.Categories = append(out.Categories, child)
	}
	return &out, nil
}

// Reachable indica si target es alcanzable desde from siguiendo vínculos de subcategoría.
// Usa un conjunto de visitados, por lo que termina aunque el grafo ya tenga ciclos.
func Reachable(ctx context.Context, links repository.CategoryLinkRepository, from, target int64) (bool, error) {
	visited := map[int64]struct{}{from: {}}
	queue := []int64{from}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == target {
			return true, nil
		}
		children, err := links.ListByOwner(ctx, entity.OwnerCategory, id)
		if err != nil {
			return false, err
		}
		for _, l := range children {
			if _, seen := visited[l.CategoryInstanceID]; seen {
				continue
			}
			visited[l.CategoryInstanceID] = struct{}{}
			queue = append(queue, l.CategoryInstanceID)
		}
	}
	return false, nil
}
