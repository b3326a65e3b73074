package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CategoryUseCase casos de uso para categorías y su grafo de subcategorías.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	resolver *catalog.CategoryResolver
	txRunner catalog.TxRunner
	now      func() time.Time
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repos repository.Repositories, resolver *catalog.CategoryResolver, txRunner catalog.TxRunner) *CategoryUseCase {
	return &CategoryUseCase{
		repo:     repos.Categories,
		resolver: resolver,
		txRunner: txRunner,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Get resuelve la categoría con su subárbol completo.
func (uc *CategoryUseCase) Get(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.resolver.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	out := catalog.ToCategoryResponse(c)
	return &out, nil
}

// Add persiste la categoría, sus atributos y los vínculos a subcategorías existentes en una transacción.
// Una autorreferencia es un ciclo.
func (uc *CategoryUseCase) Add(ctx context.Context, in dto.CreateCategoryRequest) error {
	if in.InstanceID <= 0 || strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	attrs, err := buildAttributes(entity.OwnerCategory, in.InstanceID, in.Attributes)
	if err != nil {
		return err
	}
	for _, child := range in.Categories {
		if child == in.InstanceID {
			return fmt.Errorf("categoría %d como subcategoría de sí misma: %w", child, domain.ErrCategoryCycle)
		}
		if child <= 0 {
			return fmt.Errorf("subcategoría %d: %w", child, domain.ErrInvalidInput)
		}
	}
	createdAt := uc.now()
	if in.CreatedTimeStamp != nil && !in.CreatedTimeStamp.IsZero() {
		createdAt = *in.CreatedTimeStamp
	}
	category := &entity.Category{
		InstanceID:  in.InstanceID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   createdAt,
	}

	return uc.txRunner.Run(ctx, func(repos repository.Repositories) error {
		if err := repos.Categories.Create(ctx, category); err != nil {
			return err
		}
		for _, a := range attrs {
			if err := repos.Attributes.Append(ctx, a); err != nil {
				return fmt.Errorf("%w: atributo %q de la categoría %d: %w", domain.ErrPartialWrite, a.Key, category.InstanceID, err)
			}
		}
		for _, child := range in.Categories {
			link := entity.CategoryLink{InstanceID: category.InstanceID, CategoryInstanceID: child}
			if err := repos.Links.Create(ctx, entity.OwnerCategory, link); err != nil {
				return fmt.Errorf("%w: subcategoría %d de la categoría %d: %w", domain.ErrPartialWrite, child, category.InstanceID, err)
			}
		}
		return nil
	})
}

// Link agrega child como subcategoría de parent. Rechaza el vínculo si parent es alcanzable
// desde child (cerraría un ciclo).
func (uc *CategoryUseCase) Link(ctx context.Context, parentID int64, in dto.LinkCategoryRequest) error {
	childID := in.CategoryInstanceID
	if parentID <= 0 || childID <= 0 {
		return domain.ErrInvalidInput
	}
	if parentID == childID {
		return fmt.Errorf("categoría %d como subcategoría de sí misma: %w", parentID, domain.ErrCategoryCycle)
	}
	return uc.txRunner.Run(ctx, func(repos repository.Repositories) error {
		// Dos vínculos opuestos concurrentes no deben pasar ambos la verificación de ciclo.
		if err := repos.Links.LockGraph(ctx); err != nil {
			return err
		}
		if _, err := repos.Categories.GetByID(ctx, parentID); err != nil {
			return err
		}
		if _, err := repos.Categories.GetByID(ctx, childID); err != nil {
			return err
		}
		cycle, err := catalog.Reachable(ctx, repos.Links, childID, parentID)
		if err != nil {
			return err
		}
		if cycle {
			return fmt.Errorf("vincular %d -> %d: %w", parentID, childID, domain.ErrCategoryCycle)
		}
		return repos.Links.Create(ctx, entity.OwnerCategory, entity.CategoryLink{InstanceID: parentID, CategoryInstanceID: childID})
	})
}
