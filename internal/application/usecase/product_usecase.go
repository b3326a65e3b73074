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
	"github.com/jhoicas/Catalogo-api/internal/domain/inventory"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos. El inventario se maneja vía el ledger INV.
type ProductUseCase struct {
	repo      repository.ProductRepository
	assembler *catalog.ProductAssembler
	txRunner  catalog.TxRunner
	now       func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repos repository.Repositories, assembler *catalog.ProductAssembler, txRunner catalog.TxRunner) *ProductUseCase {
	return &ProductUseCase{
		repo:      repos.Products,
		assembler: assembler,
		txRunner:  txRunner,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ListAll lista todos los productos hidratados.
func (uc *ProductUseCase) ListAll(ctx context.Context) (*dto.ProductListResponse, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list, err := uc.assembler.AssembleAll(ctx, rows)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, catalog.ToProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// GetByID obtiene un producto hidratado; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	row, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := uc.assembler.Assemble(ctx, row)
	if err != nil {
		return nil, err
	}
	out := catalog.ToProductResponse(p)
	return &out, nil
}

// Add persiste el producto, sus atributos y sus vínculos de categoría en una sola transacción.
func (uc *ProductUseCase) Add(ctx context.Context, in dto.CreateProductRequest) error {
	product, err := uc.buildProduct(in)
	if err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(repos repository.Repositories) error {
		if err := repos.Products.Create(ctx, product); err != nil {
			return err
		}
		for _, a := range product.Attributes {
			if err := repos.Attributes.Append(ctx, a); err != nil {
				return fmt.Errorf("%w: atributo %q del producto %d: %w", domain.ErrPartialWrite, a.Key, product.InstanceID, err)
			}
		}
		for _, l := range product.Categories {
			if err := repos.Links.Create(ctx, entity.OwnerProduct, l); err != nil {
				return fmt.Errorf("%w: categoría %d del producto %d: %w", domain.ErrPartialWrite, l.CategoryInstanceID, product.InstanceID, err)
			}
		}
		return nil
	})
}

func (uc *ProductUseCase) buildProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.InstanceID <= 0 || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	createdAt := uc.now()
	if in.CreatedTimestamp != nil && !in.CreatedTimestamp.IsZero() {
		createdAt = *in.CreatedTimestamp
	}
	attrs, err := buildAttributes(entity.OwnerProduct, in.InstanceID, in.Attributes)
	if err != nil {
		return nil, err
	}
	links := make([]entity.CategoryLink, 0, len(in.Categories))
	for _, l := range in.Categories {
		if l.CategoryInstanceID <= 0 {
			return nil, fmt.Errorf("categoría %d: %w", l.CategoryInstanceID, domain.ErrInvalidInput)
		}
		links = append(links, entity.CategoryLink{InstanceID: in.InstanceID, CategoryInstanceID: l.CategoryInstanceID})
	}
	return &entity.Product{
		InstanceID:       in.InstanceID,
		Name:             in.Name,
		Description:      in.Description,
		ProductImageURIs: in.ProductImageURIs,
		ValidSKUs:        in.ValidSKUs,
		CreatedAt:        createdAt,
		Attributes:       attrs,
		Categories:       links,
	}, nil
}

// buildAttributes valida las claves; una clave reservada INV debe traer un delta numérico válido.
func buildAttributes(owner entity.OwnerType, instanceID int64, in []dto.AttributeDTO) ([]entity.Attribute, error) {
	out := make([]entity.Attribute, 0, len(in))
	for _, a := range in {
		if strings.TrimSpace(a.Key) == "" {
			return nil, fmt.Errorf("atributo sin clave: %w", domain.ErrInvalidInput)
		}
		value := a.Value
		if entity.IsReservedKey(a.Key) {
			if owner != entity.OwnerProduct {
				return nil, fmt.Errorf("clave reservada %s solo aplica a productos: %w", entity.KeyInventory, domain.ErrInvalidInput)
			}
			d, err := inventory.ParseDelta(a.Value)
			if err != nil {
				return nil, fmt.Errorf("valor %q de %s: %w", a.Value, entity.KeyInventory, domain.ErrInvalidInput)
			}
			if value, err = inventory.FormatDelta(d); err != nil {
				return nil, err
			}
		}
		out = append(out, entity.Attribute{InstanceID: instanceID, OwnerType: owner, Key: a.Key, Value: value})
	}
	return out, nil
}
