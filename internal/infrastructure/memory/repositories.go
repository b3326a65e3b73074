package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/inventory"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository         = (*ProductRepo)(nil)
	_ repository.CategoryRepository        = (*CategoryRepo)(nil)
	_ repository.AttributeRepository       = (*AttributeRepo)(nil)
	_ repository.CategoryLinkRepository    = (*CategoryLinkRepo)(nil)
	_ repository.InventoryLedgerRepository = (*LedgerRepo)(nil)
)

// ProductRepo productos en memoria.
type ProductRepo struct {
	b backend
}

func productRow(p entity.Product) *entity.Product {
	p.Attributes, p.Categories = nil, nil
	return &p
}

// Create agrega la fila del producto. InstanceID repetido -> ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("insert product: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return r.b.write(func(d *dataset) error {
		for _, p := range d.products {
			if p.InstanceID == product.InstanceID {
				return fmt.Errorf("insert product %d: %w", product.InstanceID, domain.ErrDuplicate)
			}
		}
		d.products = append(d.products, *productRow(*product))
		return nil
	})
}

// GetByID obtiene un producto; ErrNotFound si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	r.b.read(func(d *dataset) {
		for _, p := range d.products {
			if p.InstanceID == id {
				out = productRow(p)
				return
			}
		}
	})
	if out == nil {
		return nil, fmt.Errorf("get product %d: %w", id, domain.ErrNotFound)
	}
	return out, nil
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	r.b.read(func(d *dataset) {
		for _, p := range d.products {
			list = append(list, productRow(p))
		}
	})
	return list, nil
}

// SearchByText coincidencia por subcadena en Name o Description.
func (r *ProductRepo) SearchByText(ctx context.Context, term string) ([]*entity.Product, error) {
	var list []*entity.Product
	r.b.read(func(d *dataset) {
		for _, p := range d.products {
			if containsFold(p.Name, term) || containsFold(p.Description, term) {
				list = append(list, productRow(p))
			}
		}
	})
	return list, nil
}

// SearchByAttribute join producto-atributo: una fila por atributo coincidente.
func (r *ProductRepo) SearchByAttribute(ctx context.Context, term string) ([]*entity.Product, error) {
	var list []*entity.Product
	r.b.read(func(d *dataset) {
		for _, a := range d.attributes {
			if a.OwnerType != entity.OwnerProduct || !containsFold(a.Value, term) {
				continue
			}
			for _, p := range d.products {
				if p.InstanceID == a.InstanceID {
					list = append(list, productRow(p))
					break
				}
			}
		}
	})
	return list, nil
}

// CategoryRepo categorías en memoria.
type CategoryRepo struct {
	b backend
}

func categoryRow(c entity.Category) *entity.Category {
	c.Attributes, c.Categories = nil, nil
	return &c
}

// Create agrega la fila de la categoría. InstanceID repetido -> ErrDuplicate.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("insert category: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return r.b.write(func(d *dataset) error {
		for _, c := range d.categories {
			if c.InstanceID == category.InstanceID {
				return fmt.Errorf("insert category %d: %w", category.InstanceID, domain.ErrDuplicate)
			}
		}
		d.categories = append(d.categories, *categoryRow(*category))
		return nil
	})
}

// GetByID obtiene una categoría; ErrNotFound si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var out *entity.Category
	r.b.read(func(d *dataset) {
		for _, c := range d.categories {
			if c.InstanceID == id {
				out = categoryRow(c)
				return
			}
		}
	})
	if out == nil {
		return nil, fmt.Errorf("get category %d: %w", id, domain.ErrNotFound)
	}
	return out, nil
}

func (r *CategoryRepo) SearchByText(ctx context.Context, term string) ([]*entity.Category, error) {
	var list []*entity.Category
	r.b.read(func(d *dataset) {
		for _, c := range d.categories {
			if containsFold(c.Name, term) || containsFold(c.Description, term) {
				list = append(list, categoryRow(c))
			}
		}
	})
	return list, nil
}

func (r *CategoryRepo) SearchByAttribute(ctx context.Context, term string) ([]*entity.Category, error) {
	var list []*entity.Category
	r.b.read(func(d *dataset) {
		for _, a := range d.attributes {
			if a.OwnerType != entity.OwnerCategory || !containsFold(a.Value, term) {
				continue
			}
			for _, c := range d.categories {
				if c.InstanceID == a.InstanceID {
					list = append(list, categoryRow(c))
					break
				}
			}
		}
	})
	return list, nil
}

// AttributeRepo ledger de atributos en memoria.
type AttributeRepo struct {
	b backend
}

func (r *AttributeRepo) ListByOwner(ctx context.Context, owner entity.OwnerType, instanceID int64) ([]entity.Attribute, error) {
	list := make([]entity.Attribute, 0)
	r.b.read(func(d *dataset) {
		for _, a := range d.attributes {
			if a.OwnerType == owner && a.InstanceID == instanceID {
				list = append(list, a)
			}
		}
	})
	return list, nil
}

func (r *AttributeRepo) ListByKey(ctx context.Context, owner entity.OwnerType, instanceID int64, key string) ([]entity.Attribute, error) {
	list := make([]entity.Attribute, 0)
	r.b.read(func(d *dataset) {
		for _, a := range d.attributes {
			if a.OwnerType == owner && a.InstanceID == instanceID && a.Key == key {
				list = append(list, a)
			}
		}
	})
	return list, nil
}

// Append agrega una fila; nunca consolida filas previas con la misma clave.
func (r *AttributeRepo) Append(ctx context.Context, attr entity.Attribute) error {
	if !attr.OwnerType.Valid() {
		return fmt.Errorf("insert attribute: tipo %q: %w", attr.OwnerType, domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("insert attribute: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return r.b.write(func(d *dataset) error {
		d.attributes = append(d.attributes, attr)
		return nil
	})
}

// CategoryLinkRepo vínculos en memoria.
type CategoryLinkRepo struct {
	b backend
}

func (r *CategoryLinkRepo) ListByOwner(ctx context.Context, owner entity.OwnerType, instanceID int64) ([]entity.CategoryLink, error) {
	list := make([]entity.CategoryLink, 0)
	r.b.read(func(d *dataset) {
		for _, l := range d.links {
			if l.owner == owner && l.link.InstanceID == instanceID {
				list = append(list, l.link)
			}
		}
	})
	return list, nil
}

// Create registra el vínculo. La categoría vinculada debe existir (equivalente a la FK en Postgres).
func (r *CategoryLinkRepo) Create(ctx context.Context, owner entity.OwnerType, link entity.CategoryLink) error {
	if !owner.Valid() {
		return fmt.Errorf("insert category link: tipo %q: %w", owner, domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("insert category link: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return r.b.write(func(d *dataset) error {
		for _, c := range d.categories {
			if c.InstanceID == link.CategoryInstanceID {
				d.links = append(d.links, linkRow{owner: owner, link: link})
				return nil
			}
		}
		return fmt.Errorf("insert category link: categoría %d inexistente: %w", link.CategoryInstanceID, domain.ErrInvalidInput)
	})
}

// LockGraph no bloquea nada: Store.Run ya serializa las transacciones con writeMu.
func (r *CategoryLinkRepo) LockGraph(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("lock category graph: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// LedgerRepo calcula el inventario con la misma regla de dominio que el adaptador Postgres.
type LedgerRepo struct {
	attrs *AttributeRepo
}

func (r *LedgerRepo) Balance(ctx context.Context, productID int64) (entity.InventoryBalance, error) {
	rows, err := r.attrs.ListByKey(ctx, entity.OwnerProduct, productID, entity.KeyInventory)
	if err != nil {
		return entity.InventoryBalance{}, err
	}
	return inventory.Balance(productID, rows)
}
