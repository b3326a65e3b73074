package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.instance_id, p.name, p.description, p.product_image_uris, p.valid_skus, p.created_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste la fila del producto (sin atributos ni vínculos).
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (instance_id, name, description, product_image_uris, valid_skus, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		product.InstanceID, product.Name, product.Description,
		product.ProductImageURIs, product.ValidSKUs, product.CreatedAt,
	)
	return classify("insert product", err)
}

// GetByID obtiene un producto por InstanceID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.instance_id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.InstanceID, &p.Name, &p.Description, &p.ProductImageURIs, &p.ValidSKUs, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get product %d: %w", id, domain.ErrNotFound)
		}
		return nil, classify("get product", err)
	}
	return &p, nil
}

// List lista todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p ORDER BY p.instance_id`
	return r.query(ctx, "list products", query)
}

// SearchByText productos cuyo nombre o descripción contienen term.
func (r *ProductRepo) SearchByText(ctx context.Context, term string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products p
		WHERE UPPER(p.name) LIKE UPPER($1) ESCAPE '\' OR UPPER(p.description) LIKE UPPER($1) ESCAPE '\'
		ORDER BY p.instance_id`
	return r.query(ctx, "search products", query, likePattern(term))
}

// SearchByAttribute una fila por cada atributo de producto cuyo valor contiene term.
func (r *ProductRepo) SearchByAttribute(ctx context.Context, term string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products p
		INNER JOIN attributes a ON a.owner_type = 'PRODUCT' AND a.instance_id = p.instance_id
		WHERE UPPER(a.value) LIKE UPPER($1) ESCAPE '\'
		ORDER BY a.id`
	return r.query(ctx, "search product attributes", query, likePattern(term))
}

func (r *ProductRepo) query(ctx context.Context, op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.InstanceID, &p.Name, &p.Description, &p.ProductImageURIs, &p.ValidSKUs, &p.CreatedAt); err != nil {
			return nil, classify("scan product", err)
		}
		list = append(list, &p)
	}
	return list, classify(op, rows.Err())
}
