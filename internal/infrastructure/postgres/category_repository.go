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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `c.instance_id, c.name, c.description, c.created_at`

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste la fila de la categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO categories (instance_id, name, description, created_at) VALUES ($1, $2, $3, $4)`,
		category.InstanceID, category.Name, category.Description, category.CreatedAt,
	)
	return classify("insert category", err)
}

// GetByID obtiene una categoría por InstanceID.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories c WHERE c.instance_id = $1`, id).
		Scan(&c.InstanceID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get category %d: %w", id, domain.ErrNotFound)
		}
		return nil, classify("get category", err)
	}
	return &c, nil
}

func (r *CategoryRepo) SearchByText(ctx context.Context, term string) ([]*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + ` FROM categories c
		WHERE UPPER(c.name) LIKE UPPER($1) ESCAPE '\' OR UPPER(c.description) LIKE UPPER($1) ESCAPE '\'
		ORDER BY c.instance_id`
	return r.query(ctx, "search categories", query, likePattern(term))
}

func (r *CategoryRepo) SearchByAttribute(ctx context.Context, term string) ([]*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + ` FROM categories c
		INNER JOIN attributes a ON a.owner_type = 'CATEGORY' AND a.instance_id = c.instance_id
		WHERE UPPER(a.value) LIKE UPPER($1) ESCAPE '\'
		ORDER BY a.id`
	return r.query(ctx, "search category attributes", query, likePattern(term))
}

func (r *CategoryRepo) query(ctx context.Context, op, query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.InstanceID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, classify("scan category", err)
		}
		list = append(list, &c)
	}
	return list, classify(op, rows.Err())
}
