package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var (
	_ repository.AttributeRepository    = (*AttributeRepo)(nil)
	_ repository.CategoryLinkRepository = (*CategoryLinkRepo)(nil)
)

// AttributeRepo tabla unificada attributes (owner_type + instance_id).
type AttributeRepo struct {
	q Querier
}

// NewAttributeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttributeRepository(q Querier) *AttributeRepo {
	return &AttributeRepo{q: q}
}

func (r *AttributeRepo) ListByOwner(ctx context.Context, owner entity.OwnerType, instanceID int64) ([]entity.Attribute, error) {
	query := `
		SELECT owner_type, instance_id, key, value FROM attributes
		WHERE owner_type = $1 AND instance_id = $2 ORDER BY id`
	return r.query(ctx, "list attributes", query, string(owner), instanceID)
}

func (r *AttributeRepo) ListByKey(ctx context.Context, owner entity.OwnerType, instanceID int64, key string) ([]entity.Attribute, error) {
	query := `
		SELECT owner_type, instance_id, key, value FROM attributes
		WHERE owner_type = $1 AND instance_id = $2 AND key = $3 ORDER BY id`
	return r.query(ctx, "list attributes by key", query, string(owner), instanceID, key)
}

// Append inserta una fila nueva; el ledger es de solo-agregado.
func (r *AttributeRepo) Append(ctx context.Context, attr entity.Attribute) error {
	if !attr.OwnerType.Valid() {
		return fmt.Errorf("insert attribute: tipo %q: %w", attr.OwnerType, domain.ErrInvalidInput)
	}
	_, err := r.q.Exec(ctx,
		`INSERT INTO attributes (owner_type, instance_id, key, value) VALUES ($1, $2, $3, $4)`,
		string(attr.OwnerType), attr.InstanceID, attr.Key, attr.Value,
	)
	return classify("insert attribute", err)
}

func (r *AttributeRepo) query(ctx context.Context, op, query string, args ...any) ([]entity.Attribute, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()
	list := make([]entity.Attribute, 0)
	for rows.Next() {
		var a entity.Attribute
		var owner string
		if err := rows.Scan(&owner, &a.InstanceID, &a.Key, &a.Value); err != nil {
			return nil, classify("scan attribute", err)
		}
		ot, err := entity.ParseOwnerType(owner)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", op, domain.ErrCorruptData, err)
		}
		a.OwnerType = ot
		list = append(list, a)
	}
	return list, classify(op, rows.Err())
}

// CategoryLinkRepo tabla unificada category_links.
type CategoryLinkRepo struct {
	q Querier
}

// NewCategoryLinkRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryLinkRepository(q Querier) *CategoryLinkRepo {
	return &CategoryLinkRepo{q: q}
}

func (r *CategoryLinkRepo) ListByOwner(ctx context.Context, owner entity.OwnerType, instanceID int64) ([]entity.CategoryLink, error) {
	rows, err := r.q.Query(ctx, `
		SELECT instance_id, category_instance_id FROM category_links
		WHERE owner_type = $1 AND instance_id = $2 ORDER BY id`,
		string(owner), instanceID,
	)
	if err != nil {
		return nil, classify("list category links", err)
	}
	defer rows.Close()
	list := make([]entity.CategoryLink, 0)
	for rows.Next() {
		var l entity.CategoryLink
		if err := rows.Scan(&l.InstanceID, &l.CategoryInstanceID); err != nil {
			return nil, classify("scan category link", err)
		}
		list = append(list, l)
	}
	return list, classify("list category links", rows.Err())
}

// categoryGraphLockKey clave del advisory lock que serializa los vínculos entre categorías.
const categoryGraphLockKey int64 = 0x43415447 // "CATG"

// LockGraph toma pg_advisory_xact_lock; se libera con COMMIT/ROLLBACK. Fuera de una tx
// se libera al terminar la sentencia y no protege nada.
func (r *CategoryLinkRepo) LockGraph(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, categoryGraphLockKey)
	return classify("lock category graph", err)
}

// Create inserta el vínculo; una categoría inexistente viola la FK (ErrInvalidInput).
func (r *CategoryLinkRepo) Create(ctx context.Context, owner entity.OwnerType, link entity.CategoryLink) error {
	if !owner.Valid() {
		return fmt.Errorf("insert category link: tipo %q: %w", owner, domain.ErrInvalidInput)
	}
	_, err := r.q.Exec(ctx,
		`INSERT INTO category_links (owner_type, instance_id, category_instance_id) VALUES ($1, $2, $3)`,
		string(owner), link.InstanceID, link.CategoryInstanceID,
	)
	return classify("insert category link", err)
}
