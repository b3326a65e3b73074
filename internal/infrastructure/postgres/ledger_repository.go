package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.InventoryLedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo agrega el ledger INV en la base de datos (requiere el codec pgxdecimal del pool).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Balance suma todos los deltas INV del producto. Un valor no numérico falla el CAST (22P02 -> ErrCorruptData).
func (r *LedgerRepo) Balance(ctx context.Context, productID int64) (entity.InventoryBalance, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(CAST(a.value AS NUMERIC(18, 4))), 0)
		FROM attributes a
		WHERE a.owner_type = 'PRODUCT' AND a.instance_id = $1 AND a.key = $2`
	var entries int
	var qty decimal.Decimal
	if err := r.q.QueryRow(ctx, query, productID, entity.KeyInventory).Scan(&entries, &qty); err != nil {
		return entity.InventoryBalance{}, classify("inventory balance", err)
	}
	if entries == 0 {
		return entity.InventoryBalance{}, fmt.Errorf("inventario del producto %d: %w", productID, domain.ErrNotFound)
	}
	return entity.InventoryBalance{ProductID: productID, Quantity: qty, Entries: entries}, nil
}
