package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/inventory"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// UseCase ajustes y consultas del ledger de inventario.
// Cada ajuste agrega una fila INV; la cantidad es la suma de todas las filas.
type UseCase struct {
	attributes repository.AttributeRepository
	ledger     repository.InventoryLedgerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repos repository.Repositories) *UseCase {
	return &UseCase{attributes: repos.Attributes, ledger: repos.Ledger}
}

// Adjust agrega un delta con signo al ledger del producto. No valida que el producto exista.
func (uc *UseCase) Adjust(ctx context.Context, in dto.InventoryRequest) error {
	if in.InstanceID <= 0 {
		return fmt.Errorf("producto %d: %w", in.InstanceID, domain.ErrInvalidInput)
	}
	value, err := inventory.FormatDelta(in.Amount)
	if err != nil {
		return err
	}
	return uc.attributes.Append(ctx, entity.Attribute{
		InstanceID: in.InstanceID,
		OwnerType:  entity.OwnerProduct,
		Key:        entity.KeyInventory,
		Value:      value,
	})
}

// Count cantidad actual del producto. Sin filas INV -> domain.ErrNotFound.
func (uc *UseCase) Count(ctx context.Context, productID int64) (*dto.InventoryCountResponse, error) {
	b, err := uc.ledger.Balance(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &dto.InventoryCountResponse{InstanceID: b.ProductID, Quantity: b.Quantity, Entries: b.Entries}, nil
}

// Ledger deltas INV del producto en orden de inserción (vacío si no hay ajustes).
func (uc *UseCase) Ledger(ctx context.Context, productID int64) (*dto.InventoryLedgerResponse, error) {
	rows, err := uc.attributes.ListByKey(ctx, entity.OwnerProduct, productID, entity.KeyInventory)
	if err != nil {
		return nil, err
	}
	out := &dto.InventoryLedgerResponse{InstanceID: productID, Deltas: make([]decimal.Decimal, 0, len(rows))}
	for _, r := range rows {
		d, err := inventory.ParseDelta(r.Value)
		if err != nil {
			return nil, err
		}
		out.Deltas = append(out.Deltas, d)
	}
	return out, nil
}
