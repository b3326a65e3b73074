package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// MaxFractionDigits decimales admitidos por delta (el almacén los guarda como NUMERIC(18,4)).
const MaxFractionDigits = 4

// MaxIntegerDigits dígitos enteros que caben en NUMERIC(18,4).
const MaxIntegerDigits = 14

var deltaLimit = decimal.New(1, MaxIntegerDigits)

// Balance reduce el ledger de un producto: Cantidad = Σ deltas INV (servicio de dominio).
// Las filas con otra clave se ignoran. Sin filas INV -> ErrNotFound; valor no numérico -> ErrCorruptData.
func Balance(productID int64, ledger []entity.Attribute) (entity.InventoryBalance, error) {
	out := entity.InventoryBalance{ProductID: productID, Quantity: decimal.Zero}
	for _, a := range ledger {
		if a.Key != entity.KeyInventory {
			continue
		}
		d, err := ParseDelta(a.Value)
		if err != nil {
			return entity.InventoryBalance{}, err
		}
		out.Quantity = out.Quantity.Add(d)
		out.Entries++
	}
	if out.Entries == 0 {
		return entity.InventoryBalance{}, fmt.Errorf("inventario del producto %d: %w", productID, domain.ErrNotFound)
	}
	return out, nil
}

// ParseDelta interpreta el valor almacenado de una fila INV.
func ParseDelta(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("delta de inventario %q: %w", value, domain.ErrCorruptData)
	}
	return d, nil
}

// FormatDelta valida un ajuste entrante y lo convierte en el valor de la fila INV.
func FormatDelta(amount decimal.Decimal) (string, error) {
	if amount.Exponent() < -MaxFractionDigits && !amount.Equal(amount.Round(MaxFractionDigits)) {
		return "", fmt.Errorf("ajuste con más de %d decimales: %w", MaxFractionDigits, domain.ErrInvalidInput)
	}
	if amount.Abs().GreaterThanOrEqual(deltaLimit) {
		return "", fmt.Errorf("ajuste con más de %d dígitos enteros: %w", MaxIntegerDigits, domain.ErrInvalidInput)
	}
	return amount.String(), nil
}
