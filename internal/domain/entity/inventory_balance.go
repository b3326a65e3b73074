package entity

import "github.com/shopspring/decimal"

// InventoryBalance cantidad actual de un producto derivada de su ledger INV.
type InventoryBalance struct {
	ProductID int64
	Quantity  decimal.Decimal // suma de todos los deltas
	Entries   int             // filas INV agregadas
}
