package dto

import "github.com/shopspring/decimal"

// InventoryRequest body para POST /api/v1/products/AdjustInventory. Amount puede ser negativo.
type InventoryRequest struct {
	InstanceID int64           `json:"instanceId" validate:"gt=0"`
	Amount     decimal.Decimal `json:"amount"`
}

// InventoryCountResponse cantidad actual derivada del ledger.
type InventoryCountResponse struct {
	InstanceID int64           `json:"instanceId"`
	Quantity   decimal.Decimal `json:"quantity"`
	Entries    int             `json:"entries"`
}

// InventoryLedgerResponse deltas INV en orden de inserción.
type InventoryLedgerResponse struct {
	InstanceID int64             `json:"instanceId"`
	Deltas     []decimal.Decimal `json:"deltas"`
}
