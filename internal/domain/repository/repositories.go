package repository

// Repositories agrupa los puertos atados a una misma conexión o transacción.
type Repositories struct {
	Products   ProductRepository
	Categories CategoryRepository
	Attributes AttributeRepository
	Links      CategoryLinkRepository
	Ledger     InventoryLedgerRepository
}
