package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// AttributeRepository accede al ledger clave/valor de solo-agregado.
// owner enruta la partición (PRODUCT / CATEGORY): un tipo equivocado devuelve cero filas, no error.
type AttributeRepository interface {
	ListByOwner(ctx context.Context, owner entity.OwnerType, instanceID int64) ([]entity.Attribute, error)
	ListByKey(ctx context.Context, owner entity.OwnerType, instanceID int64, key string) ([]entity.Attribute, error)
	Append(ctx context.Context, attr entity.Attribute) error
}

// CategoryLinkRepository vínculos dueño -> categoría (producto->categoría y categoría->subcategoría).
type CategoryLinkRepository interface {
	ListByOwner(ctx context.Context, owner entity.OwnerType, instanceID int64) ([]entity.CategoryLink, error)
	Create(ctx context.Context, owner entity.OwnerType, link entity.CategoryLink) error
	// LockGraph serializa las escrituras sobre el grafo de subcategorías hasta el fin de la
	// transacción en curso. Debe llamarse dentro de TxRunner.Run antes de verificar ciclos.
	LockGraph(ctx context.Context) error
}

// InventoryLedgerRepository calcula la cantidad actual de un producto desde sus filas INV.
type InventoryLedgerRepository interface {
	Balance(ctx context.Context, productID int64) (entity.InventoryBalance, error)
}
