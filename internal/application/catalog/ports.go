package catalog

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn falla no queda ninguna escritura parcial (Rollback).
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
}
