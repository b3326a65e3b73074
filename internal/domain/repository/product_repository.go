package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para las filas de Product (DIP).
// Las filas devueltas no traen Attributes ni Categories; los hidrata el ensamblador.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// SearchByText coincide (sin distinguir mayúsculas) por subcadena en Name o Description.
	SearchByText(ctx context.Context, term string) ([]*entity.Product, error)
	// SearchByAttribute devuelve una fila por cada atributo cuyo Value contiene term.
	SearchByAttribute(ctx context.Context, term string) ([]*entity.Product, error)
}
