package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para las filas de Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	SearchByText(ctx context.Context, term string) ([]*entity.Category, error)
	SearchByAttribute(ctx context.Context, term string) ([]*entity.Category, error)
}
