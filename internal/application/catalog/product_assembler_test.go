package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// Los productos reciben vínculos planos aunque la categoría tenga subárbol.
func TestAssemble_CategoriasPlanas(t *testing.T) {
	s := newSeeder(t)
	s.category(10, "Ropa")
	s.category(11, "Camisas")
	s.link(entity.OwnerCategory, 10, 11)
	s.product(1, "Camisa", "", "TALLA", "M")
	s.link(entity.OwnerProduct, 1, 10)

	row, err := s.repos.Products.GetByID(context.Background(), 1)
	require.NoError(t, err)
	p, err := catalog.NewProductAssembler(s.repos).Assemble(context.Background(), row)
	require.NoError(t, err)

	assert.Equal(t, []entity.CategoryLink{{InstanceID: 1, CategoryInstanceID: 10}}, p.Categories)
	assert.Equal(t, []entity.Attribute{{InstanceID: 1, OwnerType: entity.OwnerProduct, Key: "TALLA", Value: "M"}}, p.Attributes)
	assert.Nil(t, row.Attributes, "la fila original no se modifica")
}

func TestAssemble_FallaDelAlmacen(t *testing.T) {
	s := newSeeder(t)
	s.product(1, "Camisa", "")
	repos := s.repos
	repos.Attributes = failingAttributes{}

	_, err := catalog.NewProductAssembler(repos).Assemble(context.Background(), &entity.Product{InstanceID: 1})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
