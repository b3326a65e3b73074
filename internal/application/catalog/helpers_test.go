package catalog_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
)

// errStore simula una conexión caída.
var errStore = fmt.Errorf("%w: dial tcp 127.0.0.1:5432: connect: connection refused", domain.ErrStoreUnavailable)

type seeder struct {
	t     *testing.T
	repos repository.Repositories
}

func newSeeder(t *testing.T) *seeder {
	return &seeder{t: t, repos: memory.NewStore().Repositories()}
}

func (s *seeder) category(id int64, name string, attrs ...string) {
	s.t.Helper()
	ctx := context.Background()
	require.NoError(s.t, s.repos.Categories.Create(ctx, &entity.Category{InstanceID: id, Name: name}))
	for i := 0; i+1 < len(attrs); i += 2 {
		require.NoError(s.t, s.repos.Attributes.Append(ctx, entity.Attribute{
			InstanceID: id, OwnerType: entity.OwnerCategory, Key: attrs[i], Value: attrs[i+1],
		}))
	}
}

func (s *seeder) product(id int64, name, description string, attrs ...string) {
	s.t.Helper()
	ctx := context.Background()
	require.NoError(s.t, s.repos.Products.Create(ctx, &entity.Product{InstanceID: id, Name: name, Description: description}))
	for i := 0; i+1 < len(attrs); i += 2 {
		require.NoError(s.t, s.repos.Attributes.Append(ctx, entity.Attribute{
			InstanceID: id, OwnerType: entity.OwnerProduct, Key: attrs[i], Value: attrs[i+1],
		}))
	}
}

func (s *seeder) link(owner entity.OwnerType, from, to int64) {
	s.t.Helper()
	require.NoError(s.t, s.repos.Links.Create(context.Background(), owner,
		entity.CategoryLink{InstanceID: from, CategoryInstanceID: to}))
}

// staticLinks devuelve siempre los mismos vínculos para un dueño.
type staticLinks map[int64][]entity.CategoryLink

func (s staticLinks) ListByOwner(_ context.Context, _ entity.OwnerType, id int64) ([]entity.CategoryLink, error) {
	return s[id], nil
}

func (s staticLinks) Create(context.Context, entity.OwnerType, entity.CategoryLink) error {
	return nil
}

func (s staticLinks) LockGraph(context.Context) error { return nil }

type failingAttributes struct{}

func (failingAttributes) ListByOwner(context.Context, entity.OwnerType, int64) ([]entity.Attribute, error) {
	return nil, errStore
}

func (failingAttributes) ListByKey(context.Context, entity.OwnerType, int64, string) ([]entity.Attribute, error) {
	return nil, errStore
}

func (failingAttributes) Append(context.Context, entity.Attribute) error { return errStore }

type failingProducts struct {
	repository.ProductRepository
}

func (failingProducts) SearchByAttribute(context.Context, string) ([]*entity.Product, error) {
	return nil, errStore
}
