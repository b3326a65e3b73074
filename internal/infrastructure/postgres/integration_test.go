//go:build integration

package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/inventory"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/migrations"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

type testEnv struct {
	repos repository.Repositories
	tx    *postgres.TxRunner
}

// newTestEnv levanta un PostgreSQL efímero con el esquema del catálogo aplicado.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("catalogo_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "levantar contenedor PostgreSQL")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, migrations.Catalog)
	require.NoError(t, err, "aplicar esquema")

	return &testEnv{repos: postgres.NewRepositories(pool), tx: postgres.NewTxRunner(pool)}
}

func (e *testEnv) productUC() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(e.repos, catalog.NewProductAssembler(e.repos), e.tx)
}

func (e *testEnv) categoryUC() *usecase.CategoryUseCase {
	return usecase.NewCategoryUseCase(e.repos, catalog.NewCategoryResolver(e.repos, 0, logger.NewNop()), e.tx)
}

func TestIntegration_CatalogoCompleto(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	categories := env.categoryUC()
	products := env.productUC()

	require.NoError(t, categories.Add(ctx, dto.CreateCategoryRequest{InstanceID: 2, Name: "Lámparas"}))
	require.NoError(t, categories.Add(ctx, dto.CreateCategoryRequest{
		InstanceID: 1, Name: "Hogar", Categories: []int64{2},
		Attributes: []dto.AttributeDTO{{Key: "PALETA", Value: "Blue tones"}},
	}))
	require.NoError(t, products.Add(ctx, dto.CreateProductRequest{
		InstanceID: 10, Name: "Blue Widget",
		Attributes: []dto.AttributeDTO{{Key: "COLOR", Value: "azul"}, {Key: "TONO", Value: "navy BLUE"}},
		Categories: []dto.CategoryLinkDTO{{CategoryInstanceID: 1}, {CategoryInstanceID: 2}},
	}))
	require.NoError(t, products.Add(ctx, dto.CreateProductRequest{
		InstanceID: 11, Name: "Mesa", Description: "roble",
		Attributes: []dto.AttributeDTO{{Key: "COLOR", Value: "dark blue"}},
	}))

	list, err := products.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Len(t, list.Items[0].Attributes, 2)
	assert.Equal(t, []dto.CategoryLinkDTO{
		{InstanceID: 10, CategoryInstanceID: 1},
		{InstanceID: 10, CategoryInstanceID: 2},
	}, list.Items[0].Categories)

	resolver := catalog.NewCategoryResolver(env.repos, 0, logger.NewNop())
	search := catalog.NewSearchUseCase(env.repos, catalog.NewProductAssembler(env.repos), resolver)
	out, err := search.Search(ctx, "blue")
	require.NoError(t, err)
	got := make([]int64, 0, len(out.Products))
	for _, p := range out.Products {
		got = append(got, p.InstanceID)
	}
	assert.Equal(t, []int64{10, 10, 11}, got, "nombre + una fila por atributo coincidente")
	require.Len(t, out.Categories, 1)
	assert.Equal(t, int64(2), out.Categories[0].Categories[0].InstanceID)

	// LIKE escapa comodines
	out, err = search.Search(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, out.Products)
}

func TestIntegration_LedgerSumaEnSQL(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	uc := inventory.NewUseCase(env.repos)

	for _, amount := range []string{"5", "3", "-2.25"} {
		require.NoError(t, uc.Adjust(ctx, dto.InventoryRequest{InstanceID: 7, Amount: decimal.RequireFromString(amount)}))
	}
	got, err := uc.Count(ctx, 7)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("5.75").Equal(got.Quantity), got.Quantity.String())
	assert.Equal(t, 3, got.Entries)

	_, err = uc.Count(ctx, 8)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// El mayor delta admitido cabe en NUMERIC(18,4) y la suma de varios no desborda.
	top := decimal.RequireFromString("99999999999999.9999")
	require.NoError(t, uc.Adjust(ctx, dto.InventoryRequest{InstanceID: 10, Amount: top}))
	require.NoError(t, uc.Adjust(ctx, dto.InventoryRequest{InstanceID: 10, Amount: top}))
	assert.ErrorIs(t, uc.Adjust(ctx, dto.InventoryRequest{
		InstanceID: 10, Amount: decimal.RequireFromString("100000000000000"),
	}), domain.ErrInvalidInput)
	got, err = uc.Count(ctx, 10)
	require.NoError(t, err)
	assert.True(t, top.Add(top).Equal(got.Quantity), got.Quantity.String())

	require.NoError(t, env.repos.Attributes.Append(ctx, entity.Attribute{
		InstanceID: 9, OwnerType: entity.OwnerProduct, Key: entity.KeyInventory, Value: "n/a",
	}))
	_, err = uc.Count(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrCorruptData)
}

func TestIntegration_RollbackYCiclos(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	categories := env.categoryUC()
	products := env.productUC()

	err := products.Add(ctx, dto.CreateProductRequest{
		InstanceID: 1, Name: "Huérfano",
		Attributes: []dto.AttributeDTO{{Key: "K", Value: "v"}},
		Categories: []dto.CategoryLinkDTO{{CategoryInstanceID: 404}},
	})
	require.ErrorIs(t, err, domain.ErrPartialWrite)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "FK violada")
	_, err = products.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	attrs, err := env.repos.Attributes.ListByOwner(ctx, entity.OwnerProduct, 1)
	require.NoError(t, err)
	assert.Empty(t, attrs)

	require.NoError(t, categories.Add(ctx, dto.CreateCategoryRequest{InstanceID: 1, Name: "A"}))
	require.NoError(t, categories.Add(ctx, dto.CreateCategoryRequest{InstanceID: 2, Name: "B", Categories: []int64{1}}))
	assert.ErrorIs(t, categories.Link(ctx, 1, dto.LinkCategoryRequest{CategoryInstanceID: 2}), domain.ErrCategoryCycle)

	// Un ciclo insertado por fuera de la API se detecta al resolver.
	require.NoError(t, env.repos.Links.Create(ctx, entity.OwnerCategory, entity.CategoryLink{InstanceID: 1, CategoryInstanceID: 2}))
	_, err = categories.Get(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrCategoryCycle)
}

// Vínculos opuestos en paralelo y un ciclo de cuatro aristas sobre pares disjuntos:
// el advisory lock obliga a que el último en entrar vea las aristas ya confirmadas.
func TestIntegration_VinculosConcurrentes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	categories := env.categoryUC()
	for _, id := range []int64{1, 2, 3, 4, 5, 6} {
		require.NoError(t, categories.Add(ctx, dto.CreateCategoryRequest{InstanceID: id, Name: "c"}))
	}

	linkAll := func(edges [][2]int64) []error {
		errs := make([]error, len(edges))
		var wg sync.WaitGroup
		for i, e := range edges {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = categories.Link(ctx, e[0], dto.LinkCategoryRequest{CategoryInstanceID: e[1]})
			}()
		}
		wg.Wait()
		return errs
	}
	countCycles := func(errs []error) int {
		n := 0
		for _, err := range errs {
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrCategoryCycle)
				n++
			}
		}
		return n
	}

	assert.Equal(t, 1, countCycles(linkAll([][2]int64{{5, 6}, {6, 5}})))
	assert.Equal(t, 1, countCycles(linkAll([][2]int64{{1, 2}, {2, 3}, {3, 4}, {4, 1}})))
	for _, id := range []int64{1, 2, 3, 4, 5, 6} {
		_, err := categories.Get(ctx, id)
		assert.NoError(t, err, "categoría %d", id)
	}
}

func TestIntegration_AlmacenCerrado(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.repos.Products.List(ctx)
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: "postgres://postgres:x@127.0.0.1:1/nada?sslmode=disable&connect_timeout=1"})
	assert.Nil(t, pool)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
