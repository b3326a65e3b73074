package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

func childIDs(c *entity.Category) []int64 {
	ids := make([]int64, 0, len(c.Categories))
	for _, child := range c.Categories {
		ids = append(ids, child.InstanceID)
	}
	return ids
}

func TestResolve_SinHijos(t *testing.T) {
	s := newSeeder(t)
	s.category(1, "Hogar", "COLOR", "blanco", "TEMPORADA", "invierno")

	got, err := catalog.NewCategoryResolver(s.repos, 0, logger.NewNop()).Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Hogar", got.Name)
	require.NotNil(t, got.Categories)
	assert.Empty(t, got.Categories)
	assert.Equal(t, []entity.Attribute{
		{InstanceID: 1, OwnerType: entity.OwnerCategory, Key: "COLOR", Value: "blanco"},
		{InstanceID: 1, OwnerType: entity.OwnerCategory, Key: "TEMPORADA", Value: "invierno"},
	}, got.Attributes)
}

func TestResolve_SubarbolesRecursivos(t *testing.T) {
	s := newSeeder(t)
	s.category(1, "Raíz")
	s.category(2, "C1", "K", "v2")
	s.category(3, "C2")
	s.category(4, "Hoja")
	s.link(entity.OwnerCategory, 1, 2)
	s.link(entity.OwnerCategory, 1, 3)
	s.link(entity.OwnerCategory, 3, 4)

	got, err := catalog.NewCategoryResolver(s.repos, 0, logger.NewNop()).Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, childIDs(got))

	c1 := got.Categories[0]
	assert.Len(t, c1.Attributes, 1)
	assert.Empty(t, c1.Categories)

	c2 := got.Categories[1]
	require.Equal(t, []int64{4}, childIDs(c2))
	assert.Empty(t, c2.Categories[0].Categories)
}

// A->B->A debe terminar con un error de integridad.
func TestResolve_CicloRechazado(t *testing.T) {
	s := newSeeder(t)
	s.category(1, "A")
	s.category(2, "B")
	s.link(entity.OwnerCategory, 1, 2)
	s.link(entity.OwnerCategory, 2, 1)

	r := catalog.NewCategoryResolver(s.repos, 0, logger.NewNop())
	_, err := r.Resolve(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrCategoryCycle)
	assert.Equal(t, domain.KindCategoryCycle, domain.KindOf(err))

	row, err := s.repos.Categories.GetByID(context.Background(), 2)
	require.NoError(t, err)
	_, err = r.Hydrate(context.Background(), row)
	assert.ErrorIs(t, err, domain.ErrCategoryCycle)
}

func TestResolve_AutoReferencia(t *testing.T) {
	s := newSeeder(t)
	s.category(1, "A")
	s.link(entity.OwnerCategory, 1, 1)

	_, err := catalog.NewCategoryResolver(s.repos, 0, logger.NewNop()).Resolve(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrCategoryCycle)
}

// Un diamante no es ciclo: D se resuelve en cada camino.
func TestResolve_DiamanteResueltoDosVeces(t *testing.T) {
	s := newSeeder(t)
	for id, name := range map[int64]string{1: "A", 2: "B", 3: "C", 4: "D"} {
		s.category(id, name)
	}
	s.link(entity.OwnerCategory, 1, 2)
	s.link(entity.OwnerCategory, 1, 3)
	s.link(entity.OwnerCategory, 2, 4)
	s.link(entity.OwnerCategory, 3, 4)

	got, err := catalog.NewCategoryResolver(s.repos, 0, logger.NewNop()).Resolve(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got.Categories, 2)
	assert.Equal(t, []int64{4}, childIDs(got.Categories[0]))
	assert.Equal(t, []int64{4}, childIDs(got.Categories[1]))
}

func TestResolve_ProfundidadMaxima(t *testing.T) {
	s := newSeeder(t)
	for id := int64(1); id <= 4; id++ {
		s.category(id, "nivel")
		if id > 1 {
			s.link(entity.OwnerCategory, id-1, id)
		}
	}

	_, err := catalog.NewCategoryResolver(s.repos, 2, logger.NewNop()).Resolve(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrCategoryDepth)

	got, err := catalog.NewCategoryResolver(s.repos, 3, logger.NewNop()).Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Categories[0].Categories[0].Categories[0].InstanceID)
}

func TestResolve_NoExiste(t *testing.T) {
	s := newSeeder(t)
	_, err := catalog.NewCategoryResolver(s.repos, 0, logger.NewNop()).Resolve(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un vínculo hacia una categoría inexistente es un dato corrupto, no un not-found del padre.
func TestResolve_VinculoHuerfano(t *testing.T) {
	s := newSeeder(t)
	s.category(1, "A")
	repos := s.repos
	repos.Links = staticLinks{1: {{InstanceID: 1, CategoryInstanceID: 99}}}

	_, err := catalog.NewCategoryResolver(repos, 0, logger.NewNop()).Resolve(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrCorruptData)
}

func TestResolve_FallaDelAlmacen(t *testing.T) {
	s := newSeeder(t)
	s.category(1, "A")
	repos := s.repos
	repos.Attributes = failingAttributes{}

	_, err := catalog.NewCategoryResolver(repos, 0, logger.NewNop()).Resolve(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestResolveChildLinks(t *testing.T) {
	s := newSeeder(t)
	s.category(1, "A")
	s.category(2, "B")
	s.link(entity.OwnerCategory, 1, 2)
	s.link(entity.OwnerProduct, 1, 2) // otra partición

	links, err := catalog.NewCategoryResolver(s.repos, 0, logger.NewNop()).ResolveChildLinks(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []entity.CategoryLink{{InstanceID: 1, CategoryInstanceID: 2}}, links)
}

func TestReachable(t *testing.T) {
	s := newSeeder(t)
	for id := int64(1); id <= 4; id++ {
		s.category(id, "c")
	}
	s.link(entity.OwnerCategory, 1, 2)
	s.link(entity.OwnerCategory, 2, 3)
	s.link(entity.OwnerCategory, 3, 2) // ciclo existente

	ctx := context.Background()
	ok, err := catalog.Reachable(ctx, s.repos.Links, 1, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = catalog.Reachable(ctx, s.repos.Links, 2, 4)
	require.NoError(t, err)
	assert.False(t, ok, "debe terminar pese al ciclo 2<->3")
}
