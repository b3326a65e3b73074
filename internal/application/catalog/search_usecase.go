package catalog

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// SearchUseCase agrega las cuatro búsquedas independientes del catálogo:
// productos por nombre/descripción, productos por atributo, categorías por
// nombre/descripción y categorías por atributo. Los resultados se concatenan
// sin deduplicar: un producto que coincide por nombre y por atributo aparece dos veces.
type SearchUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	assembler  *ProductAssembler
	resolver   *CategoryResolver
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(repos repository.Repositories, assembler *ProductAssembler, resolver *CategoryResolver) *SearchUseCase {
	return &SearchUseCase{
		products:   repos.Products,
		categories: repos.Categories,
		assembler:  assembler,
		resolver:   resolver,
	}
}

// NormalizeTerm recorta y normaliza (NFC) el término; vacío -> ErrInvalidInput.
func NormalizeTerm(term string) (string, error) {
	t := norm.NFC.String(strings.TrimSpace(term))
	if t == "" {
		return "", fmt.Errorf("término de búsqueda vacío: %w", domain.ErrInvalidInput)
	}
	return t, nil
}

// Search ejecuta las cuatro fuentes en paralelo e hidrata cada coincidencia.
// La primera falla cancela las demás y se devuelve tal cual (con su tipo de dominio).
func (uc *SearchUseCase) Search(ctx context.Context, term string) (*dto.SearchResponse, error) {
	term, err := NormalizeTerm(term)
	if err != nil {
		return nil, err
	}

	var (
		productsByText, productsByAttr     []*entity.Product
		categoriesByText, categoriesByAttr []*entity.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := uc.products.SearchByText(gctx, term)
		if err != nil {
			return err
		}
		productsByText, err = uc.assembler.AssembleAll(gctx, rows)
		return err
	})
	g.Go(func() error {
		rows, err := uc.products.SearchByAttribute(gctx, term)
		if err != nil {
			return err
		}
		productsByAttr, err = uc.assembler.AssembleAll(gctx, rows)
		return err
	})
	g.Go(func() error {
		rows, err := uc.categories.SearchByText(gctx, term)
		if err != nil {
			return err
		}
		categoriesByText, err = uc.hydrateAll(gctx, rows)
		return err
	})
	g.Go(func() error {
		rows, err := uc.categories.SearchByAttribute(gctx, term)
		if err != nil {
			return err
		}
		categoriesByAttr, err = uc.hydrateAll(gctx, rows)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.SearchResponse{
		Products:   make([]dto.ProductResponse, 0, len(productsByText)+len(productsByAttr)),
		Categories: make([]dto.CategoryResponse, 0, len(categoriesByText)+len(categoriesByAttr)),
	}
	for _, p := range append(productsByText, productsByAttr...) {
		out.Products = append(out.Products, ToProductResponse(p))
	}
	for _, c := range append(categoriesByText, categoriesByAttr...) {
		out.Categories = append(out.Categories, ToCategoryResponse(c))
	}
	return out, nil
}

func (uc *SearchUseCase) hydrateAll(ctx context.Context, rows []*entity.Category) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		c, err := uc.resolver.Hydrate(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
