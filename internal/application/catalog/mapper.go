package catalog

import (
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ToProductResponse convierte un producto hidratado en su DTO (listas nunca nulas).
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	out := dto.ProductResponse{
		InstanceID:       p.InstanceID,
		Name:             p.Name,
		Description:      p.Description,
		ProductImageURIs: p.ProductImageURIs,
		ValidSKUs:        p.ValidSKUs,
		CreatedTimestamp: p.CreatedAt,
		Categories:       make([]dto.CategoryLinkDTO, 0, len(p.Categories)),
		Attributes:       toAttributeDTOs(p.Attributes),
	}
	for _, l := range p.Categories {
		out.Categories = append(out.Categories, dto.CategoryLinkDTO{
			InstanceID:         l.InstanceID,
			CategoryInstanceID: l.CategoryInstanceID,
		})
	}
	return out
}

// ToCategoryResponse convierte recursivamente un árbol de categorías.
func ToCategoryResponse(c *entity.Category) dto.CategoryResponse {
	out := dto.CategoryResponse{
		InstanceID:       c.InstanceID,
		Name:             c.Name,
		Description:      c.Description,
		CreatedTimeStamp: c.CreatedAt,
		Categories:       make([]dto.CategoryResponse, 0, len(c.Categories)),
		Attributes:       toAttributeDTOs(c.Attributes),
	}
	for _, child := range c.Categories {
		out.Categories = append(out.Categories, ToCategoryResponse(child))
	}
	return out
}

func toAttributeDTOs(attrs []entity.Attribute) []dto.AttributeDTO {
	out := make([]dto.AttributeDTO, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, dto.AttributeDTO{InstanceID: a.InstanceID, Key: a.Key, Value: a.Value})
	}
	return out
}
