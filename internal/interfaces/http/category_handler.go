package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría con atributos y subcategorías existentes
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Categoría"
// @Success      201   {object}  dto.WriteResponse
// @Failure      400   {object}  dto.WriteResponse
// @Failure      422   {object}  dto.WriteResponse
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := bindBody(c, &in); err != nil {
		return writeFailed(c, "add category", err)
	}
	if err := h.uc.Add(c.Context(), in); err != nil {
		return writeFailed(c, "add category", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.WriteResponse{Success: true})
}

// GetByID godoc
// @Summary      Obtener categoría con su subárbol resuelto
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true  "InstanceID"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err == nil {
		var out *dto.CategoryResponse
		if out, err = h.uc.Get(c.Context(), id); err == nil {
			return c.JSON(out)
		}
	}
	return readFailed(c, "get category", err, func(e *dto.ErrorResponse) any { return e })
}

// LinkChild godoc
// @Summary      Vincular una subcategoría (rechaza ciclos)
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "InstanceID del padre"
// @Param        body  body  dto.LinkCategoryRequest  true  "Subcategoría"
// @Success      201   {object}  dto.WriteResponse
// @Failure      404   {object}  dto.WriteResponse
// @Failure      422   {object}  dto.WriteResponse
// @Router       /api/v1/categories/{id}/children [post]
func (h *CategoryHandler) LinkChild(c *fiber.Ctx) error {
	parentID, err := paramID(c, "id")
	if err != nil {
		return writeFailed(c, "link category", err)
	}
	var in dto.LinkCategoryRequest
	if err := bindBody(c, &in); err != nil {
		return writeFailed(c, "link category", err)
	}
	if err := h.uc.Link(c.Context(), parentID, in); err != nil {
		return writeFailed(c, "link category", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.WriteResponse{Success: true})
}
