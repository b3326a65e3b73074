package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP de productos y la búsqueda del catálogo.
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	search *catalog.SearchUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, search *catalog.SearchUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, search: search}
}

// GetAll godoc
// @Summary      Listar todos los productos (sin paginación)
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Failure      503  {object}  dto.ProductListResponse
// @Router       /api/v1/products/GetAllProducts [get]
func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.Context())
	if err != nil {
		return readFailed(c, "list products", err, func(e *dto.ErrorResponse) any {
			return dto.ProductListResponse{Items: []dto.ProductResponse{}, Error: e}
		})
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar producto con atributos y categorías (transaccional)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Producto"
// @Success      201   {object}  dto.WriteResponse
// @Failure      400   {object}  dto.WriteResponse
// @Failure      409   {object}  dto.WriteResponse
// @Router       /api/v1/products/AddNewProduct [post]
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := bindBody(c, &in); err != nil {
		return writeFailed(c, "add product", err)
	}
	if err := h.uc.Add(c.Context(), in); err != nil {
		return writeFailed(c, "add product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.WriteResponse{Success: true})
}

// GetByID godoc
// @Summary      Obtener producto por InstanceId
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "InstanceId"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err == nil {
		var out *dto.ProductResponse
		if out, err = h.uc.GetByID(c.Context(), id); err == nil {
			return c.JSON(out)
		}
	}
	return readFailed(c, "get product", err, func(e *dto.ErrorResponse) any { return e })
}

// Search godoc
// @Summary      Buscar productos y categorías por subcadena
// @Description  Concatena cuatro fuentes sin deduplicar: productos por nombre/descripción,
//
//	productos por atributo, categorías por nombre/descripción y categorías por atributo.
//
// @Tags         products
// @Produce      json
// @Param        descriptor  path  string  true  "Término"
// @Success      200  {object}  dto.SearchResponse
// @Failure      400  {object}  dto.SearchResponse
// @Failure      503  {object}  dto.SearchResponse
// @Router       /api/v1/products/SearchForProducts/{descriptor} [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	term, err := url.PathUnescape(c.Params("descriptor"))
	if err != nil {
		err = domain.ErrInvalidInput
	} else {
		var out *dto.SearchResponse
		if out, err = h.search.Search(c.Context(), term); err == nil {
			return c.JSON(out)
		}
	}
	return readFailed(c, "search", err, func(e *dto.ErrorResponse) any {
		return dto.SearchResponse{Products: []dto.ProductResponse{}, Categories: []dto.CategoryResponse{}, Error: e}
	})
}
