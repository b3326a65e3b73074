package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/inventory"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SearchUC    *catalog.SearchUseCase
	InventoryUC *inventory.UseCase
	Logger      *logger.Logger
	ServiceName string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.NewNop()
	}
	app.Use(RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api/v1")

	// Products: las rutas con nombre se registran antes que /:id
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.SearchUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	products.Get("/GetAllProducts", productHandler.GetAll)
	products.Post("/AddNewProduct", productHandler.Add)
	products.Get("/SearchForProducts/:descriptor", productHandler.Search)
	products.Post("/AdjustInventory", inventoryHandler.Adjust)
	products.Get("/GetInventoryCountForItem/:InstanceId", inventoryHandler.Count)
	products.Get("/GetInventoryLedgerForItem/:InstanceId", inventoryHandler.Ledger)
	products.Get("/:id", productHandler.GetByID)

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/:id/children", categoryHandler.LinkChild)
}
