package handlers

import (
	"github.com/gofiber/fiber/v2"

	"styleverse/internal/models"
	"styleverse/internal/services"
)

// CatalogHandler handles the public storefront endpoints.
type CatalogHandler struct {
	catalog *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
	}
}

// RegisterRoutes registers the public catalog routes with the Fiber app.
// Each storefront section has its own endpoint, matching what the frontend
// requests.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleWelcome)
	router.Get("/categories", h.HandleCategories)
	router.Get("/dresses", h.listCategory("dresses"))
	router.Get("/bags", h.listCategory("bags"))
	router.Get("/jewellery", h.listCategory("jewellery"))
}

// HandleWelcome greets API callers.
func (h *CatalogHandler) HandleWelcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to StyleVerse",
	})
}

// HandleCategories returns the static storefront category descriptors.
func (h *CatalogHandler) HandleCategories(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Categories())
}

// listCategory returns a handler serving all products of one category.
func (h *CatalogHandler) listCategory(category string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := h.catalog.ListByCategory(category)
		if err != nil {
			return respondError(c, err)
		}
		if products == nil {
			products = []models.Product{}
		}
		return c.JSON(products)
	}
}
