package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"styleverse/internal/models"
	"styleverse/internal/services"
)

// AdminHandler handles the catalog administration endpoints.
type AdminHandler struct {
	catalog  *services.CatalogService
	validate *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(catalog *services.CatalogService) *AdminHandler {
	return &AdminHandler{
		catalog:  catalog,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	admin := router.Group("/admin")
	admin.Get("/products", h.HandleListGrouped)
	admin.Post("/products", h.HandleAdd)
	admin.Put("/products/:product_id", h.HandleUpdate)
	admin.Delete("/products/:product_id", h.HandleDelete)
	admin.Post("/seed-products", h.HandleSeed)
	admin.Post("/clear-products", h.HandleClear)
}

// HandleListGrouped returns every product bucketed by category, with an
// "other" bucket for unexpected category values.
func (h *AdminHandler) HandleListGrouped(c *fiber.Ctx) error {
	grouped, err := h.catalog.AllGrouped()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(grouped)
}

// HandleAdd creates a new catalog product.
func (h *AdminHandler) HandleAdd(c *fiber.Ctx) error {
	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	product, err := h.catalog.Add(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product added",
		"product": product,
	})
}

// HandleUpdate overwrites an existing product, addressed by its external id.
func (h *AdminHandler) HandleUpdate(c *fiber.Ctx) error {
	productID := c.Params("product_id")

	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	product, err := h.catalog.Update(productID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product updated",
		"product": product,
	})
}

// HandleDelete removes a product by its external id.
func (h *AdminHandler) HandleDelete(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	if err := h.catalog.Delete(productID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":    "deleted",
		"product_id": productID,
	})
}

// HandleSeed upserts the static seed feed into the catalog. Safe to re-run.
func (h *AdminHandler) HandleSeed(c *fiber.Ctx) error {
	inserted, updated, err := h.catalog.Seed()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%d products inserted, %d products updated", inserted, updated),
	})
}

// HandleClear deletes every product record.
func (h *AdminHandler) HandleClear(c *fiber.Ctx) error {
	if err := h.catalog.ClearAll(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "All products cleared",
	})
}
