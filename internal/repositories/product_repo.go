package repositories

import "styleverse/internal/models"

// ProductRepository defines the interface for catalog data access. Products
// are addressed by their external product_id; the surrogate ID stays a
// storage detail.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	// GetByProductID returns the product with the given external id, or
	// models.NotFoundError.
	GetByProductID(productID string) (*models.Product, error)
	// GetByCategory returns all products in the given category, in storage
	// order.
	GetByCategory(category string) ([]models.Product, error)
	// Create persists a new product. A duplicate product_id is reported as
	// models.ConflictError.
	Create(product *models.Product) error
	// Update overwrites the stored fields of an existing product, or
	// returns models.NotFoundError.
	Update(product *models.Product) error
	// Delete removes the product with the given external id, or returns
	// models.NotFoundError.
	Delete(productID string) error
	// Upsert inserts the product, or overwrites title, img, price and
	// category of the existing record with the same product_id. The check
	// and write share one transactional scope. Returns true when a new row
	// was inserted.
	Upsert(product *models.Product) (bool, error)
	// DeleteAll removes every product record.
	DeleteAll() error
	// InTransaction runs fn against a repository bound to a single
	// transactional scope. An error from fn rolls back every write fn
	// made; nil commits them together.
	InTransaction(fn func(ProductRepository) error) error
}
