package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"styleverse/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database in insertion order.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByProductID retrieves a single product by its external id.
func (r *GORMProductRepository) GetByProductID(productID string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Message: fmt.Sprintf("product with id %s not found", productID)}
		}
		return nil, fmt.Errorf("failed to get product by id %s: %w", productID, err)
	}
	return &product, nil
}

// GetByCategory retrieves all products whose category equals the argument.
func (r *GORMProductRepository) GetByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products, "category = ?", category).Error; err != nil {
		return nil, fmt.Errorf("failed to get products in category %s: %w", category, err)
	}
	return products, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &models.ConflictError{Message: fmt.Sprintf("product with id %s already exists", product.ProductID)}
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update overwrites the stored fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(&models.Product{}).
		Where("product_id = ?", product.ProductID).
		Updates(map[string]interface{}{
			"title":    product.Title,
			"img":      product.Img,
			"price":    product.Price,
			"category": product.Category,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ProductID, res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Message: fmt.Sprintf("product with id %s not found", product.ProductID)}
	}
	return nil
}

// Delete deletes a product by its external id.
func (r *GORMProductRepository) Delete(productID string) error {
	res := r.db.Delete(&models.Product{}, "product_id = ?", productID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Message: fmt.Sprintf("product with id %s not found", productID)}
	}
	return nil
}

// Upsert inserts or overwrites the product keyed on product_id. The lookup
// and the write run in one transaction so repeated seeding converges without
// racing against itself.
func (r *GORMProductRepository) Upsert(product *models.Product) (bool, error) {
	inserted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		err := tx.First(&existing, "product_id = ?", product.ProductID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			inserted = true
			return tx.Create(product).Error
		}
		if err != nil {
			return err
		}
		product.ID = existing.ID
		return tx.Model(&existing).Updates(map[string]interface{}{
			"title":    product.Title,
			"img":      product.Img,
			"price":    product.Price,
			"category": product.Category,
		}).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to upsert product %s: %w", product.ProductID, err)
	}
	return inserted, nil
}

// InTransaction runs fn with a repository bound to one database
// transaction. When the repository is already transaction-bound, GORM nests
// via a savepoint.
func (r *GORMProductRepository) InTransaction(fn func(ProductRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMProductRepository(tx))
	})
}

// DeleteAll removes every product record.
func (r *GORMProductRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}
	return nil
}
