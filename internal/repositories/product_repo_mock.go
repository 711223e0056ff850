package repositories

import (
	"fmt"
	"sync"

	"styleverse/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// Records are kept in a slice so listings come back in insertion order, the
// same guarantee the GORM implementation gives.
type MockProductRepository struct {
	products []models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		nextID: 1,
	}
}

// GetAll returns all products in insertion order.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByProductID returns a product by its external id.
func (r *MockProductRepository) GetByProductID(productID string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ProductID == productID {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, &models.NotFoundError{Message: fmt.Sprintf("product with id %s not found", productID)}
}

// GetByCategory returns all products in the given category.
func (r *MockProductRepository) GetByCategory(category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// Create adds a new product, rejecting duplicate external ids.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ProductID == product.ProductID {
			return &models.ConflictError{Message: fmt.Sprintf("product with id %s already exists", product.ProductID)}
		}
	}
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, *product)
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ProductID == product.ProductID {
			product.ID = r.products[i].ID
			r.products[i].Title = product.Title
			r.products[i].Img = product.Img
			r.products[i].Price = product.Price
			r.products[i].Category = product.Category
			return nil
		}
	}
	return &models.NotFoundError{Message: fmt.Sprintf("product with id %s not found", product.ProductID)}
}

// Delete removes a product by its external id.
func (r *MockProductRepository) Delete(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ProductID == productID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return &models.NotFoundError{Message: fmt.Sprintf("product with id %s not found", productID)}
}

// Upsert inserts or overwrites keyed on product_id.
func (r *MockProductRepository) Upsert(product *models.Product) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ProductID == product.ProductID {
			product.ID = r.products[i].ID
			r.products[i].Title = product.Title
			r.products[i].Img = product.Img
			r.products[i].Price = product.Price
			r.products[i].Category = product.Category
			return false, nil
		}
	}
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, *product)
	return true, nil
}

// InTransaction runs fn against the repository, restoring the previous
// state when fn returns an error so callers see the same
// all-or-nothing behavior the database-backed repository gives.
func (r *MockProductRepository) InTransaction(fn func(ProductRepository) error) error {
	r.mu.Lock()
	snapshot := make([]models.Product, len(r.products))
	copy(snapshot, r.products)
	snapshotNextID := r.nextID
	r.mu.Unlock()

	if err := fn(r); err != nil {
		r.mu.Lock()
		r.products = snapshot
		r.nextID = snapshotNextID
		r.mu.Unlock()
		return err
	}
	return nil
}

// DeleteAll removes every product.
func (r *MockProductRepository) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = nil
	return nil
}
