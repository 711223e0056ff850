package services

import (
	"strings"

	"github.com/rs/zerolog"

	"styleverse/internal/models"
	"styleverse/internal/repositories"
	"styleverse/internal/seed"
)

// groupedCategories are the catalog sections the grouped admin listing knows
// about; anything else lands in the "other" bucket.
var groupedCategories = []string{"dresses", "bags", "jewellery"}

// CatalogService handles business logic for the product catalog.
type CatalogService struct {
	repo repositories.ProductRepository
	feed seed.Feed
	log  zerolog.Logger
}

// NewCatalogService creates a new CatalogService. The feed is the read-only
// seed data used by Seed; it is captured at construction and never mutated.
func NewCatalogService(repo repositories.ProductRepository, feed seed.Feed, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		repo: repo,
		feed: feed,
		log:  log,
	}
}

// Categories returns the static storefront category descriptors.
func (s *CatalogService) Categories() []models.Category {
	return s.feed.Categories
}

// ListByCategory returns all products whose category equals the argument, in
// storage order.
func (s *CatalogService) ListByCategory(category string) ([]models.Product, error) {
	return s.repo.GetByCategory(category)
}

// Seed upserts every feed item into the store, keyed on the external product
// id. Existing products are fully overwritten, missing ones inserted, so the
// call is safe to repeat: seeding twice converges to the same catalog.
// Malformed entries (no id, title or price) are skipped with a log note and
// counted as neither inserted nor updated. The whole batch shares one
// transactional scope: a store error mid-feed rolls back every item, leaving
// the catalog as it was before the call.
func (s *CatalogService) Seed() (inserted, updated int, err error) {
	err = s.repo.InTransaction(func(repo repositories.ProductRepository) error {
		for _, section := range s.feed.Sections {
			for _, item := range section.Items {
				if item.ID == "" || item.Title == "" || item.Price == nil {
					s.log.Warn().
						Str("category", section.Category).
						Str("product_id", item.ID).
						Msg("skipping malformed seed product")
					continue
				}
				product := &models.Product{
					ProductID: item.ID,
					Title:     item.Title,
					Img:       item.Img,
					Price:     *item.Price,
					Category:  section.Category,
				}
				wasInsert, upsertErr := repo.Upsert(product)
				if upsertErr != nil {
					return upsertErr
				}
				if wasInsert {
					inserted++
				} else {
					updated++
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return inserted, updated, nil
}

// ClearAll deletes every product record.
func (s *CatalogService) ClearAll() error {
	return s.repo.DeleteAll()
}

// Add creates a new catalog product. The external product id and a price are
// required, and the id must not already exist.
func (s *CatalogService) Add(req models.ProductRequest) (*models.Product, error) {
	if req.ProductID == "" {
		return nil, &models.ValidationError{Message: "product_id is required"}
	}
	if req.Price == nil {
		return nil, &models.ValidationError{Message: "price is required"}
	}
	product := &models.Product{
		ProductID: req.ProductID,
		Title:     req.Title,
		Img:       req.Img,
		Price:     *req.Price,
		Category:  req.Category,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update overwrites title, img, price and category of the product with the
// given external id and returns the updated record.
func (s *CatalogService) Update(productID string, req models.ProductRequest) (*models.Product, error) {
	if req.Price == nil {
		return nil, &models.ValidationError{Message: "price is required"}
	}
	product := &models.Product{
		ProductID: productID,
		Title:     req.Title,
		Img:       req.Img,
		Price:     *req.Price,
		Category:  req.Category,
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return s.repo.GetByProductID(productID)
}

// Delete removes the product with the given external id.
func (s *CatalogService) Delete(productID string) error {
	return s.repo.Delete(productID)
}

// AllGrouped returns every product bucketed by category. The three known
// buckets are always present, even when empty; categories are matched
// case-insensitively and anything unknown goes into "other".
func (s *CatalogService) AllGrouped() (map[string][]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	grouped := map[string][]models.Product{"other": {}}
	for _, c := range groupedCategories {
		grouped[c] = []models.Product{}
	}
	for _, p := range products {
		key := strings.ToLower(p.Category)
		if _, known := grouped[key]; !known {
			key = "other"
		}
		grouped[key] = append(grouped[key], p)
	}
	return grouped, nil
}
