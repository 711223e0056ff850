package services_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"styleverse/internal/models"
	"styleverse/internal/repositories"
	"styleverse/internal/seed"
	"styleverse/internal/services"
)

func price(v float64) *float64 { return &v }

func testFeed() seed.Feed {
	return seed.Feed{
		Categories: []models.Category{
			{ID: "dresses", Title: "Dresses"},
			{ID: "bags", Title: "Bags"},
		},
		Sections: []seed.Section{
			{
				Category: "dresses",
				Items: []seed.Item{
					{ID: "ef1", Title: "Elegant Black Formals", Img: "/assets/images/ef1.jpg", Price: price(200)},
					{ID: "ef2", Title: "Long Beige Blazer", Img: "/assets/images/ef2.jpg", Price: price(300)},
				},
			},
			{
				Category: "bags",
				Items: []seed.Item{
					{ID: "bag1", Title: "Macinet Brown", Img: "/assets/images/bagbrown3.jpg", Price: price(125)},
				},
			},
		},
	}
}

func newCatalogService(feed seed.Feed) (*services.CatalogService, *repositories.MockProductRepository) {
	repo := repositories.NewMockProductRepository()
	return services.NewCatalogService(repo, feed, zerolog.Nop()), repo
}

func TestCatalogService_Categories(t *testing.T) {
	svc, _ := newCatalogService(testFeed())
	categories := svc.Categories()
	assert.Len(t, categories, 2)
	assert.Equal(t, "dresses", categories[0].ID)
}

func TestCatalogService_Seed_Idempotent(t *testing.T) {
	svc, repo := newCatalogService(testFeed())

	inserted, updated, err := svc.Seed()
	assert.NoError(t, err)
	assert.Equal(t, 3, inserted)
	assert.Equal(t, 0, updated)

	firstState, err := repo.GetAll()
	assert.NoError(t, err)

	inserted, updated, err = svc.Seed()
	assert.NoError(t, err)
	assert.Equal(t, 0, inserted)
	assert.Equal(t, 3, updated)

	secondState, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Equal(t, firstState, secondState)
}

func TestCatalogService_Seed_SkipsMalformedItems(t *testing.T) {
	feed := testFeed()
	feed.Sections = append(feed.Sections, seed.Section{
		Category: "bags",
		Items: []seed.Item{
			{ID: "", Title: "No Id", Price: price(10)},
			{ID: "noprice", Title: "No Price"},
			{ID: "notitle", Price: price(10)},
		},
	})
	svc, repo := newCatalogService(feed)

	inserted, updated, err := svc.Seed()
	assert.NoError(t, err)
	assert.Equal(t, 3, inserted)
	assert.Equal(t, 0, updated)

	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCatalogService_Seed_OverwritesChangedFields(t *testing.T) {
	feed := testFeed()
	svc, repo := newCatalogService(feed)

	_, _, err := svc.Seed()
	assert.NoError(t, err)

	// The feed ships bag1 with a new title and price; re-seeding must
	// overwrite the stored record in place.
	feed.Sections[1].Items[0].Price = price(99)
	feed.Sections[1].Items[0].Title = "Macinet Brown v2"
	svc = services.NewCatalogService(repo, feed, zerolog.Nop())

	inserted, updated, err := svc.Seed()
	assert.NoError(t, err)
	assert.Equal(t, 0, inserted)
	assert.Equal(t, 3, updated)

	bag, err := repo.GetByProductID("bag1")
	assert.NoError(t, err)
	assert.Equal(t, 99.0, bag.Price)
	assert.Equal(t, "Macinet Brown v2", bag.Title)
}

// brokenUpsertRepo fails the second upsert of a batch, standing in for a
// store error partway through the feed.
type brokenUpsertRepo struct {
	*repositories.MockProductRepository
	upserts int
}

func (r *brokenUpsertRepo) Upsert(p *models.Product) (bool, error) {
	r.upserts++
	if r.upserts == 2 {
		return false, errors.New("storage failure")
	}
	return r.MockProductRepository.Upsert(p)
}

func (r *brokenUpsertRepo) InTransaction(fn func(repositories.ProductRepository) error) error {
	return r.MockProductRepository.InTransaction(func(repositories.ProductRepository) error {
		return fn(r)
	})
}

func TestCatalogService_Seed_RollsBackOnFailure(t *testing.T) {
	repo := &brokenUpsertRepo{MockProductRepository: repositories.NewMockProductRepository()}
	svc := services.NewCatalogService(repo, testFeed(), zerolog.Nop())

	inserted, updated, err := svc.Seed()
	assert.Error(t, err)
	assert.Zero(t, inserted)
	assert.Zero(t, updated)

	// The batch shares one scope: the item upserted before the failure
	// must not survive it.
	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestCatalogService_ListByCategory(t *testing.T) {
	svc, _ := newCatalogService(seed.Feed{})

	_, err := svc.Add(models.ProductRequest{ProductID: "ef1", Title: "Dress", Price: price(200), Category: "dresses"})
	assert.NoError(t, err)
	_, err = svc.Add(models.ProductRequest{ProductID: "bag1", Title: "Bag", Price: price(125), Category: "bags"})
	assert.NoError(t, err)

	dresses, err := svc.ListByCategory("dresses")
	assert.NoError(t, err)
	assert.Len(t, dresses, 1)
	assert.Equal(t, "ef1", dresses[0].ProductID)
}

func TestCatalogService_Add_Conflict(t *testing.T) {
	svc, _ := newCatalogService(seed.Feed{})

	_, err := svc.Add(models.ProductRequest{ProductID: "bag1", Title: "Bag", Price: price(125), Category: "bags"})
	assert.NoError(t, err)

	_, err = svc.Add(models.ProductRequest{ProductID: "bag1", Title: "Another Bag", Price: price(100), Category: "bags"})
	assert.Error(t, err)
	assert.True(t, models.IsConflict(err))
}

func TestCatalogService_Add_RequiresProductID(t *testing.T) {
	svc, _ := newCatalogService(seed.Feed{})

	_, err := svc.Add(models.ProductRequest{Title: "Bag", Price: price(125), Category: "bags"})
	assert.Error(t, err)
	assert.True(t, models.IsValidation(err))
}

func TestCatalogService_Add_RequiresPrice(t *testing.T) {
	svc, _ := newCatalogService(seed.Feed{})

	_, err := svc.Add(models.ProductRequest{ProductID: "bag1", Title: "Bag", Category: "bags"})
	assert.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Contains(t, err.Error(), "price is required")

	// A zero price is a value, not an absence
	created, err := svc.Add(models.ProductRequest{ProductID: "free1", Title: "Freebie", Price: price(0), Category: "bags"})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, created.Price)
}

func TestCatalogService_Update(t *testing.T) {
	svc, _ := newCatalogService(seed.Feed{})

	created, err := svc.Add(models.ProductRequest{ProductID: "bag1", Title: "Bag", Price: price(125), Category: "bags"})
	assert.NoError(t, err)

	updated, err := svc.Update("bag1", models.ProductRequest{Title: "Renamed", Img: "/assets/images/new.jpg", Price: price(150), Category: "jewellery"})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, 150.0, updated.Price)
	assert.Equal(t, "jewellery", updated.Category)

	_, err = svc.Update("missing", models.ProductRequest{Title: "X", Price: price(1), Category: "bags"})
	assert.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestCatalogService_Delete(t *testing.T) {
	svc, _ := newCatalogService(seed.Feed{})

	_, err := svc.Add(models.ProductRequest{ProductID: "bag1", Title: "Bag", Price: price(125), Category: "bags"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete("bag1"))

	err = svc.Delete("bag1")
	assert.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestCatalogService_AllGrouped(t *testing.T) {
	svc, _ := newCatalogService(seed.Feed{})

	_, err := svc.Add(models.ProductRequest{ProductID: "ef1", Title: "Dress", Price: price(200), Category: "dresses"})
	assert.NoError(t, err)
	_, err = svc.Add(models.ProductRequest{ProductID: "bag1", Title: "Bag", Price: price(125), Category: "Bags"})
	assert.NoError(t, err)
	_, err = svc.Add(models.ProductRequest{ProductID: "hat1", Title: "Hat", Price: price(50), Category: "hats"})
	assert.NoError(t, err)

	grouped, err := svc.AllGrouped()
	assert.NoError(t, err)
	assert.Len(t, grouped, 4)
	assert.Len(t, grouped["dresses"], 1)
	// Category match is case-insensitive
	assert.Len(t, grouped["bags"], 1)
	assert.Len(t, grouped["jewellery"], 0)
	assert.Len(t, grouped["other"], 1)
	assert.Equal(t, "hat1", grouped["other"][0].ProductID)
}

func TestCatalogService_ClearAll(t *testing.T) {
	svc, repo := newCatalogService(testFeed())

	_, _, err := svc.Seed()
	assert.NoError(t, err)

	assert.NoError(t, svc.ClearAll())

	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, all)
}
