// Package seed holds the static catalog feed: the storefront category
// descriptors and the product definitions used to populate or refresh the
// catalog. The feed is read-only at runtime and injected into the catalog
// service, which upserts it keyed on the external product id.
package seed

import "styleverse/internal/models"

// Item is one product definition in the feed. Price is a pointer so a
// malformed entry with no price can be told apart from a free product; items
// missing an id, title or price are skipped during seeding.
type Item struct {
	ID    string
	Title string
	Img   string
	Price *float64
}

// Section groups feed items under the category they are seeded into.
type Section struct {
	Category string
	Items    []Item
}

// Feed is the complete catalog feed.
type Feed struct {
	Categories []models.Category
	Sections   []Section
}

func price(v float64) *float64 { return &v }

// Default returns the built-in storefront feed.
func Default() Feed {
	return Feed{
		Categories: []models.Category{
			{
				ID:       "dresses",
				Title:    "Dresses",
				Subtitle: "From casual to evening wear",
				Img:      "/assets/images/dresses.jpg",
				Link:     "/executivewear",
				CTA:      "Explore Collection",
			},
			{
				ID:       "jewellery",
				Title:    "Jewellery",
				Subtitle: "Rose Gold and Silver",
				Img:      "/assets/images/jewellery.jpg",
				Link:     "/jewellery",
				CTA:      "Explore Now",
			},
			{
				ID:       "bags",
				Title:    "Bags",
				Subtitle: "Handbags & accessories",
				Img:      "/assets/images/bags.jpg",
				Link:     "/designerbags",
				CTA:      "Shop Now",
			},
		},
		Sections: []Section{
			{
				Category: "dresses",
				Items: []Item{
					{ID: "ef1", Title: "Elegant Black Formals", Img: "/assets/images/ef1.jpg", Price: price(200)},
					{ID: "ef2", Title: "Long Beige Blazer", Img: "/assets/images/ef2.jpg", Price: price(300)},
					{ID: "ef3", Title: "Cream Blazer", Img: "/assets/images/ef3.jpg", Price: price(300)},
					{ID: "ef4", Title: "Pink Suite", Img: "/assets/images/ef4.jpg", Price: price(300)},
					{ID: "ef5", Title: "Beige Suite", Img: "/assets/images/ef5.jpg", Price: price(200)},
					{ID: "ef6", Title: "Grey Suite", Img: "/assets/images/ef6.jpg", Price: price(200)},
					{ID: "epink1", Title: "Pink Shirt", Img: "/assets/images/epink1.jpg", Price: price(200)},
					{ID: "ecream", Title: "White Shirt", Img: "/assets/images/ecream.jpg", Price: price(100)},
					{ID: "sp1", Title: "Black Vest", Img: "/assets/images/sp1.jpg", Price: price(300)},
				},
			},
			{
				Category: "bags",
				Items: []Item{
					{ID: "bag1", Title: "Macinet Brown", Img: "/assets/images/bagbrown3.jpg", Price: price(125)},
					{ID: "bag2", Title: "Dior Lavender", Img: "/assets/images/bagblue11.jpg", Price: price(125)},
					{ID: "bag3", Title: "Black YSL", Img: "/assets/images/bagblack6.jpg", Price: price(150)},
					{ID: "bag4", Title: "Black YSL", Img: "/assets/images/baggrey10.jpg", Price: price(150)},
					{ID: "bag5", Title: "Channel Red", Img: "/assets/images/bagbrown7.jpg", Price: price(150)},
					{ID: "bag6", Title: "Coach White", Img: "/assets/images/bagwhite4.jpg", Price: price(150)},
					{ID: "bag7", Title: "Beige Brown", Img: "/assets/images/bagbeige1.jpg", Price: price(150)},
					{ID: "bag8", Title: "YSL Red", Img: "/assets/images/bagred9.jpg", Price: price(150)},
					{ID: "bag9", Title: "Dior White", Img: "/assets/images/bagwhite5.jpg", Price: price(150)},
				},
			},
			{
				Category: "jewellery",
				Items: []Item{
					{ID: "jew1", Title: "Golden Double Chain", Img: "/assets/images/jew1.jpg", Price: price(100)},
					{ID: "jew2", Title: "Rosegold Chain", Img: "/assets/images/jew2.jpg", Price: price(100)},
					{ID: "jew3", Title: "Golden Triple Chain", Img: "/assets/images/jew3.jpg", Price: price(100)},
					{ID: "jew4", Title: "MultiColor Chain", Img: "/assets/images/jew4.jpg", Price: price(100)},
				},
			},
		},
	}
}
