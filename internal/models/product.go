package models

// Product represents one catalog item. ProductID is the stable external key
// used by the seed feed and the admin API; ID is the store's surrogate key.
type Product struct {
	ID        uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID string  `json:"product_id" gorm:"uniqueIndex;type:varchar(50);not null"`
	Title     string  `json:"title" gorm:"type:varchar(100);not null"`
	Img       string  `json:"img" gorm:"type:varchar(300)"`
	Price     float64 `json:"price" gorm:"not null"`
	Category  string  `json:"category" gorm:"type:varchar(50);not null"`
}

// Category describes a storefront section. Categories are static
// configuration served to the frontend, not store-backed records.
type Category struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Img      string `json:"img"`
	Link     string `json:"link"`
	CTA      string `json:"cta"`
}
