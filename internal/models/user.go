package models

// User represents a registered account of the storefront.
//
// The password is stored and compared in plaintext, matching the behavior
// this service was migrated from. It never leaves the process: the field is
// excluded from JSON serialization.
type User struct {
	ID          uint   `json:"user_id" gorm:"primaryKey;autoIncrement"`
	Username    string `json:"username" gorm:"uniqueIndex;type:varchar(30);not null"`
	UserEmail   string `json:"user_email" gorm:"uniqueIndex;type:varchar(30);not null"`
	Password    string `json:"-" gorm:"type:varchar(20);not null"`
	Address     string `json:"address" gorm:"type:varchar(200);not null"`
	PhoneNumber string `json:"phone_number" gorm:"type:varchar(20);not null"`
}
