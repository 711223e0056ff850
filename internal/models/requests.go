package models

import "regexp"

// PhonePattern is the accepted phone number format: an optional leading +
// followed by 7 to 15 digits.
var PhonePattern = regexp.MustCompile(`^\+?\d{7,15}$`)

// RegisterRequest is the request body for POST /register. Field lengths mirror
// the storage schema; the custom "phone" tag enforces the accepted number
// pattern before the service layer sees the request.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=1,max=30"`
	UserEmail       string `json:"user_email" validate:"required,email,max=30"`
	Password        string `json:"password" validate:"required,min=6,max=20"`
	ConfirmPassword string `json:"confirm_password" validate:"required,min=6,max=20"`
	Address         string `json:"address" validate:"required,min=5,max=200"`
	PhoneNumber     string `json:"phone_number" validate:"required,min=10,max=15,phone"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// ProductRequest is the request body for creating or updating a catalog
// product. On update the product_id comes from the URL and the body value is
// ignored. Price is a pointer so a missing field can be told apart from a
// legitimate zero price; negative values stay accepted.
type ProductRequest struct {
	ProductID string   `json:"product_id" validate:"omitempty,max=50"`
	Title     string   `json:"title" validate:"required,max=100"`
	Img       string   `json:"img" validate:"omitempty,max=300"`
	Price     *float64 `json:"price" validate:"required"`
	Category  string   `json:"category" validate:"required,max=50"`
}
