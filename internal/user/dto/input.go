package dto

import "github.com/nextgencodex-com/Vengase-backend/internal/model"

type RegisterInput struct {
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Phone     string `json:"phone" validate:"max=30"`
}

type UpdateProfileInput struct {
	FirstName   *string            `json:"firstName" validate:"omitempty,max=100"`
	LastName    *string            `json:"lastName" validate:"omitempty,max=100"`
	Phone       *string            `json:"phone" validate:"omitempty,max=30"`
	Addresses   *[]string          `json:"addresses"`
	Preferences *model.Preferences `json:"preferences"`
}

type CartSyncInput struct {
	Cart []CartItemInput `json:"cart" validate:"required,dive"`
}

type CartItemInput struct {
	ProductID int     `json:"productId" validate:"required,min=1"`
	Name      string  `json:"name" validate:"max=255"`
	Price     float64 `json:"price" validate:"min=0"`
	Img       string  `json:"img"`
	Size      string  `json:"size" validate:"max=10"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
}

type CartAddInput struct {
	ProductID int     `json:"productId" validate:"required,min=1"`
	Name      string  `json:"name" validate:"max=255"`
	Price     float64 `json:"price" validate:"min=0"`
	Img       string  `json:"img"`
	Size      string  `json:"size" validate:"max=10"`
	Quantity  int     `json:"quantity" validate:"min=1"`
}

type WishlistSyncInput struct {
	Wishlist []int `json:"wishlist" validate:"required"`
}

type WishlistToggleInput struct {
	ProductID int `json:"productId" validate:"required,min=1"`
}
