package dto

import "github.com/nextgencodex-com/Vengase-backend/internal/model"

type CreateOrderInput struct {
	UserEmail       string                `json:"userEmail" validate:"required,email"`
	UserName        string                `json:"userName" validate:"required,max=200"`
	Items           []OrderItemInput      `json:"items" validate:"required,min=1,dive"`
	TotalAmount     float64               `json:"totalAmount" validate:"required,min=0"`
	ShippingAddress model.ShippingAddress `json:"shippingAddress" validate:"required"`
	Phone           string                `json:"phone" validate:"required,max=30"`
	PaymentMethod   string                `json:"paymentMethod" validate:"max=50"`
	Notes           string                `json:"notes" validate:"max=1000"`
}

type OrderItemInput struct {
	ProductID int     `json:"productId" validate:"required,min=1"`
	Name      string  `json:"name" validate:"required,max=255"`
	Price     float64 `json:"price" validate:"min=0"`
	Size      string  `json:"size" validate:"max=10"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Img       string  `json:"img"`
}

type StatusUpdateInput struct {
	Status string `json:"status" validate:"required"`
}
