package model

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

func ValidOrderStatuses() []string {
	return []string{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
	}
}

func ValidPaymentStatuses() []string {
	return []string{
		PaymentStatusPending, PaymentStatusCompleted,
		PaymentStatusFailed, PaymentStatusRefunded,
	}
}

type Order struct {
	OrderID         string          `firestore:"orderId" json:"orderId"`
	UserID          string          `firestore:"userId" json:"userId"` // empty for guest checkout
	UserEmail       string          `firestore:"userEmail" json:"userEmail"`
	UserName        string          `firestore:"userName" json:"userName"`
	Items           []OrderItem     `firestore:"items" json:"items"`
	TotalAmount     float64         `firestore:"totalAmount" json:"totalAmount"`
	ShippingAddress ShippingAddress `firestore:"shippingAddress" json:"shippingAddress"`
	Phone           string          `firestore:"phone" json:"phone"`
	PaymentMethod   string          `firestore:"paymentMethod" json:"paymentMethod"`
	PaymentStatus   string          `firestore:"paymentStatus" json:"paymentStatus"`
	OrderStatus     string          `firestore:"orderStatus" json:"orderStatus"`
	Notes           string          `firestore:"notes" json:"notes"`
	CreatedAt       time.Time       `firestore:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time       `firestore:"updatedAt" json:"updatedAt"`
}

type OrderItem struct {
	ProductID int     `firestore:"productId" json:"productId"`
	Name      string  `firestore:"name" json:"name"`
	Price     float64 `firestore:"price" json:"price"`
	Size      string  `firestore:"size,omitempty" json:"size,omitempty"`
	Quantity  int     `firestore:"quantity" json:"quantity"`
	Img       string  `firestore:"img,omitempty" json:"img,omitempty"`
}

type ShippingAddress struct {
	Street  string `firestore:"street" json:"street"`
	City    string `firestore:"city" json:"city"`
	State   string `firestore:"state,omitempty" json:"state,omitempty"`
	ZipCode string `firestore:"zipCode,omitempty" json:"zipCode,omitempty"`
	Country string `firestore:"country" json:"country"`
}

type OrderStats struct {
	TotalOrders     int     `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingOrders   int     `json:"pendingOrders"`
	CompletedOrders int     `json:"completedOrders"`
	CancelledOrders int     `json:"cancelledOrders"`
}
