package dto

// OrderFilters: the first non-empty of OrderStatus, PaymentStatus, UserID
// becomes the primary (store-level) filter; the rest are residual.
type OrderFilters struct {
	OrderStatus   string
	PaymentStatus string
	UserID        string
	Limit         int
}
