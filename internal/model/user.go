package model

import "time"

type User struct {
	UID         string      `firestore:"uid" json:"uid"`
	Email       string      `firestore:"email" json:"email"`
	FirstName   string      `firestore:"firstName" json:"firstName"`
	LastName    string      `firestore:"lastName" json:"lastName"`
	DisplayName string      `firestore:"displayName" json:"displayName"`
	Phone       string      `firestore:"phone" json:"phone"`
	Cart        []CartItem  `firestore:"cart" json:"cart"`
	Wishlist    []int       `firestore:"wishlist" json:"wishlist"`
	Addresses   []string    `firestore:"addresses" json:"addresses"`
	Preferences Preferences `firestore:"preferences" json:"preferences"`
	IsActive    bool        `firestore:"isActive" json:"isActive"`
	CreatedAt   time.Time   `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time   `firestore:"updatedAt" json:"updatedAt"`
	DeletedAt   *time.Time  `firestore:"deletedAt,omitempty" json:"deletedAt,omitempty"`
}

// CartItem lines are unique by (ProductID, Size); repeated adds merge into
// the existing line.
type CartItem struct {
	ProductID int       `firestore:"productId" json:"productId"`
	Name      string    `firestore:"name" json:"name"`
	Price     float64   `firestore:"price" json:"price"`
	Img       string    `firestore:"img,omitempty" json:"img,omitempty"`
	Size      string    `firestore:"size" json:"size"`
	Quantity  int       `firestore:"quantity" json:"quantity"`
	AddedAt   time.Time `firestore:"addedAt" json:"addedAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type Preferences struct {
	Notifications bool `firestore:"notifications" json:"notifications"`
	Newsletter    bool `firestore:"newsletter" json:"newsletter"`
}

// UserSummary is the list-all projection; cart and wishlist contents stay
// private to the owner.
type UserSummary struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DisplayName string    `json:"displayName"`
	Phone       string    `json:"phone"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type UserStats struct {
	TotalUsers  int `json:"totalUsers"`
	ActiveUsers int `json:"activeUsers"`
}
