package model

import "time"

const (
	// MinDynamicProductID is where allocated IDs start; 1-22 belong to the
	// static seed catalog and must never be reissued.
	MinDynamicProductID = 1000

	StatusInStock      = "instock"
	StatusOutOfStock   = "outofstock"
	StatusDiscontinued = "discontinued"
)

type Product struct {
	ID                  int            `firestore:"id" json:"id"`
	Name                string         `firestore:"name" json:"name"`
	Price               float64        `firestore:"price" json:"price"`
	Description         string         `firestore:"description" json:"description"`
	DetailedDescription string         `firestore:"detailedDescription,omitempty" json:"detailedDescription,omitempty"`
	Category            string         `firestore:"category" json:"category"`
	Subcategory         string         `firestore:"subcategory,omitempty" json:"subcategory,omitempty"`
	Fabric              string         `firestore:"fabric,omitempty" json:"fabric,omitempty"`
	Features            []string       `firestore:"features,omitempty" json:"features,omitempty"`
	Colors              []string       `firestore:"colors,omitempty" json:"colors,omitempty"`
	Stock               map[string]int `firestore:"stock" json:"stock"`
	Img                 string         `firestore:"img,omitempty" json:"img,omitempty"`
	Rating              float64        `firestore:"rating" json:"rating"`
	Reviews             int            `firestore:"reviews" json:"reviews"`
	Status              string         `firestore:"status" json:"status"`
	CreatedAt           time.Time      `firestore:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time      `firestore:"updatedAt" json:"updatedAt"`
}
