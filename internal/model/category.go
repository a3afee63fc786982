package model

import "time"

type Category struct {
	ID            string        `firestore:"id" json:"id"`
	Name          string        `firestore:"name" json:"name"`
	Label         string        `firestore:"label" json:"label"`
	Subcategories []Subcategory `firestore:"subcategories" json:"subcategories"`
	CreatedAt     time.Time     `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `firestore:"updatedAt" json:"updatedAt"`
}

type Subcategory struct {
	ID    string `firestore:"id" json:"id"`
	Value string `firestore:"value" json:"value"`
	Label string `firestore:"label" json:"label"`
}
