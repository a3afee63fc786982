package dto

type CreateProductInput struct {
	Name                string         `json:"name" validate:"required,min=1,max=255"`
	Price               float64        `json:"price" validate:"min=0"`
	Description         string         `json:"description" validate:"required,min=3,max=500"`
	DetailedDescription string         `json:"detailedDescription" validate:"max=2000"`
	Category            string         `json:"category" validate:"required,max=100"`
	Subcategory         string         `json:"subcategory" validate:"max=100"`
	Fabric              string         `json:"fabric" validate:"max=100"`
	Features            []string       `json:"features" validate:"dive,max=100"`
	Colors              []string       `json:"colors" validate:"dive,max=50"`
	Stock               map[string]int `json:"stock" validate:"dive,min=0"`
	Img                 string         `json:"img"`
	Rating              float64        `json:"rating" validate:"min=0,max=5"`
	Reviews             int            `json:"reviews" validate:"min=0"`
	Status              string         `json:"status" validate:"omitempty,oneof=instock outofstock discontinued"`
}

// UpdateProductInput carries only the provided fields; nil pointers are
// left untouched by the merge update. The id is immutable and never part
// of the payload.
type UpdateProductInput struct {
	Name                *string        `json:"name" validate:"omitempty,min=1,max=255"`
	Price               *float64       `json:"price" validate:"omitempty,min=0"`
	Description         *string        `json:"description" validate:"omitempty,min=3,max=500"`
	DetailedDescription *string        `json:"detailedDescription" validate:"omitempty,max=2000"`
	Category            *string        `json:"category" validate:"omitempty,max=100"`
	Subcategory         *string        `json:"subcategory" validate:"omitempty,max=100"`
	Fabric              *string        `json:"fabric" validate:"omitempty,max=100"`
	Features            []string       `json:"features" validate:"omitempty,dive,max=100"`
	Colors              []string       `json:"colors" validate:"omitempty,dive,max=50"`
	Stock               map[string]int `json:"stock" validate:"omitempty,dive,min=0"`
	Img                 *string        `json:"img"`
	Rating              *float64       `json:"rating" validate:"omitempty,min=0,max=5"`
	Reviews             *int           `json:"reviews" validate:"omitempty,min=0"`
	Status              *string        `json:"status" validate:"omitempty,oneof=instock outofstock discontinued"`
}

type StockUpdateInput struct {
	Stock map[string]int `json:"stock" validate:"required,dive,min=0"`
}
