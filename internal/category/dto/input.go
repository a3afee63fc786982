package dto

type CreateCategoryInput struct {
	Name          string             `json:"name" validate:"required,lowercase,max=100"`
	Label         string             `json:"label" validate:"required,max=100"`
	Subcategories []SubcategoryInput `json:"subcategories" validate:"omitempty,dive"`
}

type UpdateCategoryInput struct {
	Name  *string `json:"name" validate:"omitempty,lowercase,max=100"`
	Label *string `json:"label" validate:"omitempty,max=100"`
}

type SubcategoryInput struct {
	Value string `json:"value" validate:"required,max=100"`
	Label string `json:"label" validate:"required,max=100"`
}
