package product

import (
	"context"

	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id int) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	UpdateFields(ctx context.Context, id int, fields map[string]interface{}) error
	Delete(ctx context.Context, id int) error

	// In-use checks for the category deletion guard.
	ExistsByCategory(ctx context.Context, category string) (bool, error)
	ExistsBySubcategory(ctx context.Context, subcategory string) (bool, error)

	// MaxProductID feeds the sequence allocator.
	MaxProductID(ctx context.Context, floor int) (int, bool, error)
}
