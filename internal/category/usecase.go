package category

import (
	"context"

	"github.com/nextgencodex-com/Vengase-backend/internal/category/dto"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
)

type UseCase interface {
	// LegacyCategories is the storefront's original flat list with live
	// in-stock product counts.
	LegacyCategories(ctx context.Context) ([]dto.CategoryCount, error)
	Stats(ctx context.Context) (map[string]*dto.CategoryStats, error)

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	AddSubcategory(ctx context.Context, categoryID string, input *dto.SubcategoryInput) (*model.Category, error)
	UpdateSubcategory(ctx context.Context, categoryID, subID string, input *dto.SubcategoryInput) (*model.Category, error)
	DeleteSubcategory(ctx context.Context, categoryID, subID string) (*model.Category, error)

	// InitializeDefaults seeds the default categories, skipping names that
	// already exist, and reports what it added.
	InitializeDefaults(ctx context.Context) (*dto.InitializeResult, error)
}
