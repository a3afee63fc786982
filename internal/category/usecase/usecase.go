package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/category"
	"github.com/nextgencodex-com/Vengase-backend/internal/category/dto"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/product"
	productdto "github.com/nextgencodex-com/Vengase-backend/internal/product/dto"
)

// legacyCategoryNames is the storefront's original flat category list.
var legacyCategoryNames = []string{
	"t-shirts-shirts",
	"pants-shorts",
	"slides-socks",
	"jackets-hoodies",
	"jewelry",
	"accessories",
	"bags",
	"bottles",
	"caps",
	"unisex",
}

type categoryUseCase struct {
	repo     category.Repository
	products product.Repository
	logger   *zap.Logger
}

func NewCategoryUseCase(repo category.Repository, products product.Repository, log *zap.Logger) category.UseCase {
	return &categoryUseCase{
		repo:     repo,
		products: products,
		logger:   log,
	}
}

func (uc *categoryUseCase) LegacyCategories(ctx context.Context) ([]dto.CategoryCount, error) {
	counts := make([]dto.CategoryCount, 0, len(legacyCategoryNames))
	for _, name := range legacyCategoryNames {
		products, err := uc.products.FindAll(ctx, &productdto.ProductFilters{
			Category: name,
			Status:   model.StatusInStock,
		})
		if err != nil {
			return nil, err
		}
		counts = append(counts, dto.CategoryCount{
			Name:         name,
			DisplayName:  strings.ToUpper(name[:1]) + name[1:],
			ProductCount: len(products),
		})
	}
	return counts, nil
}

func (uc *categoryUseCase) Stats(ctx context.Context) (map[string]*dto.CategoryStats, error) {
	products, err := uc.products.FindAll(ctx, &productdto.ProductFilters{})
	if err != nil {
		return nil, err
	}

	stats := map[string]*dto.CategoryStats{}
	for _, p := range products {
		s, ok := stats[p.Category]
		if !ok {
			s = &dto.CategoryStats{}
			stats[p.Category] = s
		}
		s.Total++
		if p.Status == model.StatusInStock {
			s.InStock++
		} else {
			s.OutOfStock++
		}
		s.TotalValue += p.Price
	}
	for _, s := range stats {
		s.AveragePrice = s.TotalValue / float64(s.Total)
	}
	return stats, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	existing, err := uc.repo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "Category with this name already exists")
	}

	now := time.Now()
	c := &model.Category{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Label:         input.Label,
		Subcategories: subcategoriesWithIDs(input.Subcategories),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	uc.logger.Info("category created", zap.String("id", c.ID), zap.String("name", c.Name))
	return c, nil
}

func subcategoriesWithIDs(inputs []dto.SubcategoryInput) []model.Subcategory {
	subs := make([]model.Subcategory, 0, len(inputs))
	for _, in := range inputs {
		subs = append(subs, model.Subcategory{
			ID:    uuid.New().String(),
			Value: in.Value,
			Label: in.Label,
		})
	}
	return subs
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id string, input *dto.UpdateCategoryInput) (*model.Category, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.New(apperr.NotFound, "Category not found")
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Label != nil {
		fields["label"] = *input.Label
	}
	if len(fields) == 0 {
		return existing, nil
	}
	fields["updatedAt"] = time.Now()

	if err := uc.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	uc.logger.Info("category updated", zap.String("id", id))
	return uc.repo.FindByID(ctx, id)
}

// DeleteCategory refuses to remove a category any product still references.
// The existence check and the delete are separate store operations, so a
// concurrently created product can slip between them.
func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.New(apperr.NotFound, "Category not found")
	}

	inUse, err := uc.products.ExistsByCategory(ctx, existing.Name)
	if err != nil {
		return err
	}
	if inUse {
		return apperr.New(apperr.Conflict, "Cannot delete category that is being used by products")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("category deleted", zap.String("id", id), zap.String("name", existing.Name))
	return nil
}

func (uc *categoryUseCase) AddSubcategory(ctx context.Context, categoryID string, input *dto.SubcategoryInput) (*model.Category, error) {
	existing, err := uc.repo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.New(apperr.NotFound, "Category not found")
	}

	existing.Subcategories = append(existing.Subcategories, model.Subcategory{
		ID:    uuid.New().String(),
		Value: input.Value,
		Label: input.Label,
	})

	if err := uc.saveSubcategories(ctx, existing); err != nil {
		return nil, err
	}
	uc.logger.Info("subcategory added", zap.String("categoryId", categoryID), zap.String("value", input.Value))
	return uc.repo.FindByID(ctx, categoryID)
}

func (uc *categoryUseCase) UpdateSubcategory(ctx context.Context, categoryID, subID string, input *dto.SubcategoryInput) (*model.Category, error) {
	existing, err := uc.repo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.New(apperr.NotFound, "Category not found")
	}

	found := false
	for i := range existing.Subcategories {
		if existing.Subcategories[i].ID == subID {
			existing.Subcategories[i].Value = input.Value
			existing.Subcategories[i].Label = input.Label
			found = true
			break
		}
	}
	if !found {
		return nil, apperr.New(apperr.NotFound, "Subcategory not found")
	}

	if err := uc.saveSubcategories(ctx, existing); err != nil {
		return nil, err
	}
	uc.logger.Info("subcategory updated", zap.String("categoryId", categoryID), zap.String("subId", subID))
	return uc.repo.FindByID(ctx, categoryID)
}

func (uc *categoryUseCase) DeleteSubcategory(ctx context.Context, categoryID, subID string) (*model.Category, error) {
	existing, err := uc.repo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.New(apperr.NotFound, "Category not found")
	}

	var target *model.Subcategory
	for i := range existing.Subcategories {
		if existing.Subcategories[i].ID == subID {
			target = &existing.Subcategories[i]
			break
		}
	}
	if target == nil {
		return nil, apperr.New(apperr.NotFound, "Subcategory not found")
	}

	inUse, err := uc.products.ExistsBySubcategory(ctx, target.Value)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, apperr.New(apperr.Conflict, "Cannot delete subcategory that is being used by products")
	}

	kept := make([]model.Subcategory, 0, len(existing.Subcategories))
	for _, sub := range existing.Subcategories {
		if sub.ID != subID {
			kept = append(kept, sub)
		}
	}
	existing.Subcategories = kept

	if err := uc.saveSubcategories(ctx, existing); err != nil {
		return nil, err
	}
	uc.logger.Info("subcategory deleted", zap.String("categoryId", categoryID), zap.String("subId", subID))
	return uc.repo.FindByID(ctx, categoryID)
}

func (uc *categoryUseCase) saveSubcategories(ctx context.Context, c *model.Category) error {
	return uc.repo.UpdateFields(ctx, c.ID, map[string]interface{}{
		"subcategories": c.Subcategories,
		"updatedAt":     time.Now(),
	})
}

func defaultCategories() []dto.CreateCategoryInput {
	return []dto.CreateCategoryInput{
		{Name: "men", Label: "Men"},
		{Name: "women", Label: "Women"},
		{Name: "unisex", Label: "Unisex", Subcategories: []dto.SubcategoryInput{
			{Value: "t-shirts-shirts", Label: "T-shirts & Shirts"},
			{Value: "pants-shorts", Label: "Pants & Shorts"},
			{Value: "slides-socks", Label: "Slides & Socks"},
			{Value: "jackets-hoodies", Label: "Jackets & Hoodies"},
		}},
		{Name: "accessories", Label: "Accessories", Subcategories: []dto.SubcategoryInput{
			{Value: "bags", Label: "Bags & Backpacks"},
			{Value: "caps", Label: "Caps & Hats"},
			{Value: "bottles", Label: "Bottles"},
		}},
		{Name: "jewelry", Label: "Jewelry", Subcategories: []dto.SubcategoryInput{
			{Value: "bracelets", Label: "Bracelets"},
			{Value: "necklaces", Label: "Necklaces"},
			{Value: "rings", Label: "Rings"},
		}},
	}
}

func (uc *categoryUseCase) InitializeDefaults(ctx context.Context) (*dto.InitializeResult, error) {
	existing, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	existingNames := map[string]bool{}
	for _, c := range existing {
		existingNames[c.Name] = true
	}

	result := &dto.InitializeResult{}
	for _, input := range defaultCategories() {
		if existingNames[input.Name] {
			continue
		}
		in := input
		if _, err := uc.CreateCategory(ctx, &in); err != nil {
			return nil, err
		}
		result.Added++
		result.Categories = append(result.Categories, input.Name)
	}

	uc.logger.Info("default categories initialized", zap.Int("added", result.Added))
	return result, nil
}
