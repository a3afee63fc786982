package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/category"
	"github.com/nextgencodex-com/Vengase-backend/internal/category/dto"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/product"
	productdto "github.com/nextgencodex-com/Vengase-backend/internal/product/dto"
)

type fakeCategoryRepo struct {
	categories map[string]*model.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*model.Category{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *model.Category) error {
	copied := *c
	r.categories[c.ID] = &copied
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id string) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]model.Category, error) {
	all := []model.Category{}
	for _, c := range r.categories {
		all = append(all, *c)
	}
	return all, nil
}

func (r *fakeCategoryRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	c := r.categories[id]
	for key, value := range fields {
		switch key {
		case "name":
			c.Name = value.(string)
		case "label":
			c.Label = value.(string)
		case "subcategories":
			c.Subcategories = value.([]model.Subcategory)
		}
	}
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

var _ category.Repository = (*fakeCategoryRepo)(nil)

// fakeProductRepo only needs the lookup surface the category usecase touches.
type fakeProductRepo struct {
	products []model.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	r.products = append(r.products, *p)
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id int) (*model.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context, f *productdto.ProductFilters) ([]model.Product, error) {
	all := []model.Product{}
	for _, p := range r.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		all = append(all, p)
	}
	return product.ApplyPipeline(all, f), nil
}

func (r *fakeProductRepo) UpdateFields(context.Context, int, map[string]interface{}) error {
	return nil
}

func (r *fakeProductRepo) Delete(context.Context, int) error { return nil }

func (r *fakeProductRepo) ExistsByCategory(_ context.Context, name string) (bool, error) {
	for _, p := range r.products {
		if p.Category == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) ExistsBySubcategory(_ context.Context, value string) (bool, error) {
	for _, p := range r.products {
		if p.Subcategory == value {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) MaxProductID(context.Context, int) (int, bool, error) {
	return 0, false, nil
}

var _ product.Repository = (*fakeProductRepo)(nil)

func newTestUseCase(catRepo *fakeCategoryRepo, prodRepo *fakeProductRepo) category.UseCase {
	return NewCategoryUseCase(catRepo, prodRepo, zap.NewNop())
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := newTestUseCase(repo, &fakeProductRepo{})
	ctx := context.Background()

	_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "men", Label: "Men"})
	require.NoError(t, err)

	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "men", Label: "Men Again"})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Equal(t, "Category with this name already exists", apperr.Message(err))
}

func TestCreateCategoryAssignsSubcategoryIDs(t *testing.T) {
	uc := newTestUseCase(newFakeCategoryRepo(), &fakeProductRepo{})

	c, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{
		Name:  "accessories",
		Label: "Accessories",
		Subcategories: []dto.SubcategoryInput{
			{Value: "bags", Label: "Bags"},
			{Value: "caps", Label: "Caps"},
		},
	})
	require.NoError(t, err)
	require.Len(t, c.Subcategories, 2)
	assert.NotEmpty(t, c.Subcategories[0].ID)
	assert.NotEqual(t, c.Subcategories[0].ID, c.Subcategories[1].ID)
}

func TestDeleteCategoryInUse(t *testing.T) {
	repo := newFakeCategoryRepo()
	prodRepo := &fakeProductRepo{products: []model.Product{{ID: 1000, Category: "men"}}}
	uc := newTestUseCase(repo, prodRepo)
	ctx := context.Background()

	created, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "men", Label: "Men"})
	require.NoError(t, err)

	err = uc.DeleteCategory(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Equal(t, "Cannot delete category that is being used by products", apperr.Message(err))

	// The guard must leave the category untouched.
	still, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, still, 1)
}

func TestDeleteCategoryUnused(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := newTestUseCase(repo, &fakeProductRepo{})
	ctx := context.Background()

	created, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "women", Label: "Women"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteCategory(ctx, created.ID))

	remaining, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDeleteSubcategoryInUse(t *testing.T) {
	repo := newFakeCategoryRepo()
	prodRepo := &fakeProductRepo{products: []model.Product{{ID: 1000, Subcategory: "bags"}}}
	uc := newTestUseCase(repo, prodRepo)
	ctx := context.Background()

	created, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{
		Name:          "accessories",
		Label:         "Accessories",
		Subcategories: []dto.SubcategoryInput{{Value: "bags", Label: "Bags"}},
	})
	require.NoError(t, err)

	_, err = uc.DeleteSubcategory(ctx, created.ID, created.Subcategories[0].ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Equal(t, "Cannot delete subcategory that is being used by products", apperr.Message(err))
}

func TestSubcategoryLifecycle(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := newTestUseCase(repo, &fakeProductRepo{})
	ctx := context.Background()

	created, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "jewelry", Label: "Jewelry"})
	require.NoError(t, err)

	withSub, err := uc.AddSubcategory(ctx, created.ID, &dto.SubcategoryInput{Value: "rings", Label: "Rings"})
	require.NoError(t, err)
	require.Len(t, withSub.Subcategories, 1)
	subID := withSub.Subcategories[0].ID

	updated, err := uc.UpdateSubcategory(ctx, created.ID, subID, &dto.SubcategoryInput{Value: "rings", Label: "Fine Rings"})
	require.NoError(t, err)
	assert.Equal(t, "Fine Rings", updated.Subcategories[0].Label)

	after, err := uc.DeleteSubcategory(ctx, created.ID, subID)
	require.NoError(t, err)
	assert.Empty(t, after.Subcategories)
}

func TestUpdateSubcategoryMissing(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := newTestUseCase(repo, &fakeProductRepo{})
	ctx := context.Background()

	created, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "men", Label: "Men"})
	require.NoError(t, err)

	_, err = uc.UpdateSubcategory(ctx, created.ID, "missing", &dto.SubcategoryInput{Value: "x", Label: "X"})
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Subcategory not found", apperr.Message(err))
}

func TestInitializeDefaults(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := newTestUseCase(repo, &fakeProductRepo{})
	ctx := context.Background()

	first, err := uc.InitializeDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, first.Added)
	assert.Contains(t, first.Categories, "men")
	assert.Contains(t, first.Categories, "jewelry")

	// Second run finds everything in place and adds nothing.
	second, err := uc.InitializeDefaults(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Added)
	assert.Empty(t, second.Categories)
}

func TestInitializeDefaultsSkipsExisting(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := newTestUseCase(repo, &fakeProductRepo{})
	ctx := context.Background()

	_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "men", Label: "Men"})
	require.NoError(t, err)

	result, err := uc.InitializeDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Added)
	assert.NotContains(t, result.Categories, "men")
}

func TestLegacyCategoriesCounts(t *testing.T) {
	prodRepo := &fakeProductRepo{products: []model.Product{
		{ID: 1000, Category: "bags", Status: model.StatusInStock},
		{ID: 1001, Category: "bags", Status: model.StatusInStock},
		{ID: 1002, Category: "bags", Status: model.StatusOutOfStock},
		{ID: 1003, Category: "caps", Status: model.StatusInStock},
	}}
	uc := newTestUseCase(newFakeCategoryRepo(), prodRepo)

	counts, err := uc.LegacyCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 10)

	byName := map[string]dto.CategoryCount{}
	for _, c := range counts {
		byName[c.Name] = c
	}
	assert.Equal(t, 2, byName["bags"].ProductCount)
	assert.Equal(t, 1, byName["caps"].ProductCount)
	assert.Zero(t, byName["jewelry"].ProductCount)
}

func TestStatsAggregates(t *testing.T) {
	prodRepo := &fakeProductRepo{products: []model.Product{
		{ID: 1000, Category: "men", Price: 10, Status: model.StatusInStock},
		{ID: 1001, Category: "men", Price: 30, Status: model.StatusOutOfStock},
		{ID: 1002, Category: "women", Price: 50, Status: model.StatusInStock},
	}}
	uc := newTestUseCase(newFakeCategoryRepo(), prodRepo)

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)

	men := stats["men"]
	require.NotNil(t, men)
	assert.Equal(t, 2, men.Total)
	assert.Equal(t, 1, men.InStock)
	assert.Equal(t, 1, men.OutOfStock)
	assert.Equal(t, 20.0, men.AveragePrice)
	assert.Equal(t, 40.0, men.TotalValue)
}
