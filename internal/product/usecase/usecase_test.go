package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/product"
	"github.com/nextgencodex-com/Vengase-backend/internal/product/dto"
	"github.com/nextgencodex-com/Vengase-backend/internal/sequence"
)

// fakeRepo is an in-memory product.Repository sharing the real pipeline
// semantics for FindAll.
type fakeRepo struct {
	products map[int]*model.Product
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: map[int]*model.Product{}}
}

func (r *fakeRepo) Create(_ context.Context, p *model.Product) error {
	copied := *p
	r.products[p.ID] = &copied
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id int) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeRepo) FindAll(_ context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	all := []model.Product{}
	for _, p := range r.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		all = append(all, *p)
	}
	return product.ApplyPipeline(all, f), nil
}

func (r *fakeRepo) UpdateFields(_ context.Context, id int, fields map[string]interface{}) error {
	p := r.products[id]
	for key, value := range fields {
		switch key {
		case "name":
			p.Name = value.(string)
		case "price":
			p.Price = value.(float64)
		case "status":
			p.Status = value.(string)
		case "stock":
			p.Stock = value.(map[string]int)
		}
	}
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int) error {
	delete(r.products, id)
	return nil
}

func (r *fakeRepo) ExistsByCategory(_ context.Context, name string) (bool, error) {
	for _, p := range r.products {
		if p.Category == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) ExistsBySubcategory(_ context.Context, value string) (bool, error) {
	for _, p := range r.products {
		if p.Subcategory == value {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) MaxProductID(_ context.Context, floor int) (int, bool, error) {
	max, found := 0, false
	for id := range r.products {
		if id >= floor && id > max {
			max, found = id, true
		}
	}
	return max, found, nil
}

type fakeImageSaver struct {
	url string
	err error
}

func (s *fakeImageSaver) SaveBase64(string) (string, error) {
	return s.url, s.err
}

func newTestUseCase(repo *fakeRepo, images ImageSaver) product.UseCase {
	allocator := sequence.NewAllocator(repo, nil, zap.NewNop())
	return NewProductUseCase(repo, allocator, images, zap.NewNop())
}

func TestCreateProductAllocatesSequentialIDs(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, nil)
	ctx := context.Background()

	first, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Shirt", Price: 20})
	require.NoError(t, err)
	assert.Equal(t, sequence.MinDynamicID, first.ID)

	second, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Pants", Price: 30})
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestCreateProductDefaultsStatus(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, nil)

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{Name: "Shirt", Price: 20})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInStock, p.Status)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestCreateProductSavesInlineImage(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, &fakeImageSaver{url: "/images/product_1_ab.png"})

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name:  "Shirt",
		Price: 20,
		Img:   "data:image/png;base64,aGVsbG8=",
	})
	require.NoError(t, err)
	assert.Equal(t, "/images/product_1_ab.png", p.Img)
}

func TestCreateProductImageFailureDoesNotBlockCreation(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, &fakeImageSaver{err: apperr.New(apperr.Upstream, "disk full")})

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name:  "Shirt",
		Price: 20,
		Img:   "data:image/png;base64,aGVsbG8=",
	})
	require.NoError(t, err)
	assert.Empty(t, p.Img)
}

func TestGetProductMissing(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), nil)

	_, err := uc.GetProduct(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Product not found", apperr.Message(err))
}

func TestUpdateProductMergesFields(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, nil)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Shirt", Price: 20, Description: "plain"})
	require.NoError(t, err)

	name := "Premium Shirt"
	price := 35.0
	updated, err := uc.UpdateProduct(ctx, created.ID, &dto.UpdateProductInput{Name: &name, Price: &price})
	require.NoError(t, err)

	assert.Equal(t, "Premium Shirt", updated.Name)
	assert.Equal(t, 35.0, updated.Price)
	assert.Equal(t, "plain", updated.Description)
	assert.Equal(t, created.ID, updated.ID)
}

func TestUpdateProductMissing(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), nil)

	name := "anything"
	_, err := uc.UpdateProduct(context.Background(), 4242, &dto.UpdateProductInput{Name: &name})
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateStockMergesSizes(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, nil)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name:  "Shirt",
		Price: 20,
		Stock: map[string]int{"S": 5, "M": 3},
	})
	require.NoError(t, err)

	updated, err := uc.UpdateStock(ctx, created.ID, map[string]int{"M": 0, "L": 7})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"S": 5, "M": 0, "L": 7}, updated.Stock)
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, nil)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Shirt", Price: 20})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct(ctx, created.ID))

	_, err = uc.GetProduct(ctx, created.ID)
	assert.True(t, apperr.IsNotFound(err))

	assert.True(t, apperr.IsNotFound(uc.DeleteProduct(ctx, created.ID)))
}

func TestSearchProducts(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, nil)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Denim Jacket", Price: 120})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Linen Shirt", Price: 45})
	require.NoError(t, err)

	found, err := uc.SearchProducts(ctx, "denim")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Denim Jacket", found[0].Name)
}
