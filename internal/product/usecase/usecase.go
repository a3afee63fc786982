package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/product"
	"github.com/nextgencodex-com/Vengase-backend/internal/product/dto"
	"github.com/nextgencodex-com/Vengase-backend/internal/sequence"
)

// ImageSaver persists inline base64 image payloads and returns the public
// URL path.
type ImageSaver interface {
	SaveBase64(data string) (string, error)
}

type productUseCase struct {
	repo      product.Repository
	allocator *sequence.Allocator
	images    ImageSaver
	logger    *zap.Logger
}

func NewProductUseCase(repo product.Repository, allocator *sequence.Allocator, images ImageSaver, log *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:      repo,
		allocator: allocator,
		images:    images,
		logger:    log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	img := input.Img
	if strings.HasPrefix(img, "data:image/") && uc.images != nil {
		url, err := uc.images.SaveBase64(img)
		if err != nil {
			// The product is still created; it just ships without an image.
			uc.logger.Error("failed to save inline product image", zap.Error(err))
			img = ""
		} else {
			img = url
		}
	}

	status := input.Status
	if status == "" {
		status = model.StatusInStock
	}

	id := uc.allocator.NextProductID(ctx)
	now := time.Now()

	p := &model.Product{
		ID:                  id,
		Name:                input.Name,
		Price:               input.Price,
		Description:         input.Description,
		DetailedDescription: input.DetailedDescription,
		Category:            input.Category,
		Subcategory:         input.Subcategory,
		Fabric:              input.Fabric,
		Features:            input.Features,
		Colors:              input.Colors,
		Stock:               input.Stock,
		Img:                 img,
		Rating:              input.Rating,
		Reviews:             input.Reviews,
		Status:              status,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product created", zap.Int("id", id))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.New(apperr.NotFound, "Product not found")
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	return uc.repo.FindAll(ctx, &dto.ProductFilters{Query: term})
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id int, input *dto.UpdateProductInput) (*model.Product, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.New(apperr.NotFound, "Product not found")
	}

	fields := updateFieldMap(input)
	if len(fields) == 0 {
		return existing, nil
	}
	fields["updatedAt"] = time.Now()

	if err := uc.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	uc.logger.Info("product updated", zap.Int("id", id))
	return uc.repo.FindByID(ctx, id)
}

func updateFieldMap(input *dto.UpdateProductInput) map[string]interface{} {
	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.DetailedDescription != nil {
		fields["detailedDescription"] = *input.DetailedDescription
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Subcategory != nil {
		fields["subcategory"] = *input.Subcategory
	}
	if input.Fabric != nil {
		fields["fabric"] = *input.Fabric
	}
	if input.Features != nil {
		fields["features"] = input.Features
	}
	if input.Colors != nil {
		fields["colors"] = input.Colors
	}
	if input.Stock != nil {
		fields["stock"] = input.Stock
	}
	if input.Img != nil {
		fields["img"] = *input.Img
	}
	if input.Rating != nil {
		fields["rating"] = *input.Rating
	}
	if input.Reviews != nil {
		fields["reviews"] = *input.Reviews
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	return fields
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.New(apperr.NotFound, "Product not found")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("product deleted", zap.Int("id", id))
	return nil
}

// UpdateStock merges the given size counts into the stored stock map;
// sizes absent from the patch keep their counts.
func (uc *productUseCase) UpdateStock(ctx context.Context, id int, stock map[string]int) (*model.Product, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.New(apperr.NotFound, "Product not found")
	}

	merged := make(map[string]int, len(existing.Stock)+len(stock))
	for size, count := range existing.Stock {
		merged[size] = count
	}
	for size, count := range stock {
		merged[size] = count
	}

	fields := map[string]interface{}{
		"stock":     merged,
		"updatedAt": time.Now(),
	}
	if err := uc.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	uc.logger.Info("product stock updated", zap.Int("id", id))
	return uc.repo.FindByID(ctx, id)
}
