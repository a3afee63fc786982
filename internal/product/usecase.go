package product

import (
	"context"

	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id int) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	SearchProducts(ctx context.Context, term string) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id int, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	UpdateStock(ctx context.Context, id int, stock map[string]int) (*model.Product, error)
}
