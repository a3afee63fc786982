package order

import (
	"context"

	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/order/dto"
)

type Repository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, orderID string) (*model.Order, error)
	FindAll(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, error)
	UpdateFields(ctx context.Context, orderID string, fields map[string]interface{}) error

	// LastOrderCode feeds the sequence allocator.
	LastOrderCode(ctx context.Context, lo, hi string) (string, bool, error)
}
