package order

import (
	"context"

	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/order/dto"
)

type UseCase interface {
	// CreateOrder supports guest checkout: userID is empty when no bearer
	// token accompanied the request.
	CreateOrder(ctx context.Context, input *dto.CreateOrderInput, userID string) (*model.Order, error)
	GetOrder(ctx context.Context, orderID, requesterUID string, isAdmin bool) (*model.Order, error)
	ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) (*model.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID, status string) (*model.Order, error)
	Stats(ctx context.Context) (*model.OrderStats, error)
}
