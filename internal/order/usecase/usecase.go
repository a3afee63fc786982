package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/order"
	"github.com/nextgencodex-com/Vengase-backend/internal/order/dto"
	"github.com/nextgencodex-com/Vengase-backend/internal/sequence"
)

type orderUseCase struct {
	repo      order.Repository
	allocator *sequence.Allocator
	logger    *zap.Logger
}

func NewOrderUseCase(repo order.Repository, allocator *sequence.Allocator, log *zap.Logger) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		allocator: allocator,
		logger:    log,
	}
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput, userID string) (*model.Order, error) {
	orderID := uc.allocator.NextOrderCode(ctx)
	now := time.Now()

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "pending"
	}

	items := make([]model.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, model.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Size:      it.Size,
			Quantity:  it.Quantity,
			Img:       it.Img,
		})
	}

	o := &model.Order{
		OrderID:         orderID,
		UserID:          userID,
		UserEmail:       input.UserEmail,
		UserName:        input.UserName,
		Items:           items,
		TotalAmount:     input.TotalAmount,
		ShippingAddress: input.ShippingAddress,
		Phone:           input.Phone,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   model.PaymentStatusPending,
		OrderStatus:     model.OrderStatusPending,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	uc.logger.Info("order created", zap.String("orderId", orderID), zap.String("userId", userID))
	return o, nil
}

func (uc *orderUseCase) GetOrder(ctx context.Context, orderID, requesterUID string, isAdmin bool) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.New(apperr.NotFound, "Order not found")
	}
	if !isAdmin && (o.UserID == "" || o.UserID != requesterUID) {
		return nil, apperr.New(apperr.Forbidden, "Not authorized to view this order")
	}
	return o, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *orderUseCase) ListUserOrders(ctx context.Context, userID string) ([]model.Order, error) {
	return uc.repo.FindAll(ctx, &dto.OrderFilters{UserID: userID})
}

func (uc *orderUseCase) UpdateOrderStatus(ctx context.Context, orderID, status string) (*model.Order, error) {
	if !contains(model.ValidOrderStatuses(), status) {
		return nil, apperr.Newf(apperr.Validation,
			"Invalid status. Must be one of: %s", strings.Join(model.ValidOrderStatuses(), ", "))
	}
	return uc.updateStatusField(ctx, orderID, "orderStatus", status)
}

func (uc *orderUseCase) UpdatePaymentStatus(ctx context.Context, orderID, status string) (*model.Order, error) {
	if !contains(model.ValidPaymentStatuses(), status) {
		return nil, apperr.Newf(apperr.Validation,
			"Invalid status. Must be one of: %s", strings.Join(model.ValidPaymentStatuses(), ", "))
	}
	return uc.updateStatusField(ctx, orderID, "paymentStatus", status)
}

func (uc *orderUseCase) updateStatusField(ctx context.Context, orderID, field, status string) (*model.Order, error) {
	existing, err := uc.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.New(apperr.NotFound, "Order not found")
	}

	fields := map[string]interface{}{
		field:       status,
		"updatedAt": time.Now(),
	}
	if err := uc.repo.UpdateFields(ctx, orderID, fields); err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated",
		zap.String("orderId", orderID), zap.String("field", field), zap.String("status", status))
	return uc.repo.FindByID(ctx, orderID)
}

func (uc *orderUseCase) Stats(ctx context.Context) (*model.OrderStats, error) {
	orders, err := uc.repo.FindAll(ctx, &dto.OrderFilters{})
	if err != nil {
		return nil, err
	}

	stats := &model.OrderStats{}
	for _, o := range orders {
		stats.TotalOrders++
		stats.TotalRevenue += o.TotalAmount

		switch o.OrderStatus {
		case model.OrderStatusPending, model.OrderStatusConfirmed:
			stats.PendingOrders++
		case model.OrderStatusDelivered:
			stats.CompletedOrders++
		case model.OrderStatusCancelled:
			stats.CancelledOrders++
		}
	}
	return stats, nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
