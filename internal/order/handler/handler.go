package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/auth"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/order"
	"github.com/nextgencodex-com/Vengase-backend/internal/order/dto"
	"github.com/nextgencodex-com/Vengase-backend/pkg/httpres"
)

type OrderHandler struct {
	uc       order.UseCase
	validate *validator.Validate
	logger   *zap.Logger
	dev      bool
}

func NewOrderHandler(uc order.UseCase, log *zap.Logger, dev bool) *OrderHandler {
	return &OrderHandler{
		uc:       uc,
		validate: validator.New(),
		logger:   log,
		dev:      dev,
	}
}

func (h *OrderHandler) fail(w http.ResponseWriter, err error) {
	if apperr.KindOf(err) == apperr.Upstream {
		h.logger.Error("order request failed", zap.Error(err))
	}
	apperr.HTTPError(w, err, h.dev)
}

// Create accepts both signed-in and guest checkouts: when no valid token
// accompanied the request the order is stored without a user ID.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.Wrap(apperr.Validation, "Invalid order payload", err))
		return
	}

	userID := ""
	if claims := auth.ClaimsFromContext(r.Context()); claims != nil {
		userID = claims.UID
	}

	o, err := h.uc.CreateOrder(r.Context(), &input, userID)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusCreated, "Order created successfully", o)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpres.Error(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	o, err := h.uc.GetOrder(r.Context(), mux.Vars(r)["orderId"], claims.UID, claims.Admin)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.Success(w, http.StatusOK, o)
}

// List handles GET /orders for admins, filtered by orderStatus,
// paymentStatus, userId and limit.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &dto.OrderFilters{
		OrderStatus:   q.Get("orderStatus"),
		PaymentStatus: q.Get("paymentStatus"),
		UserID:        q.Get("userId"),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			h.fail(w, apperr.New(apperr.Validation, "limit must be a non-negative integer"))
			return
		}
		filters.Limit = limit
	}

	orders, err := h.uc.ListOrders(r.Context(), filters)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessCount(w, http.StatusOK, len(orders), orders)
}

// ListMine returns the caller's own orders, newest first.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpres.Error(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	orders, err := h.uc.ListUserOrders(r.Context(), claims.UID)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessCount(w, http.StatusOK, len(orders), orders)
}

// ListUserOrders returns a given user's orders; the caller must be that user
// or an admin.
func (h *OrderHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpres.Error(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	userID := mux.Vars(r)["userId"]
	if !claims.Admin && claims.UID != userID {
		httpres.Error(w, http.StatusForbidden, "Not authorized to view these orders", nil)
		return
	}

	orders, err := h.uc.ListUserOrders(r.Context(), userID)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessCount(w, http.StatusOK, len(orders), orders)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.uc.UpdateOrderStatus, "Order status updated successfully")
}

func (h *OrderHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.uc.UpdatePaymentStatus, "Payment status updated successfully")
}

func (h *OrderHandler) updateStatus(
	w http.ResponseWriter,
	r *http.Request,
	update func(ctx context.Context, orderID, status string) (*model.Order, error),
	message string,
) {
	var input dto.StatusUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Status is required"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Status is required"))
		return
	}

	o, err := update(r.Context(), mux.Vars(r)["orderId"], input.Status)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusOK, message, o)
}

func (h *OrderHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.Stats(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.Success(w, http.StatusOK, stats)
}
