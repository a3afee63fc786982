package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/auth"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/user"
	"github.com/nextgencodex-com/Vengase-backend/internal/user/dto"
	"github.com/nextgencodex-com/Vengase-backend/pkg/httpres"
)

type UserHandler struct {
	uc       user.UseCase
	validate *validator.Validate
	logger   *zap.Logger
	dev      bool
}

func NewUserHandler(uc user.UseCase, log *zap.Logger, dev bool) *UserHandler {
	return &UserHandler{
		uc:       uc,
		validate: validator.New(),
		logger:   log,
		dev:      dev,
	}
}

func (h *UserHandler) fail(w http.ResponseWriter, err error) {
	if apperr.KindOf(err) == apperr.Upstream {
		h.logger.Error("user request failed", zap.Error(err))
	}
	apperr.HTTPError(w, err, h.dev)
}

func (h *UserHandler) claims(w http.ResponseWriter, r *http.Request) *model.AuthClaims {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpres.Error(w, http.StatusUnauthorized, "Authentication required", nil)
	}
	return claims
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	claims := h.claims(w, r)
	if claims == nil {
		return
	}

	var input dto.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.Wrap(apperr.Validation, "Invalid registration payload", err))
		return
	}

	u, err := h.uc.Register(r.Context(), claims, &input)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusCreated, "User registered successfully", u)
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	claims := h.claims(w, r)
	if claims == nil {
		return
	}

	u, err := h.uc.SignIn(r.Context(), claims)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusOK, "Signed in successfully", u)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims := h.claims(w, r)
	if claims == nil {
		return
	}

	u, err := h.uc.GetProfile(r.Context(), claims.UID)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.Success(w, http.StatusOK, u)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims := h.claims(w, r)
	if claims == nil {
		return
	}

	var input dto.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.Wrap(apperr.Validation, "Invalid profile payload", err))
		return
	}

	u, err := h.uc.UpdateProfile(r.Context(), claims.UID, &input)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusOK, "Profile updated successfully", u)
}

func (h *UserHandler) SyncCart(w http.ResponseWriter, r *http.Request) {
	claims := h.claims(w, r)
	if claims == nil {
		return
	}

	var input dto.CartSyncInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Cart array is required"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Cart array is required"))
		return
	}

	now := time.Now()
	items := make([]model.CartItem, 0, len(input.Cart))
	for _, it := range input.Cart {
		items = append(items, model.CartItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Img:       it.Img,
			Size:      it.Size,
			Quantity:  it.Quantity,
			AddedAt:   now,
			UpdatedAt: now,
		})
	}

	u, err := h.uc.SyncCart(r.Context(), claims.UID, items)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusOK, "Cart synced successfully", u.Cart)
}

func (h *UserHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	claims := h.claims(w, r)
	if claims == nil {
		return
	}

	var input dto.CartAddInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.Wrap(apperr.Validation, "Invalid cart item payload", err))
		return
	}

	u, err := h.uc.AddToCart(r.Context(), claims.UID, &input)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusOK, "Item added to cart", u.Cart)
}

func (h *UserHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	claims := h.claims(w, r)
	if claims == nil {
		return
	}

	var input struct {
		ProductID int    `json:"productId"`
		Size      string `json:"size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ProductID < 1 {
		h.fail(w, apperr.New(apperr.Validation, "Product ID is required"))
		return
	}

	u, err := h.uc.RemoveFromCart(r.Context(), claims.UID, input.ProductID, input.Size)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusOK, "Item removed from cart", u.Cart)
}

func (h *UserHandler) SyncWishlist(w http.ResponseWriter, r *http.Request) {
	claims := h.claims(w, r)
	if claims == nil {
		return
	}

	var input dto.WishlistSyncInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Wishlist array is required"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Wishlist array is required"))
		return
	}

	u, err := h.uc.SyncWishlist(r.Context(), claims.UID, input.Wishlist)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusOK, "Wishlist synced successfully", u.Wishlist)
}

func (h *UserHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	claims := h.claims(w, r)
	if claims == nil {
		return
	}

	var input dto.WishlistToggleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Product ID is required"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Product ID is required"))
		return
	}

	u, added, err := h.uc.ToggleWishlist(r.Context(), claims.UID, input.ProductID)
	if err != nil {
		h.fail(w, err)
		return
	}
	message := "Removed from wishlist"
	if added {
		message = "Added to wishlist"
	}
	httpres.SuccessData(w, http.StatusOK, message, u.Wishlist)
}

// ListAll is admin-only, mounted behind the admin gate.
func (h *UserHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.uc.ListAll(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessCount(w, http.StatusOK, len(users), users)
}

func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.Stats(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.Success(w, http.StatusOK, stats)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := h.claims(w, r)
	if claims == nil {
		return
	}

	if err := h.uc.Delete(r.Context(), claims.UID); err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessMessage(w, http.StatusOK, "Account deleted successfully")
}
