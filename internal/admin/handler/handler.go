package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/admin"
	"github.com/nextgencodex-com/Vengase-backend/internal/admin/dto"
	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/auth"
	"github.com/nextgencodex-com/Vengase-backend/pkg/httpres"
)

type AdminHandler struct {
	uc       admin.UseCase
	identity admin.IdentityProvider
	validate *validator.Validate
	logger   *zap.Logger
	dev      bool
}

func NewAdminHandler(uc admin.UseCase, identity admin.IdentityProvider, log *zap.Logger, dev bool) *AdminHandler {
	return &AdminHandler{
		uc:       uc,
		identity: identity,
		validate: validator.New(),
		logger:   log,
		dev:      dev,
	}
}

func (h *AdminHandler) fail(w http.ResponseWriter, err error) {
	if apperr.KindOf(err) == apperr.Upstream {
		h.logger.Error("admin request failed", zap.Error(err))
	}
	apperr.HTTPError(w, err, h.dev)
}

func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateAdminInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.Wrap(apperr.Validation, "Email and password are required", err))
		return
	}

	record, err := h.uc.CreateAdmin(r.Context(), &input)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusCreated, "Admin created successfully", record)
}

func (h *AdminHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	var input dto.MakeAdminInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Email is required"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Email is required"))
		return
	}

	record, err := h.uc.MakeAdmin(r.Context(), input.Email)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusOK, "Admin privileges granted successfully", record)
}

func (h *AdminHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var input dto.RemoveAdminInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "User ID or email is required"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "User ID or email is required"))
		return
	}

	uid := input.UID
	if uid == "" {
		if input.Email == "" {
			h.fail(w, apperr.New(apperr.Validation, "User ID or email is required"))
			return
		}
		account, err := h.identity.GetUserByEmail(r.Context(), input.Email)
		if err != nil {
			h.fail(w, err)
			return
		}
		uid = account.UID
	}

	if claims := auth.ClaimsFromContext(r.Context()); claims != nil && claims.UID == uid {
		h.fail(w, apperr.New(apperr.Validation, "Cannot remove your own admin privileges"))
		return
	}

	if err := h.uc.RemoveAdmin(r.Context(), uid); err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessMessage(w, http.StatusOK, "Admin privileges removed successfully")
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.uc.ListAdmins(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessCount(w, http.StatusOK, len(admins), admins)
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.Stats(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.Success(w, http.StatusOK, stats)
}

// VerifyAdmin reports the caller's admin standing. It is mounted behind the
// admin gate, so reaching the handler already means admin; the login
// bookkeeping is best-effort.
func (h *AdminHandler) VerifyAdmin(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpres.Error(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	if err := h.uc.RecordLogin(r.Context(), claims.UID); err != nil {
		h.logger.Warn("failed to record admin login",
			zap.String("uid", claims.UID), zap.Error(err))
	}
	httpres.SuccessData(w, http.StatusOK, "Admin access verified", map[string]interface{}{
		"uid":     claims.UID,
		"email":   claims.Email,
		"isAdmin": true,
	})
}
