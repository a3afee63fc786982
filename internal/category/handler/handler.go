package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/category"
	"github.com/nextgencodex-com/Vengase-backend/internal/category/dto"
	"github.com/nextgencodex-com/Vengase-backend/pkg/httpres"
)

type CategoryHandler struct {
	uc       category.UseCase
	validate *validator.Validate
	logger   *zap.Logger
	dev      bool
}

func NewCategoryHandler(uc category.UseCase, log *zap.Logger, dev bool) *CategoryHandler {
	return &CategoryHandler{
		uc:       uc,
		validate: validator.New(),
		logger:   log,
		dev:      dev,
	}
}

func (h *CategoryHandler) fail(w http.ResponseWriter, err error) {
	if apperr.KindOf(err) == apperr.Upstream {
		h.logger.Error("category request failed", zap.Error(err))
	}
	apperr.HTTPError(w, err, h.dev)
}

func (h *CategoryHandler) Legacy(w http.ResponseWriter, r *http.Request) {
	counts, err := h.uc.LegacyCategories(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.Success(w, http.StatusOK, counts)
}

func (h *CategoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.Stats(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.Success(w, http.StatusOK, stats)
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.uc.ListCategories(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.Success(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.Wrap(apperr.Validation, "Invalid category payload", err))
		return
	}

	c, err := h.uc.CreateCategory(r.Context(), &input)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusCreated, "Category created successfully", c)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.Wrap(apperr.Validation, "Invalid category payload", err))
		return
	}

	c, err := h.uc.UpdateCategory(r.Context(), mux.Vars(r)["id"], &input)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusOK, "Category updated successfully", c)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteCategory(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessMessage(w, http.StatusOK, "Category deleted successfully")
}

func (h *CategoryHandler) AddSubcategory(w http.ResponseWriter, r *http.Request) {
	input, err := h.subcategoryInput(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	c, err := h.uc.AddSubcategory(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusCreated, "Subcategory added successfully", c)
}

func (h *CategoryHandler) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	input, err := h.subcategoryInput(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	vars := mux.Vars(r)
	c, err := h.uc.UpdateSubcategory(r.Context(), vars["id"], vars["subId"], input)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusOK, "Subcategory updated successfully", c)
}

func (h *CategoryHandler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	c, err := h.uc.DeleteSubcategory(r.Context(), vars["id"], vars["subId"])
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusOK, "Subcategory deleted successfully", c)
}

func (h *CategoryHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	result, err := h.uc.InitializeDefaults(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	message := "All default categories already exist"
	if result.Added > 0 {
		message = fmt.Sprintf("%d default categories initialized successfully", result.Added)
	}
	httpres.SuccessAdded(w, http.StatusOK, message, result.Added, result.Categories)
}

func (h *CategoryHandler) subcategoryInput(r *http.Request) (*dto.SubcategoryInput, error) {
	var input dto.SubcategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return nil, apperr.New(apperr.Validation, "Invalid JSON body")
	}
	if err := h.validate.Struct(&input); err != nil {
		return nil, apperr.Wrap(apperr.Validation, "Invalid subcategory payload", err)
	}
	return &input, nil
}
