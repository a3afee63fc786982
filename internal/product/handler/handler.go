package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/product"
	"github.com/nextgencodex-com/Vengase-backend/internal/product/dto"
	"github.com/nextgencodex-com/Vengase-backend/pkg/httpres"
)

type ProductHandler struct {
	uc       product.UseCase
	validate *validator.Validate
	logger   *zap.Logger
	dev      bool
}

func NewProductHandler(uc product.UseCase, log *zap.Logger, dev bool) *ProductHandler {
	return &ProductHandler{
		uc:       uc,
		validate: validator.New(),
		logger:   log,
		dev:      dev,
	}
}

func (h *ProductHandler) fail(w http.ResponseWriter, err error) {
	if apperr.KindOf(err) == apperr.Upstream {
		h.logger.Error("product request failed", zap.Error(err))
	}
	apperr.HTTPError(w, err, h.dev)
}

// List handles GET /products with the full filter surface: category,
// subcategory, status, minPrice, maxPrice, q, sortBy, sortOrder, limit,
// offset.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := filtersFromQuery(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	products, err := h.uc.ListProducts(r.Context(), filters)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessCount(w, http.StatusOK, len(products), products)
}

func filtersFromQuery(r *http.Request) (*dto.ProductFilters, error) {
	q := r.URL.Query()
	filters := &dto.ProductFilters{
		Category:    q.Get("category"),
		Subcategory: q.Get("subcategory"),
		Status:      q.Get("status"),
		Query:       q.Get("q"),
		SortBy:      q.Get("sortBy"),
		SortOrder:   q.Get("sortOrder"),
	}

	if raw := q.Get("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, apperr.New(apperr.Validation, "minPrice must be a number")
		}
		filters.MinPrice = &v
	}
	if raw := q.Get("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, apperr.New(apperr.Validation, "maxPrice must be a number")
		}
		filters.MaxPrice = &v
	}
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, apperr.New(apperr.Validation, "limit must be a non-negative integer")
		}
		filters.Limit = v
	}
	if raw := q.Get("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, apperr.New(apperr.Validation, "offset must be a non-negative integer")
		}
		filters.Offset = v
	}
	return filters, nil
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	p, err := h.uc.GetProduct(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.Success(w, http.StatusOK, p)
}

func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := mux.Vars(r)["term"]
	products, err := h.uc.SearchProducts(r.Context(), term)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessCount(w, http.StatusOK, len(products), products)
}

func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	filters := &dto.ProductFilters{
		Category: mux.Vars(r)["category"],
		Status:   r.URL.Query().Get("status"),
	}
	products, err := h.uc.ListProducts(r.Context(), filters)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessCount(w, http.StatusOK, len(products), products)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.Wrap(apperr.Validation, "Invalid product payload", err))
		return
	}

	p, err := h.uc.CreateProduct(r.Context(), &input)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusCreated, "Product created successfully", p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	var input dto.UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.Wrap(apperr.Validation, "Invalid product payload", err))
		return
	}

	p, err := h.uc.UpdateProduct(r.Context(), id, &input)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusOK, "Product updated successfully", p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	if err := h.uc.DeleteProduct(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessMessage(w, http.StatusOK, "Product deleted successfully")
}

func (h *ProductHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	var input dto.StockUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Stock object is required"))
		return
	}
	if err := h.validate.Struct(&input); err != nil {
		h.fail(w, apperr.New(apperr.Validation, "Stock object is required"))
		return
	}

	p, err := h.uc.UpdateStock(r.Context(), id, input.Stock)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusOK, "Stock updated successfully", p)
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, apperr.New(apperr.Validation, "Invalid product ID")
	}
	return id, nil
}
