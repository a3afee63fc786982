package product

import (
	"strings"

	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/product/dto"
	"github.com/nextgencodex-com/Vengase-backend/internal/query"
)

// ApplyPipeline runs the in-memory half of the query pipeline over an
// already-fetched slice: residual filters in fixed order, then sort, then
// offset. Pure, so it is shared between the real repository and tests.
func ApplyPipeline(products []model.Product, f *dto.ProductFilters) []model.Product {
	products = query.Filter(products, residualPredicates(f)...)
	sortProducts(products, f.SortBy, f.SortOrder)
	return query.Offset(products, f.Offset)
}

func residualPredicates(f *dto.ProductFilters) []query.Predicate[model.Product] {
	var preds []query.Predicate[model.Product]

	if f.Subcategory != "" {
		sub := f.Subcategory
		preds = append(preds, func(p model.Product) bool { return p.Subcategory == sub })
	}
	if f.Status != "" {
		status := f.Status
		preds = append(preds, func(p model.Product) bool { return p.Status == status })
	}
	if f.MinPrice != nil {
		min := *f.MinPrice
		preds = append(preds, func(p model.Product) bool { return p.Price >= min })
	}
	if f.MaxPrice != nil {
		max := *f.MaxPrice
		preds = append(preds, func(p model.Product) bool { return p.Price <= max })
	}
	if f.Query != "" {
		preds = append(preds, searchPredicate(f.Query))
	}
	return preds
}

// searchPredicate matches a case-insensitive substring against name,
// description, subcategory and fabric, or membership in features/colors.
func searchPredicate(term string) query.Predicate[model.Product] {
	term = strings.ToLower(term)
	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), term)
	}
	containsAny := func(values []string) bool {
		for _, v := range values {
			if contains(v) {
				return true
			}
		}
		return false
	}
	return func(p model.Product) bool {
		return contains(p.Name) ||
			contains(p.Description) ||
			contains(p.Subcategory) ||
			contains(p.Fabric) ||
			containsAny(p.Features) ||
			containsAny(p.Colors)
	}
}

func sortProducts(products []model.Product, sortBy, sortOrder string) {
	desc := sortOrder == "desc"

	var less func(a, b model.Product) bool
	switch sortBy {
	case "name":
		less = func(a, b model.Product) bool { return query.CompareStrings(a.Name, b.Name) < 0 }
	case "category":
		less = func(a, b model.Product) bool { return query.CompareStrings(a.Category, b.Category) < 0 }
	case "subcategory":
		less = func(a, b model.Product) bool { return query.CompareStrings(a.Subcategory, b.Subcategory) < 0 }
	case "status":
		less = func(a, b model.Product) bool { return query.CompareStrings(a.Status, b.Status) < 0 }
	case "price":
		less = func(a, b model.Product) bool { return a.Price < b.Price }
	case "rating":
		less = func(a, b model.Product) bool { return a.Rating < b.Rating }
	case "reviews":
		less = func(a, b model.Product) bool { return a.Reviews < b.Reviews }
	case "createdAt":
		less = func(a, b model.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "id":
		less = func(a, b model.Product) bool { return a.ID < b.ID }
	default:
		// No explicit key: ascending by id, never descending.
		less = func(a, b model.Product) bool { return a.ID < b.ID }
		desc = false
	}

	query.SortBy(products, less, desc)
}
