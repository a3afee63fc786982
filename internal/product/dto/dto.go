package dto

// ProductFilters drives the two-stage query pipeline. Category is the
// primary filter (pushed to the store); everything else is residual and
// evaluated in memory, in the order: subcategory, status, minPrice,
// maxPrice, free-text query.
type ProductFilters struct {
	Category    string
	Subcategory string
	Status      string
	MinPrice    *float64
	MaxPrice    *float64
	Query       string
	SortBy      string
	SortOrder   string // asc (default) or desc
	Limit       int    // pushed to the store
	Offset      int    // applied in memory after sort
}
