package dto

type CategoryCount struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	ProductCount int    `json:"productCount"`
}

type CategoryStats struct {
	Total        int     `json:"total"`
	InStock      int     `json:"inStock"`
	OutOfStock   int     `json:"outOfStock"`
	AveragePrice float64 `json:"averagePrice"`
	TotalValue   float64 `json:"totalValue"`
}

type InitializeResult struct {
	Added      int      `json:"added"`
	Categories []string `json:"categories,omitempty"`
}
