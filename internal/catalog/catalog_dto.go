package catalog

type BrowseQuery struct {
	Query     string  `form:"q"`
	Category  string  `form:"category"`
	MinPrice  float64 `form:"min_price"`
	MaxPrice  float64 `form:"max_price"`
	MinRating float64 `form:"min_rating"`
	Sort      string  `form:"sort"`
}

type BrowseRequest struct {
	Query     string   `validate:"-"`
	Category  string   `validate:"-"`
	MinPrice  float64  `validate:"gte=0"`
	MaxPrice  float64  `validate:"-"`
	MinRating float64  `validate:"gte=0,lte=5"`
	Sort      SortMode `validate:"omitempty,oneof=featured price-low price-high rating newest"`
}

type ProductListResponse struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
}

type CategoryListResponse struct {
	Items []Category `json:"items"`
	Total int        `json:"total"`
}
