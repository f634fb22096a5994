package catalog

import "sort"

type SortMode string

const (
	SortFeatured  SortMode = "featured"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortRating    SortMode = "rating"
	SortNewest    SortMode = "newest"
)

// FilterCriteria are applied conjunctively: a product must satisfy every
// active filter. Zero values deactivate a filter; MaxPrice <= 0 means the
// price range has no upper bound.
type FilterCriteria struct {
	CategoryID string
	MinPrice   float64
	MaxPrice   float64
	MinRating  float64
}

// FilterProducts returns the products satisfying all active criteria,
// preserving input order. Price ranges are min-inclusive, max-exclusive.
func FilterProducts(in []Product, fc FilterCriteria) []Product {
	out := make([]Product, 0, len(in))
	for _, p := range in {
		if fc.CategoryID != "" && p.Category != fc.CategoryID {
			continue
		}
		if p.Price < fc.MinPrice {
			continue
		}
		if fc.MaxPrice > 0 && p.Price >= fc.MaxPrice {
			continue
		}
		if fc.MinRating > 0 && p.Rating < fc.MinRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts applies one sort mode to a copy of the input. Sorts are
// stable: equal keys keep their input order. SortFeatured and unknown modes
// leave the order untouched; SortNewest is the reverse of the input order.
func SortProducts(in []Product, mode SortMode) []Product {
	out := make([]Product, len(in))
	copy(out, in)

	switch mode {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortNewest:
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
