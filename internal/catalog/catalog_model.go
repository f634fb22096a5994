package catalog

// Product is an immutable catalog record. Loaded once at startup, never
// mutated; stores hold references into the catalog rather than copies.
type Product struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"originalPrice,omitempty"`
	Discount       int               `json:"discount,omitempty"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand"`
	InStock        bool              `json:"inStock"`
	Prime          bool              `json:"prime"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
}

type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Image         string   `json:"image"`
	Subcategories []string `json:"subcategories,omitempty"`
}
