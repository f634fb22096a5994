package cart

import "github.com/rohitguptaaa/AmazeMart/internal/catalog"

// Qty is a pointer so an explicit 0 survives binding: setting a quantity
// below 1 is the defined way to remove a line.
type UpdateQtyRequest struct {
	Qty *int `json:"qty" binding:"required" validate:"required"`
}

type SetDrawerRequest struct {
	Open *bool `json:"open" binding:"required" validate:"required"`
}

type CartLineResponse struct {
	Product   catalog.Product `json:"product"`
	Qty       int             `json:"qty"`
	LineTotal float64         `json:"lineTotal"`
}

type CartDetailResponse struct {
	Items      []CartLineResponse `json:"items"`
	Total      float64            `json:"total"`
	Savings    float64            `json:"savings"`
	Count      int                `json:"count"`
	DrawerOpen bool               `json:"drawerOpen"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}
