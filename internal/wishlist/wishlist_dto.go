package wishlist

import "github.com/rohitguptaaa/AmazeMart/internal/catalog"

type WishlistResponse struct {
	Items []catalog.Product `json:"items"`
	Count int               `json:"count"`
}

type MembershipResponse struct {
	ProductID  string `json:"productId"`
	InWishlist bool   `json:"inWishlist"`
}
