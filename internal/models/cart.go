package models

type CartItem struct {
	SKU string `json:"sku"`
	Qty int    `json:"qty"`
}

// Cart as returned by the cart service. The storefront never stores it.
type Cart struct {
	ID         string     `json:"id,omitempty"`
	MemberID   string     `json:"memberId,omitempty"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalValue float64    `json:"totalValue"`
}

func EmptyCart() Cart {
	return Cart{Items: []CartItem{}}
}

// MemberID is the cart service's name for the cart owner; guests put their
// guest cart id there.
type AddItemRequest struct {
	SKU      string `json:"sku" validate:"required"`
	Qty      int    `json:"qty" validate:"required,gt=0"`
	MemberID string `json:"memberId,omitempty"`
}

type UpdateQuantityRequest struct {
	Qty      int    `json:"qty"`
	MemberID string `json:"memberId,omitempty"`
}

type CartCount struct {
	Count int `json:"count"`
}
