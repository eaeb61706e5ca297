package models

import "time"

type Variant struct {
	SKU   string  `json:"sku"`
	Size  string  `json:"size,omitempty"`
	Color string  `json:"color,omitempty"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

type Product struct {
	ID          string     `json:"id"`
	ProductID   string     `json:"productId"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Brand       string     `json:"brand,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Variants    []Variant  `json:"variants"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Price of the first variant, which is what the storefront lists and sorts by.
func (p *Product) ListPrice() float64 {
	if len(p.Variants) == 0 {
		return 0
	}
	return p.Variants[0].Price
}

type ProductPage struct {
	Content       []Product `json:"content"`
	Number        int       `json:"number"`
	Size          int       `json:"size"`
	TotalPages    int       `json:"totalPages"`
	TotalElements int64     `json:"totalElements"`
}

type ProductQuery struct {
	Name     string
	Category string
	Page     int
	Size     int
	Sort     string
}
