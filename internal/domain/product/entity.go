// internal/domain/product/entity.go
package product

import "voltmart/internal/domain/i18n"

// Product is the read model of a commerce-API product record.
// The API owns the shape; this is the typed boundary for it.
type Product struct {
	ID          int64     `json:"id"`
	Name        i18n.Text `json:"name"`
	Description i18n.Text `json:"description"`
	Price       float64   `json:"price"`
	PictureID   int64     `json:"pictureId"`
	CategoryID  int64     `json:"categoryId"`
	IsPopular   bool      `json:"isPopular"`
	InStock     bool      `json:"inStock"`
}

// Page is one page of a product listing.
type Page struct {
	Content       []Product `json:"content"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
}

// PriceRange is the server-reported slider range for the catalog price filter.
// Distinct from the selected range in a catalog query.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
