// internal/application/query/storefront/dto/catalog_dto.go
package dto

import "voltmart/internal/domain/catalog"

// ProductDTO is one localized product card.
type ProductDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	PictureID   int64   `json:"pictureId,omitempty"`
	CategoryID  int64   `json:"categoryId,omitempty"`
	IsPopular   bool    `json:"isPopular,omitempty"`
	InStock     bool    `json:"inStock"`
}

// ProductPageDTO is one localized listing page.
type ProductPageDTO struct {
	Content       []ProductDTO `json:"content"`
	TotalElements int64        `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
}

// CategoryTreeDTO carries the read-only tree plus the ids used to default
// the expanded UI state (every node, so the tree renders fully open).
type CategoryTreeDTO struct {
	Roots       []catalog.CategoryNode `json:"roots"`
	ExpandedIDs []int64                `json:"expandedIds"`
}

// PriceRangeDTO is the slider range for the price filter.
type PriceRangeDTO struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
