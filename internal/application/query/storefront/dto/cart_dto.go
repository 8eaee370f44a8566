// internal/application/query/storefront/dto/cart_dto.go
package dto

// Cart view modes.
const (
	CartModeGuest   = "guest"
	CartModeAccount = "account"
)

// CartLineDTO is one displayed cart line with resolved display data.
type CartLineDTO struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Qty       int     `json:"qty"`
	LineTotal float64 `json:"lineTotal"`
	PictureID int64   `json:"pictureId,omitempty"`
}

// CartViewDTO is the single cart view presented regardless of auth state.
// In account mode the total is server-computed and authoritative; in guest
// mode it is the local sum of unitPrice x qty.
type CartViewDTO struct {
	Mode  string        `json:"mode"`
	Lines []CartLineDTO `json:"lines"`
	Total float64       `json:"total"`
}
