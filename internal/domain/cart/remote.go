// internal/domain/cart/remote.go
package cart

import "voltmart/internal/domain/i18n"

// RemoteLine is one line of the server-side cart of an authenticated user.
// Display data and totals are server-computed and authoritative.
type RemoteLine struct {
	ProductID int64     `json:"productId"`
	Name      i18n.Text `json:"name"`
	UnitPrice float64   `json:"price"`
	Qty       int       `json:"qty"`
	PictureID int64     `json:"pictureId"`
}

// RemoteCart is the typed read model of the commerce API's cart payload.
type RemoteCart struct {
	Lines []RemoteLine `json:"lines"`
	Total float64      `json:"total"`
}
