// internal/adapters/out/commerce/admin.go
package commerce

import (
	"context"
	"net/http"
	"strconv"

	"voltmart/internal/domain/i18n"
)

// Admin console endpoints, proxied with the operator's bearer token. The
// commerce API enforces authorization; the console only passes the token
// through.

// AdminProduct is the write model for console product management.
type AdminProduct struct {
	ID          int64     `json:"id,omitempty"`
	Name        i18n.Text `json:"name"`
	Description i18n.Text `json:"description"`
	Price       float64   `json:"price"`
	PictureID   int64     `json:"pictureId"`
	CategoryID  int64     `json:"categoryId"`
	IsPopular   bool      `json:"isPopular"`
}

// AdminCategory is the write model for console category management.
type AdminCategory struct {
	ID          int64  `json:"id,omitempty"`
	ParentID    int64  `json:"parentId,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (c *Client) CreateProduct(ctx context.Context, bearer string, p AdminProduct) error {
	return c.doJSON(ctx, http.MethodPost, "/product", bearer, p, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, bearer string, p AdminProduct) error {
	return c.doJSON(ctx, http.MethodPut, "/product", bearer, p, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, bearer string, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/product/"+strconv.FormatInt(id, 10), bearer, nil, nil)
}

func (c *Client) CreateCategory(ctx context.Context, bearer string, cat AdminCategory) error {
	return c.doJSON(ctx, http.MethodPost, "/category", bearer, cat, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, bearer string, cat AdminCategory) error {
	return c.doJSON(ctx, http.MethodPut, "/category", bearer, cat, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, bearer string, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/category/"+strconv.FormatInt(id, 10), bearer, nil, nil)
}
