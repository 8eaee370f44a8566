// internal/application/query/storefront/catalog_query.go
package storefront

import (
	"context"
	"sort"

	dto "voltmart/internal/application/query/storefront/dto"

	"voltmart/internal/domain/catalog"
	"voltmart/internal/domain/i18n"
	"voltmart/internal/domain/product"
)

// CatalogGateway is the outbound port to the commerce API's catalog surface.
type CatalogGateway interface {
	Categories(ctx context.Context) ([]catalog.CategoryNode, error)
	SearchProducts(ctx context.Context, q catalog.Query) (product.Page, error)
	PopularProducts(ctx context.Context) ([]product.Product, error)
	MaxPrice(ctx context.Context) (product.PriceRange, error)
}

// CatalogQuery serves one-shot catalog reads: listing pages, the category
// tree with its default expanded set, and the price slider range.
type CatalogQuery struct {
	Gateway CatalogGateway
}

func NewCatalogQuery(gateway CatalogGateway) *CatalogQuery {
	return &CatalogQuery{Gateway: gateway}
}

// Products fetches one localized listing page for q.
func (s *CatalogQuery) Products(ctx context.Context, q catalog.Query, locale i18n.Locale) (dto.ProductPageDTO, error) {
	page, err := s.Gateway.SearchProducts(ctx, q)
	if err != nil {
		return dto.ProductPageDTO{}, err
	}
	return localizePage(page, locale), nil
}

// Popular fetches the localized landing-page selection.
func (s *CatalogQuery) Popular(ctx context.Context, locale i18n.Locale) ([]dto.ProductDTO, error) {
	products, err := s.Gateway.PopularProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, localizeProduct(p, locale))
	}
	return out, nil
}

// CategoryTree fetches the tree and pre-computes the fully-open expanded set.
func (s *CatalogQuery) CategoryTree(ctx context.Context) (dto.CategoryTreeDTO, error) {
	roots, err := s.Gateway.Categories(ctx)
	if err != nil {
		return dto.CategoryTreeDTO{}, err
	}

	ids := catalog.CollectAllIDs(roots)
	expanded := make([]int64, 0, len(ids))
	for id := range ids {
		expanded = append(expanded, id)
	}
	sort.Slice(expanded, func(i, j int) bool { return expanded[i] < expanded[j] })

	return dto.CategoryTreeDTO{Roots: roots, ExpandedIDs: expanded}, nil
}

// SliderRange fetches the server-reported bounds for the price filter.
// Distinct from the selected range; selections are not clamped against it.
func (s *CatalogQuery) SliderRange(ctx context.Context) (dto.PriceRangeDTO, error) {
	pr, err := s.Gateway.MaxPrice(ctx)
	if err != nil {
		return dto.PriceRangeDTO{}, err
	}
	return dto.PriceRangeDTO{Min: pr.Min, Max: pr.Max}, nil
}

func localizePage(page product.Page, locale i18n.Locale) dto.ProductPageDTO {
	out := dto.ProductPageDTO{
		Content:       make([]dto.ProductDTO, 0, len(page.Content)),
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
	for _, p := range page.Content {
		out.Content = append(out.Content, localizeProduct(p, locale))
	}
	return out
}

func localizeProduct(p product.Product, locale i18n.Locale) dto.ProductDTO {
	return dto.ProductDTO{
		ID:          p.ID,
		Name:        p.Name.Pick(locale),
		Description: p.Description.Pick(locale),
		Price:       p.Price,
		PictureID:   p.PictureID,
		CategoryID:  p.CategoryID,
		IsPopular:   p.IsPopular,
		InStock:     p.InStock,
	}
}
