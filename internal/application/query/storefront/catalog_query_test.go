package storefront

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltmart/internal/domain/catalog"
	"voltmart/internal/domain/i18n"
	"voltmart/internal/domain/product"
)

type stubCatalogGateway struct {
	fakeCatalogGateway
	roots   []catalog.CategoryNode
	popular []product.Product
	rng     product.PriceRange
}

func (s *stubCatalogGateway) Categories(context.Context) ([]catalog.CategoryNode, error) {
	return s.roots, nil
}

func (s *stubCatalogGateway) PopularProducts(context.Context) ([]product.Product, error) {
	return s.popular, nil
}

func (s *stubCatalogGateway) MaxPrice(context.Context) (product.PriceRange, error) {
	return s.rng, nil
}

func TestCategoryTreeExpandsEveryNode(t *testing.T) {
	gw := &stubCatalogGateway{roots: []catalog.CategoryNode{
		{ID: 1, Name: "Cables", Children: []catalog.CategoryNode{
			{ID: 3, Name: "Type 2"},
			{ID: 5, Name: "CCS", Children: []catalog.CategoryNode{{ID: 9, Name: "Adapters"}}},
		}},
		{ID: 2, Name: "Chargers"},
	}}
	q := NewCatalogQuery(gw)

	tree, err := q.CategoryTree(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 5, 9}, tree.ExpandedIDs)
	assert.Len(t, tree.Roots, 2)
}

func TestProductsLocalized(t *testing.T) {
	gw := &stubCatalogGateway{}
	gw.pages = map[string]product.Page{"": {
		Content: []product.Product{
			{ID: 1, Name: i18n.Text{EN: "Cable", RU: "Кабель"}, Price: 99},
			{ID: 2, Name: i18n.Text{EN: "Charger"}, Price: 499},
		},
		TotalElements: 2,
		TotalPages:    1,
	}}
	q := NewCatalogQuery(gw)

	page, err := q.Products(context.Background(), catalog.DefaultQuery(), i18n.LocaleRU)
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "Кабель", page.Content[0].Name)
	// ru gap falls back to en
	assert.Equal(t, "Charger", page.Content[1].Name)
	assert.Equal(t, int64(2), page.TotalElements)
}

func TestPopularAndSliderRange(t *testing.T) {
	gw := &stubCatalogGateway{
		popular: []product.Product{{ID: 1, Name: i18n.Text{EN: "Cable"}, Price: 99, IsPopular: true}},
		rng:     product.PriceRange{Max: 1500},
	}
	q := NewCatalogQuery(gw)

	popular, err := q.Popular(context.Background(), i18n.LocaleEN)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.True(t, popular[0].IsPopular)

	rng, err := q.SliderRange(context.Background())
	require.NoError(t, err)
	assert.Zero(t, rng.Min)
	assert.InDelta(t, 1500, rng.Max, 1e-9)
}
