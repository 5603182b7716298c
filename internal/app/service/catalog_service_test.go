package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Kalpana12-cmd/amazon/internal/app/model"
	"github.com/Kalpana12-cmd/amazon/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher serves canned records or a canned error.
type stubFetcher struct {
	records []catalog.ProductRecord
	err     error
}

func (f *stubFetcher) FetchProducts(_ context.Context) ([]catalog.ProductRecord, error) {
	return f.records, f.err
}

func price(cents int64) *int64 {
	return &cents
}

func TestCatalogService_Load_Success(t *testing.T) {
	fetcher := &stubFetcher{records: []catalog.ProductRecord{
		{
			ID:         "p1",
			Name:       "Black and Gray Athletic Cotton Socks",
			Image:      "images/products/socks.jpg",
			Rating:     catalog.RatingRecord{Stars: 4.5, Count: 87},
			PriceCents: price(1090),
		},
		{
			ID:            "p2",
			Name:          "Adults Plain Cotton T-Shirt",
			Rating:        catalog.RatingRecord{Stars: 4.5, Count: 56},
			PriceCents:    price(799),
			Type:          "clothing",
			SizeChartLink: "images/clothing-size-chart.png",
		},
	}}

	catalogService := NewCatalogService(fetcher)
	require.NoError(t, catalogService.Load(context.Background()))

	assert.Equal(t, 2, catalogService.Len())

	p1, ok := catalogService.Get("p1")
	require.True(t, ok)
	assert.Equal(t, model.KindGeneric, p1.Kind)
	assert.Equal(t, int64(1090), p1.PriceCents)
	assert.Nil(t, p1.ExtraInfo())

	p2, ok := catalogService.Get("p2")
	require.True(t, ok)
	assert.Equal(t, model.KindClothing, p2.Kind)
	assert.Equal(t, map[string]string{"size_chart_ref": "images/clothing-size-chart.png"}, p2.ExtraInfo())
}

func TestCatalogService_Load_DropsMalformedRecords(t *testing.T) {
	fetcher := &stubFetcher{records: []catalog.ProductRecord{
		{ID: "", Name: "no id", PriceCents: price(100)},
		{ID: "no-price", Name: "no price"},
		{ID: "neg", Name: "negative price", PriceCents: price(-5)},
		{ID: "ok", Name: "fine", PriceCents: price(500)},
	}}

	catalogService := NewCatalogService(fetcher)
	require.NoError(t, catalogService.Load(context.Background()))

	// Malformed records are dropped, the batch survives
	assert.Equal(t, 1, catalogService.Len())
	_, ok := catalogService.Get("ok")
	assert.True(t, ok)
}

func TestCatalogService_Load_DropsDuplicateIDs(t *testing.T) {
	fetcher := &stubFetcher{records: []catalog.ProductRecord{
		{ID: "p1", Name: "first", PriceCents: price(100)},
		{ID: "p1", Name: "second", PriceCents: price(200)},
	}}

	catalogService := NewCatalogService(fetcher)
	require.NoError(t, catalogService.Load(context.Background()))

	assert.Equal(t, 1, catalogService.Len())
	p, _ := catalogService.Get("p1")
	assert.Equal(t, "first", p.Name)
}

func TestCatalogService_Load_FallbackOnFetchFailure(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}

	catalogService := NewCatalogService(fetcher)
	require.NoError(t, catalogService.Load(context.Background()))

	// The fallback catalog is never empty and well-formed
	products := catalogService.Products()
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.GreaterOrEqual(t, p.PriceCents, int64(0))
	}
}

func TestCatalogService_Load_ReplacesSnapshotWholesale(t *testing.T) {
	fetcher := &stubFetcher{records: []catalog.ProductRecord{
		{ID: "old", Name: "old product", PriceCents: price(100)},
	}}

	catalogService := NewCatalogService(fetcher)
	require.NoError(t, catalogService.Load(context.Background()))

	fetcher.records = []catalog.ProductRecord{
		{ID: "new", Name: "new product", PriceCents: price(200)},
	}
	require.NoError(t, catalogService.Load(context.Background()))

	// No merging of old and new catalogs
	assert.Equal(t, 1, catalogService.Len())
	_, ok := catalogService.Get("old")
	assert.False(t, ok)
	_, ok = catalogService.Get("new")
	assert.True(t, ok)
}

func TestCatalogService_StaleLoadDoesNotOverwriteNewer(t *testing.T) {
	svc := NewCatalogService(&stubFetcher{}).(*catalogService)

	// A load issued later installs first
	svc.install(2, []model.Product{{ID: "newer", PriceCents: 100}})

	// The earlier-issued load resolves afterwards and must be discarded
	svc.install(1, []model.Product{{ID: "older", PriceCents: 100}})

	_, ok := svc.Get("newer")
	assert.True(t, ok)
	_, ok = svc.Get("older")
	assert.False(t, ok)
}

func TestProduct_StarsImageRef(t *testing.T) {
	p := model.Product{Rating: model.Rating{Stars: 4.5}}
	assert.Equal(t, "images/ratings/rating-45.png", p.StarsImageRef())
}
