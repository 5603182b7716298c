package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Kalpana12-cmd/amazon/internal/app/model"
	"github.com/Kalpana12-cmd/amazon/internal/app/repository"
	"github.com/Kalpana12-cmd/amazon/internal/app/service"
	"github.com/Kalpana12-cmd/amazon/pkg/catalog"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedFetcher struct {
	records []catalog.ProductRecord
}

func (f *fixedFetcher) FetchProducts(_ context.Context) ([]catalog.ProductRecord, error) {
	return f.records, nil
}

func cents(v int64) *int64 { return &v }

func setupSummaryControllerTest(t *testing.T) (service.CartService, *gin.Engine) {
	t.Helper()

	catalogService := service.NewCatalogService(&fixedFetcher{records: []catalog.ProductRecord{
		{ID: "p1", Name: "Socks", PriceCents: cents(1999)},
		{ID: "p2", Name: "Basketball", PriceCents: cents(500)},
	}})
	require.NoError(t, catalogService.Load(context.Background()))

	storage := repository.NewMemoryStorage()
	cartService := service.NewCartService(storage, "cart-test", model.DefaultDeliveryOptions())
	summaryService := service.NewSummaryService(0)
	summaryController := NewSummaryController(cartService, catalogService, summaryService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/order-summary", summaryController.GetOrderSummary)
	router.GET("/delivery-options", summaryController.ListDeliveryOptions)

	return cartService, router
}

func TestSummaryController_GetOrderSummary(t *testing.T) {
	cartService, router := setupSummaryControllerTest(t)
	require.NoError(t, cartService.Add(context.Background(), "p1", 2))
	require.NoError(t, cartService.Add(context.Background(), "p2", 1))

	w := doJSON(t, router, http.MethodGet, "/order-summary", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var projection model.OrderSummaryProjection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projection))

	require.Len(t, projection.Lines, 2)
	assert.Equal(t, int64(4498), projection.CartTotalCents)
	assert.Equal(t, int64(4498), projection.GrandTotalCents)
}

func TestSummaryController_RenderAfterDelete(t *testing.T) {
	cartService, router := setupSummaryControllerTest(t)
	require.NoError(t, cartService.Add(context.Background(), "p1", 2))
	require.NoError(t, cartService.Add(context.Background(), "p2", 1))

	require.NoError(t, cartService.Remove(context.Background(), "p1"))

	w := doJSON(t, router, http.MethodGet, "/order-summary", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var projection model.OrderSummaryProjection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projection))

	require.Len(t, projection.Lines, 1)
	assert.Equal(t, "p2", projection.Lines[0].ProductID)
}

func TestSummaryController_ListDeliveryOptions(t *testing.T) {
	_, router := setupSummaryControllerTest(t)

	w := doJSON(t, router, http.MethodGet, "/delivery-options", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		DeliveryOptions []model.DeliveryOption `json:"delivery_options"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.DeliveryOptions, 3)
}
