package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchProducts_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"p1","image":"images/products/socks.jpg","name":"Socks",
			 "rating":{"stars":4.5,"count":87},"priceCents":1090,"type":""},
			{"id":"p2","name":"T-Shirt","rating":{"stars":4.5,"count":56},
			 "priceCents":799,"type":"clothing","sizeChartLink":"images/size-chart.png"}
		]`))
	}))
	defer server.Close()

	client, err := NewClient(Config{EndpointURL: server.URL})
	require.NoError(t, err)

	records, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "p1", records[0].ID)
	require.NotNil(t, records[0].PriceCents)
	assert.Equal(t, int64(1090), *records[0].PriceCents)
	assert.Equal(t, 4.5, records[0].Rating.Stars)

	assert.Equal(t, "clothing", records[1].Type)
	assert.Equal(t, "images/size-chart.png", records[1].SizeChartLink)
}

func TestClient_FetchProducts_MissingPriceIsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"p1","name":"no price"}]`))
	}))
	defer server.Close()

	client, err := NewClient(Config{EndpointURL: server.URL})
	require.NoError(t, err)

	records, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].PriceCents)
}

func TestClient_FetchProducts_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(Config{EndpointURL: server.URL})
	require.NoError(t, err)

	_, err = client.FetchProducts(context.Background())
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestClient_FetchProducts_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{EndpointURL: server.URL})
	require.NoError(t, err)

	_, err = client.FetchProducts(context.Background())
	assert.ErrorIs(t, err, ErrMalformedBody)
}

func TestClient_FetchProducts_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client, err := NewClient(Config{EndpointURL: server.URL})
	require.NoError(t, err)

	_, err = client.FetchProducts(context.Background())
	assert.Error(t, err)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
