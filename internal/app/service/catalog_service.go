package service

import (
	"context"
	"sync"

	"github.com/Kalpana12-cmd/amazon/internal/app/model"
	"github.com/Kalpana12-cmd/amazon/pkg/catalog"
	"github.com/Kalpana12-cmd/amazon/pkg/logger"
)

// CatalogFetcher fetches raw product records from the remote catalog.
type CatalogFetcher interface {
	FetchProducts(ctx context.Context) ([]catalog.ProductRecord, error)
}

// CatalogService owns the current catalog snapshot. Load replaces the
// snapshot wholesale; readers always see either the previous complete
// snapshot or the new one, never a half-built catalog.
type CatalogService interface {
	Load(ctx context.Context) error
	Products() []model.Product
	Get(id string) (model.Product, bool)
	Len() int
}

type catalogService struct {
	fetcher CatalogFetcher

	mu        sync.RWMutex
	products  []model.Product
	index     map[string]model.Product
	installed uint64 // generation of the installed snapshot

	genMu  sync.Mutex
	issued uint64 // generation counter handed to each Load
}

// NewCatalogService creates a catalog service backed by the given
// fetcher. The snapshot is empty until the first Load.
func NewCatalogService(fetcher CatalogFetcher) CatalogService {
	return &catalogService{
		fetcher: fetcher,
		index:   make(map[string]model.Product),
	}
}

// FallbackCatalog returns the fixed catalog installed when the remote
// endpoint is unreachable or serves garbage. It is never empty, so
// rendering downstream always has a consistent input.
func FallbackCatalog() []model.Product {
	return []model.Product{
		{
			ID:           "1",
			Name:         "Fallback Product",
			ImageRef:     "images/products/shirt.jpg",
			Rating:       model.Rating{Stars: 4.5, Count: 120},
			PriceCents:   1999,
			Kind:         model.KindClothing,
			SizeChartRef: "#",
		},
	}
}

// Load fetches the remote catalog and installs it. Fetch failures are
// recovered by installing the fallback catalog; Load itself never
// fails. When overlapping loads race, the one issued last wins even if
// an earlier one resolves later.
func (s *catalogService) Load(ctx context.Context) error {
	s.genMu.Lock()
	s.issued++
	gen := s.issued
	s.genMu.Unlock()

	records, err := s.fetcher.FetchProducts(ctx)
	if err != nil {
		logger.Warn("Catalog fetch failed, installing fallback catalog", map[string]interface{}{
			"error": err.Error(),
		})
		s.install(gen, FallbackCatalog())
		return nil
	}

	products := make([]model.Product, 0, len(records))
	seen := make(map[string]bool, len(records))
	dropped := 0
	for _, record := range records {
		product, ok := mapRecord(record)
		if !ok {
			dropped++
			logger.Warn("Dropping malformed catalog record", map[string]interface{}{
				"id":   record.ID,
				"name": record.Name,
			})
			continue
		}
		if seen[product.ID] {
			dropped++
			logger.Warn("Dropping duplicate catalog record", map[string]interface{}{
				"id": product.ID,
			})
			continue
		}
		seen[product.ID] = true
		products = append(products, product)
	}

	s.install(gen, products)

	logger.Info("Catalog loaded", map[string]interface{}{
		"count":   len(products),
		"dropped": dropped,
	})
	return nil
}

// mapRecord converts a raw record into a Product. Records missing the
// id or price are rejected.
func mapRecord(record catalog.ProductRecord) (model.Product, bool) {
	if record.ID == "" || record.PriceCents == nil || *record.PriceCents < 0 {
		return model.Product{}, false
	}

	kind := model.KindGeneric
	if record.Type == "clothing" {
		kind = model.KindClothing
	}

	return model.Product{
		ID:           record.ID,
		Name:         record.Name,
		ImageRef:     record.Image,
		Rating:       model.Rating{Stars: record.Rating.Stars, Count: record.Rating.Count},
		PriceCents:   *record.PriceCents,
		Kind:         kind,
		SizeChartRef: record.SizeChartLink,
	}, true
}

// install swaps in a snapshot unless a later-issued load already
// installed one.
func (s *catalogService) install(gen uint64, products []model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen < s.installed {
		logger.Debug("Discarding stale catalog load", map[string]interface{}{
			"generation": gen,
			"installed":  s.installed,
		})
		return
	}

	index := make(map[string]model.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}

	s.products = products
	s.index = index
	s.installed = gen
}

func (s *catalogService) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]model.Product, len(s.products))
	copy(products, s.products)
	return products
}

func (s *catalogService) Get(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.index[id]
	return product, ok
}

func (s *catalogService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
