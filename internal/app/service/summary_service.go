package service

import (
	"time"

	"github.com/Kalpana12-cmd/amazon/internal/app/model"
)

// ProductLookup resolves a product id against a catalog snapshot.
// CatalogService satisfies it.
type ProductLookup interface {
	Get(id string) (model.Product, bool)
}

// SummaryService derives the order summary projection. Render is a pure
// function of its inputs: it performs no I/O, holds no state and never
// mutates the cart. Mutation intents raised from the rendered view go
// straight to CartService; the caller re-renders afterwards.
type SummaryService interface {
	Render(items []model.CartLineItem, lookup ProductLookup, options []model.DeliveryOption, now time.Time) model.OrderSummaryProjection
}

type summaryService struct {
	taxRateBps int64
}

// NewSummaryService creates a summary service applying the given tax
// rate in basis points (1000 = 10%).
func NewSummaryService(taxRateBps int64) SummaryService {
	return &summaryService{taxRateBps: taxRateBps}
}

func (s *summaryService) Render(items []model.CartLineItem, lookup ProductLookup, options []model.DeliveryOption, now time.Time) model.OrderSummaryProjection {
	optionIndex := make(map[string]model.DeliveryOption, len(options))
	var baseline model.DeliveryOption
	for _, opt := range options {
		optionIndex[opt.ID] = opt
		if opt.ID == model.DefaultDeliveryOptionID {
			baseline = opt
		}
	}

	projection := model.OrderSummaryProjection{
		Lines: make([]model.OrderSummaryLine, 0, len(items)),
	}

	for _, item := range items {
		// Unknown persisted option ids resolve to the baseline tier,
		// deterministically.
		option, ok := optionIndex[item.DeliveryOptionID]
		if !ok {
			option = baseline
		}

		line := model.OrderSummaryLine{
			ProductID:         item.ProductID,
			Quantity:          item.Quantity,
			DeliveryOptionID:  option.ID,
			DeliveryFeeCents:  option.FeeCents,
			EstimatedDelivery: option.EstimatedDelivery(now),
		}

		product, found := lookup.Get(item.ProductID)
		if !found {
			// Dangling reference: enumerable so the view can still offer
			// deletion, but excluded from every total.
			projection.Lines = append(projection.Lines, line)
			continue
		}

		line.Valid = true
		line.Name = product.Name
		line.ImageRef = product.ImageRef
		line.UnitPriceCents = product.PriceCents
		line.SubtotalCents = product.PriceCents * int64(item.Quantity)
		line.ExtraInfo = product.ExtraInfo()

		projection.Lines = append(projection.Lines, line)
		projection.ItemCount += item.Quantity
		projection.CartTotalCents += line.SubtotalCents
		projection.DeliveryFeeCents += option.FeeCents
	}

	taxable := projection.CartTotalCents + projection.DeliveryFeeCents
	projection.TaxCents = roundHalfUpBps(taxable, s.taxRateBps)
	projection.GrandTotalCents = taxable + projection.TaxCents

	return projection
}

// roundHalfUpBps applies a basis-point rate with half-up rounding to
// the nearest minor unit. Integer math only, so repeated renders never
// drift.
func roundHalfUpBps(amountCents, rateBps int64) int64 {
	return (amountCents*rateBps + 5000) / 10000
}
