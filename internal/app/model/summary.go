package model

import "time"

// OrderSummaryLine joins one cart line item with its product and
// delivery option. Valid is false when the referenced product is absent
// from the current catalog snapshot; such lines stay enumerable so the
// frontend can still offer deletion, but they contribute nothing to the
// totals. Never persisted, recomputed on every render.
type OrderSummaryLine struct {
	ProductID         string            `json:"product_id"`
	Name              string            `json:"name"`
	ImageRef          string            `json:"image"`
	UnitPriceCents    int64             `json:"unit_price_cents"`
	Quantity          int               `json:"quantity"`
	SubtotalCents     int64             `json:"subtotal_cents"`
	DeliveryOptionID  string            `json:"delivery_option_id"`
	DeliveryFeeCents  int64             `json:"delivery_fee_cents"`
	EstimatedDelivery time.Time         `json:"estimated_delivery"`
	ExtraInfo         map[string]string `json:"extra_info,omitempty"`
	Valid             bool              `json:"valid"`
}

// OrderSummaryProjection is the render-ready view of the whole cart.
// All monetary values are integer minor units.
type OrderSummaryProjection struct {
	Lines            []OrderSummaryLine `json:"lines"`
	ItemCount        int                `json:"item_count"` // total quantity across valid lines
	CartTotalCents   int64              `json:"cart_total_cents"`
	DeliveryFeeCents int64              `json:"delivery_fee_cents"`
	TaxCents         int64              `json:"tax_cents"`
	GrandTotalCents  int64              `json:"grand_total_cents"`
}
