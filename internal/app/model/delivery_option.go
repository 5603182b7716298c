package model

import "time"

// DeliveryOption is a static shipping tier: a day offset and a fee.
type DeliveryOption struct {
	ID           string `json:"id"`
	DeliveryDays int    `json:"delivery_days"`
	FeeCents     int64  `json:"fee_cents"`
}

// DefaultDeliveryOptionID is the baseline tier assigned when a line
// item has no delivery option, and the deterministic fallback when a
// persisted id no longer resolves.
const DefaultDeliveryOptionID = "1"

// DefaultDeliveryOptions returns the static tier set.
func DefaultDeliveryOptions() []DeliveryOption {
	return []DeliveryOption{
		{ID: "1", DeliveryDays: 7, FeeCents: 0},
		{ID: "2", DeliveryDays: 3, FeeCents: 499},
		{ID: "3", DeliveryDays: 1, FeeCents: 999},
	}
}

// EstimatedDelivery returns the estimated delivery date counted from
// the given time.
func (o DeliveryOption) EstimatedDelivery(from time.Time) time.Time {
	return from.AddDate(0, 0, o.DeliveryDays)
}
