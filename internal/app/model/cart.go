package model

// Quantity bounds for a single cart line item.
const (
	MinQuantity = 1
	MaxQuantity = 1000
)

// CartLineItem is one (product, quantity, delivery option) tuple in the
// cart. At most one line item exists per product id; adding the same
// product again merges quantities. The JSON tags are the persisted slot
// format, shared with the storefront frontend's localStorage schema.
type CartLineItem struct {
	ProductID        string `json:"productId"`
	Quantity         int    `json:"quantity"`
	DeliveryOptionID string `json:"deliveryOptionId"`
}
