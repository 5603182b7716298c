package repository

import (
	"context"
	"errors"

	"github.com/Kalpana12-cmd/amazon/internal/app/model"
)

// ErrSlotEmpty is returned by Load when the slot holds no value yet.
var ErrSlotEmpty = errors.New("cart slot is empty")

// CartStorage persists the full cart line-item set under a single
// string key. The stored form is a JSON array of
// {productId, quantity, deliveryOptionId} objects, the same schema the
// storefront frontend keeps in localStorage. Save always writes the
// whole set; there are no partial updates.
type CartStorage interface {
	Save(ctx context.Context, key string, items []model.CartLineItem) error
	Load(ctx context.Context, key string) ([]model.CartLineItem, error)
}
