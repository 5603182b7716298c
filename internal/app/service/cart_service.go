package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Kalpana12-cmd/amazon/internal/app/model"
	"github.com/Kalpana12-cmd/amazon/internal/app/repository"
	"github.com/Kalpana12-cmd/amazon/pkg/logger"
)

var (
	ErrInvalidQuantity       = errors.New("quantity must be between 1 and 1000")
	ErrItemNotFound          = errors.New("cart item not found")
	ErrInvalidDeliveryOption = errors.New("unknown delivery option")
)

// CartService owns the canonical line-item list. Every mutation
// validates its input, computes the new state, persists the full set
// through storage and only then commits it in memory, so a successful
// call is never lost and a failed persist leaves the cart unchanged.
type CartService interface {
	Add(ctx context.Context, productID string, quantity int) error
	SetQuantity(ctx context.Context, productID string, quantity int) error
	SetDeliveryOption(ctx context.Context, productID, optionID string) error
	Remove(ctx context.Context, productID string) error
	Clear(ctx context.Context) error
	Items() []model.CartLineItem
	TotalQuantity() int
	LoadFromStorage(ctx context.Context) error
}

type cartService struct {
	storage repository.CartStorage
	slotKey string
	options map[string]model.DeliveryOption

	mu    sync.Mutex
	items []model.CartLineItem
}

// NewCartService creates a cart service persisting to the given storage
// slot, validating delivery option ids against the given option set.
func NewCartService(storage repository.CartStorage, slotKey string, options []model.DeliveryOption) CartService {
	optionIndex := make(map[string]model.DeliveryOption, len(options))
	for _, opt := range options {
		optionIndex[opt.ID] = opt
	}
	return &cartService{
		storage: storage,
		slotKey: slotKey,
		options: optionIndex,
	}
}

func (s *cartService) Add(ctx context.Context, productID string, quantity int) error {
	if quantity < model.MinQuantity || quantity > model.MaxQuantity {
		logger.Warn("Rejecting add to cart: invalid quantity", map[string]interface{}{
			"product_id": productID,
			"quantity":   quantity,
		})
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.copyItems()
	merged := false
	for i := range next {
		if next[i].ProductID != productID {
			continue
		}
		total := next[i].Quantity + quantity
		if total > model.MaxQuantity {
			// Documented policy: merged quantity is clamped, not rejected.
			logger.Warn("Clamping merged cart quantity", map[string]interface{}{
				"product_id": productID,
				"requested":  total,
				"clamped":    model.MaxQuantity,
			})
			total = model.MaxQuantity
		}
		next[i].Quantity = total
		merged = true
		break
	}
	if !merged {
		next = append(next, model.CartLineItem{
			ProductID:        productID,
			Quantity:         quantity,
			DeliveryOptionID: model.DefaultDeliveryOptionID,
		})
	}

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	logger.Info("Item added to cart", map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
		"merged":     merged,
	})
	return nil
}

func (s *cartService) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < model.MinQuantity || quantity > model.MaxQuantity {
		logger.Warn("Rejecting quantity update: invalid quantity", map[string]interface{}{
			"product_id": productID,
			"quantity":   quantity,
		})
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.copyItems()
	found := false
	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		logger.Warn("Quantity update for missing cart item", map[string]interface{}{
			"product_id": productID,
		})
		return ErrItemNotFound
	}

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	logger.Info("Cart quantity updated", map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
	})
	return nil
}

func (s *cartService) SetDeliveryOption(ctx context.Context, productID, optionID string) error {
	if _, ok := s.options[optionID]; !ok {
		logger.Warn("Rejecting delivery option update: unknown option", map[string]interface{}{
			"product_id":         productID,
			"delivery_option_id": optionID,
		})
		return ErrInvalidDeliveryOption
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.copyItems()
	found := false
	for i := range next {
		if next[i].ProductID == productID {
			next[i].DeliveryOptionID = optionID
			found = true
			break
		}
	}
	if !found {
		logger.Warn("Delivery option update for missing cart item", map[string]interface{}{
			"product_id": productID,
		})
		return ErrItemNotFound
	}

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	logger.Info("Cart delivery option updated", map[string]interface{}{
		"product_id":         productID,
		"delivery_option_id": optionID,
	})
	return nil
}

// Remove deletes the line item for the product. Removing an absent
// product is a no-op, so deletes are idempotent.
func (s *cartService) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.copyItems()
	found := false
	for i := range next {
		if next[i].ProductID == productID {
			next = append(next[:i], next[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		logger.Debug("Remove for absent cart item ignored", map[string]interface{}{
			"product_id": productID,
		})
		return nil
	}

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	logger.Info("Cart item removed", map[string]interface{}{
		"product_id": productID,
	})
	return nil
}

func (s *cartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, []model.CartLineItem{}); err != nil {
		return err
	}

	logger.Info("Cart cleared", nil)
	return nil
}

// Items returns the line items in stable insertion order.
func (s *cartService) Items() []model.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItems()
}

// TotalQuantity returns the summed quantity across all line items, the
// value shown on the cart badge.
func (s *cartService) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// LoadFromStorage replaces the in-memory cart with the persisted set.
// An empty or corrupt slot resets to an empty cart instead of failing;
// only backend errors (storage unreachable) propagate.
func (s *cartService) LoadFromStorage(ctx context.Context) error {
	items, err := s.storage.Load(ctx, s.slotKey)
	if err != nil {
		if errors.Is(err, repository.ErrSlotEmpty) {
			s.reset(nil)
			return nil
		}
		if isCorruptPayload(err) {
			logger.Warn("Cart slot is corrupt, resetting to empty cart", map[string]interface{}{
				"key":   s.slotKey,
				"error": err.Error(),
			})
			s.reset(nil)
			return nil
		}
		logger.Error("Failed to load cart from storage", err, map[string]interface{}{
			"key": s.slotKey,
		})
		return err
	}

	s.reset(s.normalizeItems(items))
	return nil
}

// isCorruptPayload tells apart a decodable-but-broken slot from a
// backend failure.
func isCorruptPayload(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

// normalizeItems repairs entries read from storage so a poisoned slot
// can never violate in-memory invariants: duplicate product ids merge,
// out-of-range quantities are clamped or dropped, and unknown delivery
// options reset to the baseline.
func (s *cartService) normalizeItems(items []model.CartLineItem) []model.CartLineItem {
	normalized := make([]model.CartLineItem, 0, len(items))
	position := make(map[string]int, len(items))
	for _, item := range items {
		if item.Quantity < model.MinQuantity {
			logger.Warn("Dropping persisted cart item with invalid quantity", map[string]interface{}{
				"product_id": item.ProductID,
				"quantity":   item.Quantity,
			})
			continue
		}
		if item.Quantity > model.MaxQuantity {
			item.Quantity = model.MaxQuantity
		}
		if _, known := s.options[item.DeliveryOptionID]; !known {
			item.DeliveryOptionID = model.DefaultDeliveryOptionID
		}
		if idx, seen := position[item.ProductID]; seen {
			merged := normalized[idx].Quantity + item.Quantity
			if merged > model.MaxQuantity {
				merged = model.MaxQuantity
			}
			normalized[idx].Quantity = merged
			continue
		}
		position[item.ProductID] = len(normalized)
		normalized = append(normalized, item)
	}
	return normalized
}

func (s *cartService) reset(items []model.CartLineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items

	logger.Debug("Cart state replaced from storage", map[string]interface{}{
		"count": len(items),
	})
}

// persist writes the candidate state and commits it in memory only on
// success. Callers must hold the mutex.
func (s *cartService) persist(ctx context.Context, next []model.CartLineItem) error {
	if err := s.storage.Save(ctx, s.slotKey, next); err != nil {
		logger.Error("Failed to persist cart, mutation rolled back", err, map[string]interface{}{
			"key": s.slotKey,
		})
		return err
	}
	s.items = next
	return nil
}

func (s *cartService) copyItems() []model.CartLineItem {
	items := make([]model.CartLineItem, len(s.items))
	copy(items, s.items)
	return items
}
