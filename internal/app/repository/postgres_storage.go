package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Kalpana12-cmd/amazon/internal/app/model"
	"github.com/Kalpana12-cmd/amazon/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresStorage implements CartStorage on a keyed payload table.
type PostgresStorage struct {
	db *gorm.DB
}

// NewPostgresStorage creates a database-backed cart storage
func NewPostgresStorage(db *gorm.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) Save(ctx context.Context, key string, items []model.CartLineItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart slot failed: %w", err)
	}

	slot := model.CartSlot{
		SlotKey: key,
		Payload: string(payload),
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&slot).Error
	if err != nil {
		logger.Error("Failed to write cart slot to database", err, map[string]interface{}{
			"key": key,
		})
		return err
	}

	logger.Debug("Cart slot written to database", map[string]interface{}{
		"key":   key,
		"count": len(items),
	})
	return nil
}

func (s *PostgresStorage) Load(ctx context.Context, key string) ([]model.CartLineItem, error) {
	var slot model.CartSlot
	err := s.db.WithContext(ctx).First(&slot, "slot_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		logger.Error("Failed to read cart slot from database", err, map[string]interface{}{
			"key": key,
		})
		return nil, err
	}

	var items []model.CartLineItem
	if err := json.Unmarshal([]byte(slot.Payload), &items); err != nil {
		return nil, fmt.Errorf("unmarshal cart slot failed: %w", err)
	}

	return items, nil
}
