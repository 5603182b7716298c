package model

import "time"

// CartSlot is the database row backing one persisted cart. Payload
// holds the JSON line-item array, the same format the Redis and
// in-memory backends store.
type CartSlot struct {
	SlotKey   string    `gorm:"primaryKey" json:"slot_key"`
	Payload   string    `gorm:"type:text;not null" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CartSlot) TableName() string {
	return "cart_slots"
}
