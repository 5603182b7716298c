// Seeds the configured cart slot with line items, either from a JSON
// file (same array format the slot stores) or with a small demo cart.
//
// Usage: go run cmd/seed/main.go [items.json]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Kalpana12-cmd/amazon/config"
	"github.com/Kalpana12-cmd/amazon/internal/app/model"
	"github.com/Kalpana12-cmd/amazon/internal/app/repository"
	"github.com/Kalpana12-cmd/amazon/internal/db"
	"github.com/Kalpana12-cmd/amazon/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	var storage repository.CartStorage
	switch cfg.Storage.Backend {
	case "redis":
		if err := redis.Init(&cfg.Redis); err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		defer redis.Close()
		storage = repository.NewRedisStorage(redis.GetClient())
	case "postgres":
		if err := db.Initialize(&cfg.Database); err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()
		if err := db.Migrate(); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		storage = repository.NewPostgresStorage(db.GetDB())
	default:
		log.Fatal("Seeding the memory backend is pointless; set STORAGE_BACKEND to redis or postgres")
	}

	items := demoCart()
	if len(os.Args) > 1 {
		items, err = readItems(os.Args[1])
		if err != nil {
			log.Fatal("Failed to read items file:", err)
		}
	}

	if err := storage.Save(context.Background(), cfg.Storage.SlotKey, items); err != nil {
		log.Fatal("Failed to seed cart slot:", err)
	}

	fmt.Printf("Seeded %d line items into slot %q (%s backend)\n",
		len(items), cfg.Storage.SlotKey, cfg.Storage.Backend)
}

func readItems(path string) ([]model.CartLineItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var items []model.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func demoCart() []model.CartLineItem {
	return []model.CartLineItem{
		{ProductID: "e43638ce-6aa0-4b85-b27f-e1d07eb678c6", Quantity: 2, DeliveryOptionID: "1"},
		{ProductID: "15b6fc6f-327a-4ec4-896f-486349e85a3d", Quantity: 1, DeliveryOptionID: "2"},
	}
}
