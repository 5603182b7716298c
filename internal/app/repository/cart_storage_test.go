package repository

import (
	"context"
	"testing"

	"github.com/Kalpana12-cmd/amazon/internal/app/model"
	"github.com/Kalpana12-cmd/amazon/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []model.CartLineItem {
	return []model.CartLineItem{
		{ProductID: "p1", Quantity: 2, DeliveryOptionID: "1"},
		{ProductID: "p2", Quantity: 1, DeliveryOptionID: "2"},
	}
}

func TestMemoryStorage_RoundTrip(t *testing.T) {
	storage := NewMemoryStorage()

	require.NoError(t, storage.Save(context.Background(), "cart", sampleItems()))

	items, err := storage.Load(context.Background(), "cart")
	require.NoError(t, err)
	assert.Equal(t, sampleItems(), items)
}

func TestMemoryStorage_EmptySlot(t *testing.T) {
	storage := NewMemoryStorage()

	_, err := storage.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestMemoryStorage_SaveIsolatesCallerSlice(t *testing.T) {
	storage := NewMemoryStorage()

	items := sampleItems()
	require.NoError(t, storage.Save(context.Background(), "cart", items))

	// Mutating the caller's slice must not leak into the slot
	items[0].Quantity = 999

	stored, err := storage.Load(context.Background(), "cart")
	require.NoError(t, err)
	assert.Equal(t, 2, stored[0].Quantity)
}

func setupPostgresStorageTest(t *testing.T) *PostgresStorage {
	t.Helper()
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	return NewPostgresStorage(testDB)
}

func TestPostgresStorage_RoundTrip(t *testing.T) {
	storage := setupPostgresStorageTest(t)

	require.NoError(t, storage.Save(context.Background(), "cart", sampleItems()))

	items, err := storage.Load(context.Background(), "cart")
	require.NoError(t, err)
	assert.Equal(t, sampleItems(), items)
}

func TestPostgresStorage_SaveOverwritesSlot(t *testing.T) {
	storage := setupPostgresStorageTest(t)

	require.NoError(t, storage.Save(context.Background(), "cart", sampleItems()))
	require.NoError(t, storage.Save(context.Background(), "cart", []model.CartLineItem{
		{ProductID: "p3", Quantity: 4, DeliveryOptionID: "1"},
	}))

	items, err := storage.Load(context.Background(), "cart")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p3", items[0].ProductID)
}

func TestPostgresStorage_EmptySlot(t *testing.T) {
	storage := setupPostgresStorageTest(t)

	_, err := storage.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestPostgresStorage_CorruptPayloadSurfacesError(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	require.NoError(t, testDB.Create(&model.CartSlot{
		SlotKey: "cart",
		Payload: "{not valid json",
	}).Error)

	storage := NewPostgresStorage(testDB)
	_, err = storage.Load(context.Background(), "cart")
	assert.Error(t, err)
}

func TestPostgresStorage_SlotsAreIndependent(t *testing.T) {
	storage := setupPostgresStorageTest(t)

	require.NoError(t, storage.Save(context.Background(), "alice", sampleItems()))
	require.NoError(t, storage.Save(context.Background(), "bob", []model.CartLineItem{}))

	alice, err := storage.Load(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, alice, 2)

	bob, err := storage.Load(context.Background(), "bob")
	require.NoError(t, err)
	assert.Len(t, bob, 0)
}
