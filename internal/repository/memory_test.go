package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"glass-catalog-service/internal/models"
)

func TestMemoryCatalog_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()

	item := &models.CatalogItem{ID: "id-1", Name: "Red Rod", Code: "BE-001", Manufacturer: "Bullseye Glass"}
	assert.NoError(t, repo.CreateItem(ctx, item))
	assert.False(t, item.CreatedAt.IsZero())

	got, err := repo.GetItemByID(ctx, "id-1")
	assert.NoError(t, err)
	assert.Equal(t, "Red Rod", got.Name)
}

func TestMemoryCatalog_CreateReplacesExistingID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()

	assert.NoError(t, repo.CreateItem(ctx, &models.CatalogItem{ID: "id-1", Name: "Old", Code: "BE-001"}))
	assert.NoError(t, repo.CreateItem(ctx, &models.CatalogItem{ID: "id-1", Name: "New", Code: "BE-001"}))

	got, err := repo.GetItemByID(ctx, "id-1")
	assert.NoError(t, err)
	assert.Equal(t, "New", got.Name)

	all, _ := repo.ListItems(ctx)
	assert.Len(t, all, 1)
}

func TestMemoryCatalog_GetMissing(t *testing.T) {
	repo := NewMemoryCatalogRepository()

	_, err := repo.GetItemByID(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCatalog_UpdatePreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()

	item := &models.CatalogItem{ID: "id-1", Name: "Old", Code: "BE-001"}
	assert.NoError(t, repo.CreateItem(ctx, item))
	created := item.CreatedAt

	updated := &models.CatalogItem{ID: "id-1", Name: "New", Code: "BE-001"}
	assert.NoError(t, repo.UpdateItem(ctx, updated))

	got, _ := repo.GetItemByID(ctx, "id-1")
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, created, got.CreatedAt)
}

func TestMemoryCatalog_UpdateMissing(t *testing.T) {
	repo := NewMemoryCatalogRepository()

	err := repo.UpdateItem(context.Background(), &models.CatalogItem{ID: "absent"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCatalog_DeleteMissing(t *testing.T) {
	repo := NewMemoryCatalogRepository()

	err := repo.DeleteItem(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCatalog_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()

	assert.NoError(t, repo.CreateItem(ctx, &models.CatalogItem{ID: "id-1", Code: "BE-001"}))
	assert.NoError(t, repo.DeleteItem(ctx, "id-1"))

	_, err := repo.GetItemByID(ctx, "id-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCatalog_ListSortedByCode(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()

	assert.NoError(t, repo.CreateItem(ctx, &models.CatalogItem{ID: "1", Code: "C"}))
	assert.NoError(t, repo.CreateItem(ctx, &models.CatalogItem{ID: "2", Code: "A"}))
	assert.NoError(t, repo.CreateItem(ctx, &models.CatalogItem{ID: "3", Code: "B"}))

	all, err := repo.ListItems(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "A", all[0].Code)
	assert.Equal(t, "B", all[1].Code)
	assert.Equal(t, "C", all[2].Code)
}

func TestMemoryCatalog_SearchMatchesNameCodeManufacturer(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()

	assert.NoError(t, repo.CreateItem(ctx, &models.CatalogItem{ID: "1", Name: "Ruby Red", Code: "BE-001", Manufacturer: "Bullseye Glass"}))
	assert.NoError(t, repo.CreateItem(ctx, &models.CatalogItem{ID: "2", Name: "Clear", Code: "GA-002", Manufacturer: "Glass Alchemy"}))

	byName, err := repo.SearchItems(ctx, "ruby")
	assert.NoError(t, err)
	assert.Len(t, byName, 1)

	byManufacturer, err := repo.SearchItems(ctx, "alchemy")
	assert.NoError(t, err)
	assert.Len(t, byManufacturer, 1)
	assert.Equal(t, "GA-002", byManufacturer[0].Code)

	empty, err := repo.SearchItems(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, empty, 2)
}

func TestMemoryInventory_TotalQuantity(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryInventoryRepository()

	assert.NoError(t, repo.CreateItem(ctx, &models.InventoryItem{ID: "1", CatalogCode: "A", Quantity: 3, Type: models.InventoryTypeBuy}))
	assert.NoError(t, repo.CreateItem(ctx, &models.InventoryItem{ID: "2", CatalogCode: "A", Quantity: 2, Type: models.InventoryTypeBuy}))
	assert.NoError(t, repo.CreateItem(ctx, &models.InventoryItem{ID: "3", CatalogCode: "A", Quantity: 1, Type: models.InventoryTypeSell}))
	assert.NoError(t, repo.CreateItem(ctx, &models.InventoryItem{ID: "4", CatalogCode: "B", Quantity: 9, Type: models.InventoryTypeBuy}))

	total, err := repo.TotalQuantity(ctx, "A", models.InventoryTypeBuy)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, total)
}

func TestMemoryInventory_TotalQuantityNoRecordsIsZero(t *testing.T) {
	repo := NewMemoryInventoryRepository()

	total, err := repo.TotalQuantity(context.Background(), "absent", models.InventoryTypeInventory)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestMemoryInventory_CreateNormalizesUnknownType(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryInventoryRepository()

	assert.NoError(t, repo.CreateItem(ctx, &models.InventoryItem{ID: "1", CatalogCode: "A", Type: models.InventoryType("wishlist")}))

	got, err := repo.GetItemByID(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, models.InventoryTypeInventory, got.Type)
}

func TestMemoryInventory_ListItemsByType(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryInventoryRepository()

	assert.NoError(t, repo.CreateItem(ctx, &models.InventoryItem{ID: "1", CatalogCode: "A", Type: models.InventoryTypeBuy}))
	assert.NoError(t, repo.CreateItem(ctx, &models.InventoryItem{ID: "2", CatalogCode: "B", Type: models.InventoryTypeSell}))

	buys, err := repo.ListItemsByType(ctx, models.InventoryTypeBuy)
	assert.NoError(t, err)
	assert.Len(t, buys, 1)
	assert.Equal(t, "1", buys[0].ID)
}

func TestMemoryInventory_DistinctCatalogCodes(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryInventoryRepository()

	assert.NoError(t, repo.CreateItem(ctx, &models.InventoryItem{ID: "1", CatalogCode: "B"}))
	assert.NoError(t, repo.CreateItem(ctx, &models.InventoryItem{ID: "2", CatalogCode: "A"}))
	assert.NoError(t, repo.CreateItem(ctx, &models.InventoryItem{ID: "3", CatalogCode: "B"}))

	codes, err := repo.DistinctCatalogCodes(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, codes)
}

func TestMemoryInventory_SearchNotesAndLocation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryInventoryRepository()

	notes := "studio sale"
	location := "Drawer 3"
	assert.NoError(t, repo.CreateItem(ctx, &models.InventoryItem{ID: "1", CatalogCode: "A", Notes: &notes}))
	assert.NoError(t, repo.CreateItem(ctx, &models.InventoryItem{ID: "2", CatalogCode: "B", Location: &location}))

	byNotes, err := repo.SearchItems(ctx, "studio")
	assert.NoError(t, err)
	assert.Len(t, byNotes, 1)
	assert.Equal(t, "1", byNotes[0].ID)

	byLocation, err := repo.SearchItems(ctx, "drawer")
	assert.NoError(t, err)
	assert.Len(t, byLocation, 1)
	assert.Equal(t, "2", byLocation[0].ID)
}
