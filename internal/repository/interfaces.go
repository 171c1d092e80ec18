// Package repository abstracts catalog and inventory persistence behind
// interfaces so services and tests can swap the Postgres implementation
// for an in-memory one via constructor injection.
package repository

import (
	"context"

	"glass-catalog-service/internal/models"
)

// CatalogRepository owns the authoritative catalog item records.
type CatalogRepository interface {
	// ListItems returns every catalog item.
	ListItems(ctx context.Context) ([]models.CatalogItem, error)
	// GetItemByID returns the item with the given id, or ErrNotFound.
	GetItemByID(ctx context.Context, id string) (*models.CatalogItem, error)
	// CreateItem stores the item. An existing record with the same id is
	// replaced (create-or-replace, not create-or-fail).
	CreateItem(ctx context.Context, item *models.CatalogItem) error
	// UpdateItem fully replaces the mutable fields of the record with the
	// item's id. ErrNotFound when no such record exists.
	UpdateItem(ctx context.Context, item *models.CatalogItem) error
	// DeleteItem removes the record. ErrNotFound when no such record exists.
	DeleteItem(ctx context.Context, id string) error
	// SearchItems matches text case-insensitively as a substring of name,
	// code or manufacturer. Empty text returns all items; no match returns
	// an empty slice, never an error.
	SearchItems(ctx context.Context, text string) ([]models.CatalogItem, error)
}

// InventoryRepository owns the authoritative inventory records. Catalog
// codes are soft references; orphaned records are a valid state.
type InventoryRepository interface {
	ListItems(ctx context.Context) ([]models.InventoryItem, error)
	GetItemByID(ctx context.Context, id string) (*models.InventoryItem, error)
	CreateItem(ctx context.Context, item *models.InventoryItem) error
	UpdateItem(ctx context.Context, item *models.InventoryItem) error
	DeleteItem(ctx context.Context, id string) error
	// SearchItems matches text case-insensitively against catalog code,
	// notes and location.
	SearchItems(ctx context.Context, text string) ([]models.InventoryItem, error)

	// ListItemsByType returns records of the given type.
	ListItemsByType(ctx context.Context, t models.InventoryType) ([]models.InventoryItem, error)
	// ListItemsByCode returns records referencing the given catalog code.
	ListItemsByCode(ctx context.Context, catalogCode string) ([]models.InventoryItem, error)
	// TotalQuantity sums quantities for a catalog code and type; zero when
	// nothing matches.
	TotalQuantity(ctx context.Context, catalogCode string, t models.InventoryType) (float64, error)
	// DistinctCatalogCodes returns the referenced codes, sorted and
	// deduplicated.
	DistinctCatalogCodes(ctx context.Context) ([]string, error)
}
