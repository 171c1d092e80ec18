package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"glass-catalog-service/internal/models"
)

// MemoryCatalogRepository is the in-memory CatalogRepository used by tests
// and local tooling. Writes are atomic with respect to reads.
type MemoryCatalogRepository struct {
	mu    sync.RWMutex
	items map[string]models.CatalogItem
}

var _ CatalogRepository = (*MemoryCatalogRepository)(nil)

func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{items: make(map[string]models.CatalogItem)}
}

func (r *MemoryCatalogRepository) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.CatalogItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	return items, nil
}

func (r *MemoryCatalogRepository) GetItemByID(ctx context.Context, id string) (*models.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (r *MemoryCatalogRepository) CreateItem(ctx context.Context, item *models.CatalogItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryCatalogRepository) UpdateItem(ctx context.Context, item *models.CatalogItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok {
		return ErrNotFound
	}
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryCatalogRepository) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *MemoryCatalogRepository) SearchItems(ctx context.Context, text string) ([]models.CatalogItem, error) {
	all, _ := r.ListItems(ctx)
	if text == "" {
		return all, nil
	}

	needle := strings.ToLower(text)
	matched := make([]models.CatalogItem, 0)
	for _, item := range all {
		if containsFold(item.Name, needle) ||
			containsFold(item.Code, needle) ||
			containsFold(item.Manufacturer, needle) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// MemoryInventoryRepository is the in-memory InventoryRepository.
type MemoryInventoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.InventoryItem
}

var _ InventoryRepository = (*MemoryInventoryRepository)(nil)

func NewMemoryInventoryRepository() *MemoryInventoryRepository {
	return &MemoryInventoryRepository{items: make(map[string]models.InventoryItem)}
}

func (r *MemoryInventoryRepository) ListItems(ctx context.Context) ([]models.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sortInventory(items)
	return items, nil
}

func (r *MemoryInventoryRepository) GetItemByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (r *MemoryInventoryRepository) CreateItem(ctx context.Context, item *models.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.Type = item.Type.Normalize()
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryInventoryRepository) UpdateItem(ctx context.Context, item *models.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok {
		return ErrNotFound
	}
	item.Type = item.Type.Normalize()
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryInventoryRepository) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *MemoryInventoryRepository) SearchItems(ctx context.Context, text string) ([]models.InventoryItem, error) {
	all, _ := r.ListItems(ctx)
	if text == "" {
		return all, nil
	}

	needle := strings.ToLower(text)
	matched := make([]models.InventoryItem, 0)
	for _, item := range all {
		if containsFold(item.CatalogCode, needle) ||
			(item.Notes != nil && containsFold(*item.Notes, needle)) ||
			(item.Location != nil && containsFold(*item.Location, needle)) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (r *MemoryInventoryRepository) ListItemsByType(ctx context.Context, t models.InventoryType) ([]models.InventoryItem, error) {
	all, _ := r.ListItems(ctx)
	matched := make([]models.InventoryItem, 0)
	for _, item := range all {
		if item.Type.Normalize() == t.Normalize() {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (r *MemoryInventoryRepository) ListItemsByCode(ctx context.Context, catalogCode string) ([]models.InventoryItem, error) {
	all, _ := r.ListItems(ctx)
	matched := make([]models.InventoryItem, 0)
	for _, item := range all {
		if item.CatalogCode == catalogCode {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (r *MemoryInventoryRepository) TotalQuantity(ctx context.Context, catalogCode string, t models.InventoryType) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0.0
	for _, item := range r.items {
		if item.CatalogCode == catalogCode && item.Type.Normalize() == t.Normalize() {
			total += item.Quantity
		}
	}
	return total, nil
}

func (r *MemoryInventoryRepository) DistinctCatalogCodes(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(r.items))
	codes := make([]string, 0, len(r.items))
	for _, item := range r.items {
		if _, ok := seen[item.CatalogCode]; ok {
			continue
		}
		seen[item.CatalogCode] = struct{}{}
		codes = append(codes, item.CatalogCode)
	}
	sort.Strings(codes)
	return codes, nil
}

func sortInventory(items []models.InventoryItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CatalogCode != items[j].CatalogCode {
			return items[i].CatalogCode < items[j].CatalogCode
		}
		return items[i].ID < items[j].ID
	})
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
