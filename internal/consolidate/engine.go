// Package consolidate aggregates raw inventory records into the
// per-catalog-code summaries the item list displays.
package consolidate

import (
	"sort"

	"glass-catalog-service/internal/models"
)

// Consolidate groups records by catalog code and sums quantities per type.
// Unknown type values fall into the inventory bucket. Output is ordered
// ascending by catalog code; codes with no records produce no row. Pure
// and stateless: recomputed on every call, never stored.
func Consolidate(items []models.InventoryItem) []models.ConsolidatedInventory {
	groups := make(map[string]*models.ConsolidatedInventory)
	for _, item := range items {
		view, ok := groups[item.CatalogCode]
		if !ok {
			view = &models.ConsolidatedInventory{CatalogCode: item.CatalogCode}
			groups[item.CatalogCode] = view
		}

		switch item.Type.Normalize() {
		case models.InventoryTypeBuy:
			view.Buy += item.Quantity
		case models.InventoryTypeSell:
			view.Sell += item.Quantity
		default:
			view.Inventory += item.Quantity
		}
	}

	views := make([]models.ConsolidatedInventory, 0, len(groups))
	for _, view := range groups {
		views = append(views, *view)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].CatalogCode < views[j].CatalogCode })
	return views
}
