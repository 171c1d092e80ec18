package filter

import "glass-catalog-service/internal/models"

// CatalogSubject adapts a catalog item to the pipeline.
type CatalogSubject struct {
	Item models.CatalogItem
}

func (s CatalogSubject) FilterManufacturer() string { return s.Item.Manufacturer }
func (s CatalogSubject) FilterTags() []string       { return s.Item.Tags }
func (s CatalogSubject) FilterText() []string {
	return []string{s.Item.Name, s.Item.Code, s.Item.Manufacturer}
}

// InventorySubject adapts an inventory record joined to its catalog item.
// Catalog may be nil for orphaned records: those then present an empty
// manufacturer and no tags to the earlier stages.
type InventorySubject struct {
	Item    models.InventoryItem
	Catalog *models.CatalogItem
}

func (s InventorySubject) FilterManufacturer() string {
	if s.Catalog == nil {
		return ""
	}
	return s.Catalog.Manufacturer
}

func (s InventorySubject) FilterTags() []string {
	if s.Catalog == nil {
		return nil
	}
	return s.Catalog.Tags
}

func (s InventorySubject) FilterText() []string {
	fields := []string{s.Item.CatalogCode}
	if s.Item.Notes != nil {
		fields = append(fields, *s.Item.Notes)
	}
	if s.Item.Location != nil {
		fields = append(fields, *s.Item.Location)
	}
	return fields
}

// WrapCatalog adapts catalog items for Apply.
func WrapCatalog(items []models.CatalogItem) []CatalogSubject {
	subjects := make([]CatalogSubject, len(items))
	for i, item := range items {
		subjects[i] = CatalogSubject{Item: item}
	}
	return subjects
}

// UnwrapCatalog recovers the filtered catalog items.
func UnwrapCatalog(subjects []CatalogSubject) []models.CatalogItem {
	items := make([]models.CatalogItem, len(subjects))
	for i, s := range subjects {
		items[i] = s.Item
	}
	return items
}

// WrapInventory joins inventory records to their catalog items by code.
func WrapInventory(items []models.InventoryItem, catalog []models.CatalogItem) []InventorySubject {
	byCode := make(map[string]*models.CatalogItem, len(catalog))
	for i := range catalog {
		byCode[catalog[i].Code] = &catalog[i]
	}

	subjects := make([]InventorySubject, len(items))
	for i, item := range items {
		subjects[i] = InventorySubject{Item: item, Catalog: byCode[item.CatalogCode]}
	}
	return subjects
}

// UnwrapInventory recovers the filtered inventory records.
func UnwrapInventory(subjects []InventorySubject) []models.InventoryItem {
	items := make([]models.InventoryItem, len(subjects))
	for i, s := range subjects {
		items[i] = s.Item
	}
	return items
}
