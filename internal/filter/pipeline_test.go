package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"glass-catalog-service/internal/models"
)

func catalogItem(name, code, manufacturer string, tags ...string) models.CatalogItem {
	return models.CatalogItem{
		Name:         name,
		Code:         code,
		Manufacturer: manufacturer,
		Tags:         tags,
	}
}

func names(subjects []CatalogSubject) []string {
	out := make([]string, len(subjects))
	for i, s := range subjects {
		out[i] = s.Item.Name
	}
	return out
}

func TestApply_ZeroCriteriaPassesEverything(t *testing.T) {
	subjects := WrapCatalog([]models.CatalogItem{
		catalogItem("Red Rod", "BULLSEYE GLASS-RGR-001", "Bullseye Glass"),
		catalogItem("Blue Frit", "EFFETRE-BLU-002", "Effetre/Vetrofond"),
	})

	got := Apply(subjects, Criteria{})

	assert.Len(t, got, 2)
}

func TestApply_COEStageKeepsMatchingManufacturers(t *testing.T) {
	subjects := WrapCatalog([]models.CatalogItem{
		catalogItem("Red Rod", "BE-001", "Bullseye Glass"),
		catalogItem("Clear Boro", "GA-002", "Glass Alchemy"),
	})

	selected := models.COE90
	got := Apply(subjects, Criteria{COE: &selected})

	assert.Equal(t, []string{"Red Rod"}, names(got))
}

func TestApply_COEStageDropsEmptyManufacturer(t *testing.T) {
	subjects := WrapCatalog([]models.CatalogItem{
		catalogItem("Mystery Rod", "X-001", ""),
	})

	selected := models.COE33
	got := Apply(subjects, Criteria{COE: &selected})

	assert.Empty(t, got)
}

func TestApply_COEStageDropsUnknownManufacturer(t *testing.T) {
	subjects := WrapCatalog([]models.CatalogItem{
		catalogItem("Odd Rod", "X-001", "Acme Glassworks"),
	})

	selected := models.COE33
	got := Apply(subjects, Criteria{COE: &selected})

	assert.Empty(t, got)
}

func TestApply_ManufacturerStageNilIsInactive(t *testing.T) {
	subjects := WrapCatalog([]models.CatalogItem{
		catalogItem("No Maker", "X-001", ""),
	})

	got := Apply(subjects, Criteria{Manufacturers: nil})

	assert.Len(t, got, 1)
}

func TestApply_ManufacturerStageAllowAllStillDropsEmpty(t *testing.T) {
	subjects := WrapCatalog([]models.CatalogItem{
		catalogItem("Red Rod", "BE-001", "Bullseye Glass"),
		catalogItem("No Maker", "X-001", ""),
	})

	got := Apply(subjects, Criteria{Manufacturers: AllManufacturers()})

	assert.Equal(t, []string{"Red Rod"}, names(got))
}

func TestApply_ManufacturerStageEnabledSet(t *testing.T) {
	subjects := WrapCatalog([]models.CatalogItem{
		catalogItem("Red Rod", "BE-001", "Bullseye Glass"),
		catalogItem("Clear Boro", "GA-002", "Glass Alchemy"),
	})

	sel := NewManufacturerSelection([]string{"bullseye glass"})
	got := Apply(subjects, Criteria{Manufacturers: sel})

	assert.Equal(t, []string{"Red Rod"}, names(got))
}

func TestApply_TagStageEmptySelectionIsNoOp(t *testing.T) {
	subjects := WrapCatalog([]models.CatalogItem{
		catalogItem("Red Rod", "BE-001", "Bullseye Glass", "rod"),
		catalogItem("Untagged", "BE-002", "Bullseye Glass"),
	})

	got := Apply(subjects, Criteria{Tags: nil})

	assert.Len(t, got, 2)
}

func TestApply_TagStageORSemantics(t *testing.T) {
	subjects := WrapCatalog([]models.CatalogItem{
		catalogItem("Red Rod", "BE-001", "Bullseye Glass", "rod", "opaque"),
		catalogItem("Blue Frit", "BE-002", "Bullseye Glass", "frit"),
		catalogItem("Sheet", "BE-003", "Bullseye Glass", "sheet"),
	})

	got := Apply(subjects, Criteria{Tags: []string{"rod", "frit"}})

	assert.Equal(t, []string{"Red Rod", "Blue Frit"}, names(got))
}

func TestApply_TagStageIsCaseSensitive(t *testing.T) {
	subjects := WrapCatalog([]models.CatalogItem{
		catalogItem("Red Rod", "BE-001", "Bullseye Glass", "Rod"),
	})

	got := Apply(subjects, Criteria{Tags: []string{"rod"}})

	assert.Empty(t, got)
}

func TestApply_SearchStageCaseInsensitiveSubstring(t *testing.T) {
	subjects := WrapCatalog([]models.CatalogItem{
		catalogItem("Ruby Red", "BE-001", "Bullseye Glass"),
		catalogItem("Blue Frit", "EF-002", "Effetre/Vetrofond"),
	})

	got := Apply(subjects, Criteria{Query: "ruby"})
	assert.Equal(t, []string{"Ruby Red"}, names(got))

	got = Apply(subjects, Criteria{Query: "EFFETRE"})
	assert.Equal(t, []string{"Blue Frit"}, names(got))
}

func TestApply_StagesNarrowInOrder(t *testing.T) {
	subjects := WrapCatalog([]models.CatalogItem{
		catalogItem("Ruby Red Rod", "BE-001", "Bullseye Glass", "rod"),
		catalogItem("Ruby Frit", "BE-002", "Bullseye Glass", "frit"),
		catalogItem("Ruby Boro", "GA-003", "Glass Alchemy", "rod"),
	})

	selected := models.COE90
	got := Apply(subjects, Criteria{
		COE:           &selected,
		Manufacturers: AllManufacturers(),
		Tags:          []string{"rod"},
		Query:         "ruby",
	})

	assert.Equal(t, []string{"Ruby Red Rod"}, names(got))
}

func TestWrapInventory_JoinsByCatalogCode(t *testing.T) {
	catalog := []models.CatalogItem{
		catalogItem("Red Rod", "BE-001", "Bullseye Glass", "rod"),
	}
	inventory := []models.InventoryItem{
		{ID: "a", CatalogCode: "BE-001", Quantity: 2},
		{ID: "b", CatalogCode: "GHOST-999", Quantity: 1},
	}

	subjects := WrapInventory(inventory, catalog)

	assert.Equal(t, "Bullseye Glass", subjects[0].FilterManufacturer())
	assert.Equal(t, []string{"rod"}, []string(subjects[0].FilterTags()))
	assert.Equal(t, "", subjects[1].FilterManufacturer())
	assert.Empty(t, subjects[1].FilterTags())
}

func TestApply_OrphanedInventoryDroppedByActiveManufacturerStage(t *testing.T) {
	inventory := []models.InventoryItem{
		{ID: "b", CatalogCode: "GHOST-999", Quantity: 1},
	}
	subjects := WrapInventory(inventory, nil)

	got := Apply(subjects, Criteria{Manufacturers: AllManufacturers()})
	assert.Empty(t, got)

	got = Apply(subjects, Criteria{})
	assert.Len(t, got, 1)
}

func TestApply_InventorySearchMatchesNotesAndLocation(t *testing.T) {
	notes := "gift from studio sale"
	location := "Drawer 3"
	inventory := []models.InventoryItem{
		{ID: "a", CatalogCode: "BE-001", Notes: &notes},
		{ID: "b", CatalogCode: "BE-002", Location: &location},
		{ID: "c", CatalogCode: "BE-003"},
	}
	subjects := WrapInventory(inventory, nil)

	got := Apply(subjects, Criteria{Query: "studio"})
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Item.ID)

	got = Apply(subjects, Criteria{Query: "drawer"})
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Item.ID)
}
