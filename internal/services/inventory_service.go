package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"glass-catalog-service/internal/codes"
	"glass-catalog-service/internal/consolidate"
	"glass-catalog-service/internal/events"
	"glass-catalog-service/internal/filter"
	"glass-catalog-service/internal/models"
	"glass-catalog-service/internal/prefs"
	"glass-catalog-service/internal/repository"
	"glass-catalog-service/internal/units"
)

// InventoryService orchestrates inventory reads and writes. Filtering
// joins records to their catalog items; totals resolve the preferred
// weight unit.
type InventoryService struct {
	repo      repository.InventoryRepository
	catalog   repository.CatalogRepository
	prefs     *prefs.Service
	publisher *events.Publisher
	logger    *logrus.Entry
}

func NewInventoryService(repo repository.InventoryRepository, catalog repository.CatalogRepository, prefService *prefs.Service, publisher *events.Publisher, logger *logrus.Logger) *InventoryService {
	log := logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &InventoryService{
		repo:      repo,
		catalog:   catalog,
		prefs:     prefService,
		publisher: publisher,
		logger:    log.WithField("component", "inventory-service"),
	}
}

// CreateItem stores a new inventory record. The catalog code is not
// checked against the catalog: orphaned records are a valid state.
func (s *InventoryService) CreateItem(ctx context.Context, req models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if req.CatalogCode == "" {
		return nil, &codes.ValidationError{Field: "catalogCode", Message: "must not be empty"}
	}

	itemID := ""
	if req.ID != nil {
		itemID = *req.ID
	}
	if itemID == "" {
		itemID = uuid.New().String()
	}

	itemType := models.InventoryTypeInventory
	if req.Type != nil {
		itemType = req.Type.Normalize()
	}

	item := &models.InventoryItem{
		ID:          itemID,
		CatalogCode: req.CatalogCode,
		Quantity:    req.Quantity,
		Type:        itemType,
		Notes:       req.Notes,
		Location:    req.Location,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":          item.ID,
		"catalogCode": item.CatalogCode,
		"type":        item.Type,
	}).Debug("inventory item created")
	s.publisher.PublishInventoryChanged(ctx, events.ActionCreated, item.ID, item.CatalogCode)
	return item, nil
}

// UpdateItem fully replaces the record's mutable fields.
func (s *InventoryService) UpdateItem(ctx context.Context, id string, req models.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	if req.CatalogCode == "" {
		return nil, &codes.ValidationError{Field: "catalogCode", Message: "must not be empty"}
	}

	itemType := models.InventoryTypeInventory
	if req.Type != nil {
		itemType = req.Type.Normalize()
	}

	item := &models.InventoryItem{
		ID:          id,
		CatalogCode: req.CatalogCode,
		Quantity:    req.Quantity,
		Type:        itemType,
		Notes:       req.Notes,
		Location:    req.Location,
	}
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	s.publisher.PublishInventoryChanged(ctx, events.ActionUpdated, item.ID, item.CatalogCode)
	return item, nil
}

func (s *InventoryService) GetItem(ctx context.Context, id string) (*models.InventoryItem, error) {
	return s.repo.GetItemByID(ctx, id)
}

func (s *InventoryService) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.publisher.PublishInventoryChanged(ctx, events.ActionDeleted, id, "")
	return nil
}

func (s *InventoryService) ListItems(ctx context.Context) ([]models.InventoryItem, error) {
	return s.repo.ListItems(ctx)
}

func (s *InventoryService) ListItemsByType(ctx context.Context, t models.InventoryType) ([]models.InventoryItem, error) {
	return s.repo.ListItemsByType(ctx, t)
}

func (s *InventoryService) ListItemsByCode(ctx context.Context, catalogCode string) ([]models.InventoryItem, error) {
	return s.repo.ListItemsByCode(ctx, catalogCode)
}

// SearchItems runs the filter pipeline over all inventory records, joining
// each to its catalog item so the COE, manufacturer and tag stages can see
// catalog fields. Orphaned records present an empty manufacturer to those
// stages.
func (s *InventoryService) SearchItems(ctx context.Context, query string, tags []string) ([]models.InventoryItem, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	catalogItems, err := s.catalog.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	crit, err := s.criteria(ctx, query, tags)
	if err != nil {
		return nil, err
	}
	subjects := filter.Apply(filter.WrapInventory(items, catalogItems), crit)
	return filter.UnwrapInventory(subjects), nil
}

// SearchConsolidated filters like SearchItems and aggregates the survivors
// into per-catalog-code totals.
func (s *InventoryService) SearchConsolidated(ctx context.Context, query string, tags []string) ([]models.ConsolidatedInventory, error) {
	items, err := s.SearchItems(ctx, query, tags)
	if err != nil {
		return nil, err
	}
	return consolidate.Consolidate(items), nil
}

// Consolidated aggregates every inventory record without filtering.
func (s *InventoryService) Consolidated(ctx context.Context) ([]models.ConsolidatedInventory, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return consolidate.Consolidate(items), nil
}

// TotalQuantity sums quantities for a catalog code and type, converting
// from the stored pounds into the requested unit. A nil unit falls back to
// the stored unit preference, then to pounds. A code with no records
// totals zero.
func (s *InventoryService) TotalQuantity(ctx context.Context, catalogCode string, t models.InventoryType, unit *units.Weight) (float64, units.Weight, error) {
	total, err := s.repo.TotalQuantity(ctx, catalogCode, t)
	if err != nil {
		return 0, units.Pounds, err
	}

	resolved := units.Pounds
	if unit != nil {
		resolved = units.Resolve(unit, units.Pounds)
	} else if s.prefs != nil {
		pref, prefErr := s.prefs.WeightUnit(ctx)
		if prefErr != nil {
			return 0, units.Pounds, prefErr
		}
		resolved = units.Resolve(pref, units.Pounds)
	}

	return units.Convert(total, units.Pounds, resolved), resolved, nil
}

func (s *InventoryService) DistinctCatalogCodes(ctx context.Context) ([]string, error) {
	return s.repo.DistinctCatalogCodes(ctx)
}

func (s *InventoryService) criteria(ctx context.Context, query string, tags []string) (filter.Criteria, error) {
	crit := filter.Criteria{Tags: tags, Query: query}
	if s.prefs == nil {
		return crit, nil
	}

	selectedCOE, err := s.prefs.COE(ctx)
	if err != nil {
		return crit, err
	}
	selection, err := s.prefs.Manufacturers(ctx)
	if err != nil {
		return crit, err
	}
	crit.COE = selectedCOE
	crit.Manufacturers = selection
	return crit, nil
}
