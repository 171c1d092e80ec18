// Package services wires repositories, code formatting, the filter
// pipeline and consolidation behind the facades the transport layer calls.
package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"glass-catalog-service/internal/codes"
	"glass-catalog-service/internal/events"
	"glass-catalog-service/internal/filter"
	"glass-catalog-service/internal/models"
	"glass-catalog-service/internal/prefs"
	"glass-catalog-service/internal/repository"
)

// CatalogService orchestrates catalog reads and writes. Writes apply the
// code-construction and tag-normalization rules before touching the
// repository; reads run the filter pipeline over repository results.
type CatalogService struct {
	repo      repository.CatalogRepository
	prefs     *prefs.Service
	publisher *events.Publisher
	logger    *logrus.Entry
}

func NewCatalogService(repo repository.CatalogRepository, prefService *prefs.Service, publisher *events.Publisher, logger *logrus.Logger) *CatalogService {
	log := logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CatalogService{
		repo:      repo,
		prefs:     prefService,
		publisher: publisher,
		logger:    log.WithField("component", "catalog-service"),
	}
}

// CreateItem derives the stored full code from the raw code and
// manufacturer, normalizes tags, assigns an id when absent and delegates.
// A duplicate id replaces the stored record.
func (s *CatalogService) CreateItem(ctx context.Context, req models.CreateCatalogItemRequest) (*models.CatalogItem, error) {
	item, err := s.buildItem(req.ID, req.Name, req.Code, req.Manufacturer, req.Tags, req.COE, req.StockType, req.ImageURL, req.ManufacturerURL)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":   item.ID,
		"code": item.Code,
	}).Debug("catalog item created")
	s.publisher.PublishCatalogChanged(ctx, events.ActionCreated, item.ID, item.Code)
	return item, nil
}

// UpdateItem fully replaces the mutable fields of the item with the given
// id, re-applying code and tag normalization. Unknown ids are ErrNotFound.
func (s *CatalogService) UpdateItem(ctx context.Context, id string, req models.UpdateCatalogItemRequest) (*models.CatalogItem, error) {
	idPtr := id
	item, err := s.buildItem(&idPtr, req.Name, req.Code, req.Manufacturer, req.Tags, req.COE, req.StockType, req.ImageURL, req.ManufacturerURL)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	s.publisher.PublishCatalogChanged(ctx, events.ActionUpdated, item.ID, item.Code)
	return item, nil
}

func (s *CatalogService) GetItem(ctx context.Context, id string) (*models.CatalogItem, error) {
	return s.repo.GetItemByID(ctx, id)
}

func (s *CatalogService) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.publisher.PublishCatalogChanged(ctx, events.ActionDeleted, id, "")
	return nil
}

// ListItems returns all catalog items unfiltered.
func (s *CatalogService) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	return s.repo.ListItems(ctx)
}

// SearchItems fetches by free text and then runs the filter pipeline:
// the stored COE and manufacturer preferences plus the caller's tag
// selection and query.
func (s *CatalogService) SearchItems(ctx context.Context, query string, tags []string) ([]models.CatalogItem, error) {
	items, err := s.repo.SearchItems(ctx, query)
	if err != nil {
		return nil, err
	}

	crit, err := s.pipelineCriteria(ctx, query, tags)
	if err != nil {
		return nil, err
	}
	return filter.UnwrapCatalog(filter.Apply(filter.WrapCatalog(items), crit)), nil
}

func (s *CatalogService) pipelineCriteria(ctx context.Context, query string, tags []string) (filter.Criteria, error) {
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

func (s *CatalogService) buildItem(id *string, name, rawCode, manufacturer string, tags []string, c *models.COE, stockType, imageURL, manufacturerURL *string) (*models.CatalogItem, error) {
	fullCode, err := codes.FullCode(rawCode, manufacturer)
	if err != nil {
		return nil, err
	}

	itemCOE := models.COEUnset
	if c != nil {
		if !c.Valid() {
			return nil, &codes.ValidationError{Field: "coe", Message: "must be one of 33, 90, 96, 104"}
		}
		itemCOE = *c
	}

	itemID := ""
	if id != nil {
		itemID = *id
	}
	if itemID == "" {
		itemID = uuid.New().String()
	}

	return &models.CatalogItem{
		ID:              itemID,
		Name:            name,
		Code:            fullCode,
		Manufacturer:    manufacturer,
		Tags:            codes.NormalizeTags(tags),
		COE:             itemCOE,
		StockType:       stockType,
		ImageURL:        imageURL,
		ManufacturerURL: manufacturerURL,
	}, nil
}
