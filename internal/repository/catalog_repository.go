package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"glass-catalog-service/internal/models"
)

// GormCatalogRepository is the Postgres-backed CatalogRepository.
type GormCatalogRepository struct {
	db *gorm.DB
}

var _ CatalogRepository = (*GormCatalogRepository)(nil)

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	err := r.db.WithContext(ctx).Order("code ASC").Find(&items).Error
	return items, err
}

func (r *GormCatalogRepository) GetItemByID(ctx context.Context, id string) (*models.CatalogItem, error) {
	var item models.CatalogItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translateErr(err)
	}
	return &item, nil
}

func (r *GormCatalogRepository) CreateItem(ctx context.Context, item *models.CatalogItem) error {
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	// Same id overwrites: create-or-replace, not create-or-fail.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(item).Error
}

func (r *GormCatalogRepository) UpdateItem(ctx context.Context, item *models.CatalogItem) error {
	var existing models.CatalogItem
	if err := r.db.WithContext(ctx).Where("id = ?", item.ID).First(&existing).Error; err != nil {
		return translateErr(err)
	}

	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *GormCatalogRepository) DeleteItem(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CatalogItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormCatalogRepository) SearchItems(ctx context.Context, text string) ([]models.CatalogItem, error) {
	if text == "" {
		return r.ListItems(ctx)
	}

	var items []models.CatalogItem
	pattern := "%" + text + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR code ILIKE ? OR manufacturer ILIKE ?", pattern, pattern, pattern).
		Order("code ASC").
		Find(&items).Error
	return items, err
}
