package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"glass-catalog-service/internal/models"
)

// GormInventoryRepository is the Postgres-backed InventoryRepository.
type GormInventoryRepository struct {
	db *gorm.DB
}

var _ InventoryRepository = (*GormInventoryRepository)(nil)

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) ListItems(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).Order("catalog_code ASC, id ASC").Find(&items).Error
	return items, err
}

func (r *GormInventoryRepository) GetItemByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translateErr(err)
	}
	return &item, nil
}

func (r *GormInventoryRepository) CreateItem(ctx context.Context, item *models.InventoryItem) error {
	item.Type = item.Type.Normalize()
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(item).Error
}

func (r *GormInventoryRepository) UpdateItem(ctx context.Context, item *models.InventoryItem) error {
	var existing models.InventoryItem
	if err := r.db.WithContext(ctx).Where("id = ?", item.ID).First(&existing).Error; err != nil {
		return translateErr(err)
	}

	item.Type = item.Type.Normalize()
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *GormInventoryRepository) DeleteItem(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.InventoryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormInventoryRepository) SearchItems(ctx context.Context, text string) ([]models.InventoryItem, error) {
	if text == "" {
		return r.ListItems(ctx)
	}

	var items []models.InventoryItem
	pattern := "%" + text + "%"
	err := r.db.WithContext(ctx).
		Where("catalog_code ILIKE ? OR notes ILIKE ? OR location ILIKE ?", pattern, pattern, pattern).
		Order("catalog_code ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *GormInventoryRepository) ListItemsByType(ctx context.Context, t models.InventoryType) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).
		Where("type = ?", t.Normalize()).
		Order("catalog_code ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *GormInventoryRepository) ListItemsByCode(ctx context.Context, catalogCode string) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).
		Where("catalog_code = ?", catalogCode).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *GormInventoryRepository) TotalQuantity(ctx context.Context, catalogCode string, t models.InventoryType) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Select("SUM(quantity)").
		Where("catalog_code = ? AND type = ?", catalogCode, t.Normalize()).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	// SUM over no rows is NULL, which reads back as nil: not an error.
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *GormInventoryRepository) DistinctCatalogCodes(ctx context.Context) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Distinct("catalog_code").
		Order("catalog_code ASC").
		Pluck("catalog_code", &codes).Error
	return codes, err
}
