package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"glass-catalog-service/internal/codes"
	"glass-catalog-service/internal/models"
	"glass-catalog-service/internal/prefs"
	"glass-catalog-service/internal/repository"
)

// MockCatalogRepository is a mock implementation of CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

var _ repository.CatalogRepository = (*MockCatalogRepository)(nil)

func (m *MockCatalogRepository) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepository) GetItemByID(ctx context.Context, id string) (*models.CatalogItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepository) CreateItem(ctx context.Context, item *models.CatalogItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateItem(ctx context.Context, item *models.CatalogItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogRepository) SearchItems(ctx context.Context, text string) ([]models.CatalogItem, error) {
	args := m.Called(ctx, text)
	return args.Get(0).([]models.CatalogItem), args.Error(1)
}

func newPrefs() *prefs.Service {
	return prefs.NewService(prefs.NewMemoryStore())
}

func TestCatalogCreate_DerivesFullCode(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	service := NewCatalogService(mockRepo, newPrefs(), nil, nil)

	mockRepo.On("CreateItem", ctx, mock.MatchedBy(func(item *models.CatalogItem) bool {
		return item.Code == "BULLSEYE GLASS-RGR-001"
	})).Return(nil)

	item, err := service.CreateItem(ctx, models.CreateCatalogItemRequest{
		Name:         "Ruby Red",
		Code:         "RGR-001",
		Manufacturer: "Bullseye Glass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "BULLSEYE GLASS-RGR-001", item.Code)
	assert.NotEmpty(t, item.ID)
	mockRepo.AssertExpectations(t)
}

func TestCatalogCreate_KeepsSuppliedID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	service := NewCatalogService(mockRepo, newPrefs(), nil, nil)

	suppliedID := "item-42"
	mockRepo.On("CreateItem", ctx, mock.Anything).Return(nil)

	item, err := service.CreateItem(ctx, models.CreateCatalogItemRequest{
		ID:           &suppliedID,
		Name:         "Ruby Red",
		Code:         "RGR-001",
		Manufacturer: "Bullseye Glass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "item-42", item.ID)
	mockRepo.AssertExpectations(t)
}

func TestCatalogCreate_NormalizesNilTags(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	service := NewCatalogService(mockRepo, newPrefs(), nil, nil)

	mockRepo.On("CreateItem", ctx, mock.Anything).Return(nil)

	item, err := service.CreateItem(ctx, models.CreateCatalogItemRequest{
		Name:         "Ruby Red",
		Code:         "RGR-001",
		Manufacturer: "Bullseye Glass",
		Tags:         nil,
	})

	assert.NoError(t, err)
	assert.NotNil(t, item.Tags)
	assert.Empty(t, item.Tags)
}

func TestCatalogCreate_EmptyManufacturerRejected(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	service := NewCatalogService(mockRepo, newPrefs(), nil, nil)

	_, err := service.CreateItem(ctx, models.CreateCatalogItemRequest{
		Name:         "Ruby Red",
		Code:         "RGR-001",
		Manufacturer: "  ",
	})

	var verr *codes.ValidationError
	assert.ErrorAs(t, err, &verr)
	mockRepo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestCatalogCreate_InvalidCOERejected(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	service := NewCatalogService(mockRepo, newPrefs(), nil, nil)

	bad := models.COE(42)
	_, err := service.CreateItem(ctx, models.CreateCatalogItemRequest{
		Name:         "Ruby Red",
		Code:         "RGR-001",
		Manufacturer: "Bullseye Glass",
		COE:          &bad,
	})

	var verr *codes.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "coe", verr.Field)
}

func TestCatalogUpdate_MissingIDPropagatesNotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	service := NewCatalogService(mockRepo, newPrefs(), nil, nil)

	mockRepo.On("UpdateItem", ctx, mock.Anything).Return(repository.ErrNotFound)

	_, err := service.UpdateItem(ctx, "absent", models.UpdateCatalogItemRequest{
		Name:         "Ruby Red",
		Code:         "RGR-001",
		Manufacturer: "Bullseye Glass",
	})

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogUpdate_ReappliesCodeRule(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	service := NewCatalogService(mockRepo, newPrefs(), nil, nil)

	mockRepo.On("UpdateItem", ctx, mock.MatchedBy(func(item *models.CatalogItem) bool {
		return item.ID == "item-1" && item.Code == "THOMPSON-TTL-8623"
	})).Return(nil)

	item, err := service.UpdateItem(ctx, "item-1", models.UpdateCatalogItemRequest{
		Name:         "Enamel",
		Code:         "TTL-8623",
		Manufacturer: "Thompson",
	})

	assert.NoError(t, err)
	assert.Equal(t, "THOMPSON-TTL-8623", item.Code)
	mockRepo.AssertExpectations(t)
}

func TestCatalogDelete_Delegates(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	service := NewCatalogService(mockRepo, newPrefs(), nil, nil)

	mockRepo.On("DeleteItem", ctx, "item-1").Return(nil)

	assert.NoError(t, service.DeleteItem(ctx, "item-1"))
	mockRepo.AssertExpectations(t)
}

func TestCatalogSearch_AppliesStoredCOEPreference(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	prefService := newPrefs()
	service := NewCatalogService(mockRepo, prefService, nil, nil)

	assert.NoError(t, prefService.SetCOE(ctx, models.COE90))

	mockRepo.On("SearchItems", ctx, "").Return([]models.CatalogItem{
		{ID: "1", Name: "Ruby Red", Code: "BE-001", Manufacturer: "Bullseye Glass"},
		{ID: "2", Name: "Clear Boro", Code: "GA-002", Manufacturer: "Glass Alchemy"},
	}, nil)

	items, err := service.SearchItems(ctx, "", nil)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Ruby Red", items[0].Name)
}

func TestCatalogSearch_CallerTagsNarrow(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	service := NewCatalogService(mockRepo, newPrefs(), nil, nil)

	mockRepo.On("SearchItems", ctx, "").Return([]models.CatalogItem{
		{ID: "1", Name: "Rod", Code: "BE-001", Manufacturer: "Bullseye Glass", Tags: models.StringList{"rod"}},
		{ID: "2", Name: "Frit", Code: "BE-002", Manufacturer: "Bullseye Glass", Tags: models.StringList{"frit"}},
	}, nil)

	items, err := service.SearchItems(ctx, "", []string{"frit"})

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Frit", items[0].Name)
}
