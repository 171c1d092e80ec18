package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glass-catalog-service/internal/models"
	"glass-catalog-service/internal/services"
)

type CatalogHandler struct {
	svc *services.CatalogService
}

func NewCatalogHandler(svc *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// CreateCatalogItem creates (or replaces, on duplicate id) a catalog item
func (h *CatalogHandler) CreateCatalogItem(c *gin.Context) {
	var req models.CreateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.svc.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CatalogItemResponse{
		Success: true,
		Data:    item,
		Message: stringPtr("Catalog item created successfully"),
	})
}

// ListCatalogItems lists or searches catalog items. The q parameter is the
// free-text query; tags selects the tag filter (repeatable).
func (h *CatalogHandler) ListCatalogItems(c *gin.Context) {
	query := c.Query("q")
	tags := c.QueryArray("tags")

	items, err := h.svc.SearchItems(c.Request.Context(), query, tags)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CatalogItemListResponse{
		Success: true,
		Data:    items,
	})
}

// GetCatalogItem retrieves a catalog item by ID
func (h *CatalogHandler) GetCatalogItem(c *gin.Context) {
	item, err := h.svc.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CatalogItemResponse{
		Success: true,
		Data:    item,
	})
}

// UpdateCatalogItem fully replaces a catalog item's mutable fields
func (h *CatalogHandler) UpdateCatalogItem(c *gin.Context) {
	var req models.UpdateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.svc.UpdateItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CatalogItemResponse{
		Success: true,
		Data:    item,
		Message: stringPtr("Catalog item updated successfully"),
	})
}

// DeleteCatalogItem deletes a catalog item
func (h *CatalogHandler) DeleteCatalogItem(c *gin.Context) {
	if err := h.svc.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: stringPtr("Catalog item deleted successfully"),
	})
}
