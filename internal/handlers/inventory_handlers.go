package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glass-catalog-service/internal/models"
	"glass-catalog-service/internal/services"
	"glass-catalog-service/internal/units"
)

type InventoryHandler struct {
	svc *services.InventoryService
}

func NewInventoryHandler(svc *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// CreateInventoryItem creates a new inventory record
func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	var req models.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.svc.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.InventoryItemResponse{
		Success: true,
		Data:    item,
		Message: stringPtr("Inventory item created successfully"),
	})
}

// ListInventoryItems lists or searches inventory records. Supported query
// parameters: q (free text), tags (repeatable), type, catalogCode.
func (h *InventoryHandler) ListInventoryItems(c *gin.Context) {
	ctx := c.Request.Context()

	if t := c.Query("type"); t != "" {
		items, err := h.svc.ListItemsByType(ctx, models.InventoryType(t))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.InventoryItemListResponse{Success: true, Data: items})
		return
	}

	if code := c.Query("catalogCode"); code != "" {
		items, err := h.svc.ListItemsByCode(ctx, code)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.InventoryItemListResponse{Success: true, Data: items})
		return
	}

	items, err := h.svc.SearchItems(ctx, c.Query("q"), c.QueryArray("tags"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.InventoryItemListResponse{
		Success: true,
		Data:    items,
	})
}

// GetInventoryItem retrieves an inventory record by ID
func (h *InventoryHandler) GetInventoryItem(c *gin.Context) {
	item, err := h.svc.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.InventoryItemResponse{
		Success: true,
		Data:    item,
	})
}

// UpdateInventoryItem fully replaces an inventory record's mutable fields
func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) {
	var req models.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.svc.UpdateItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.InventoryItemResponse{
		Success: true,
		Data:    item,
		Message: stringPtr("Inventory item updated successfully"),
	})
}

// DeleteInventoryItem deletes an inventory record
func (h *InventoryHandler) DeleteInventoryItem(c *gin.Context) {
	if err := h.svc.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: stringPtr("Inventory item deleted successfully"),
	})
}

// GetConsolidatedInventory returns per-catalog-code totals for the
// records that survive the filter pipeline.
func (h *InventoryHandler) GetConsolidatedInventory(c *gin.Context) {
	views, err := h.svc.SearchConsolidated(c.Request.Context(), c.Query("q"), c.QueryArray("tags"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ConsolidatedInventoryListResponse{
		Success: true,
		Data:    views,
	})
}

// GetTotalQuantity returns the summed quantity for a catalog code and
// type, converted to the requested or preferred weight unit.
func (h *InventoryHandler) GetTotalQuantity(c *gin.Context) {
	catalogCode := c.Query("catalogCode")
	if catalogCode == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: "catalogCode query parameter is required",
			},
		})
		return
	}

	itemType := models.InventoryType(c.DefaultQuery("type", string(models.InventoryTypeInventory)))

	var unit *units.Weight
	if raw := c.Query("unit"); raw != "" {
		parsed, ok := units.Parse(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Error: models.Error{
					Code:    "VALIDATION_ERROR",
					Message: "unit must be lb or kg",
				},
			})
			return
		}
		unit = &parsed
	}

	total, resolved, err := h.svc.TotalQuantity(c.Request.Context(), catalogCode, itemType, unit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TotalQuantityResponse{
		Success:     true,
		CatalogCode: catalogCode,
		Type:        string(itemType.Normalize()),
		Quantity:    total,
		Unit:        string(resolved),
	})
}

// GetDistinctCatalogCodes returns the sorted, deduplicated catalog codes
// referenced by inventory records.
func (h *InventoryHandler) GetDistinctCatalogCodes(c *gin.Context) {
	codes, err := h.svc.DistinctCatalogCodes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    codes,
	})
}
