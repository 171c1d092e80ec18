package models

import "time"

// InventoryType classifies what an inventory record tracks.
type InventoryType string

const (
	InventoryTypeInventory InventoryType = "inventory"
	InventoryTypeBuy       InventoryType = "buy"
	InventoryTypeSell      InventoryType = "sell"
)

// Normalize maps unknown type values to the on-hand inventory bucket.
func (t InventoryType) Normalize() InventoryType {
	switch t {
	case InventoryTypeInventory, InventoryTypeBuy, InventoryTypeSell:
		return t
	}
	return InventoryTypeInventory
}

// InventoryItem represents a quantity record held against a catalog code.
// CatalogCode is a soft reference: a record may outlive its catalog item.
// Quantity is signed; zero and negative counts (backorders) are valid.
type InventoryItem struct {
	ID          string        `json:"id" gorm:"type:varchar(64);primary_key"`
	CatalogCode string        `json:"catalogCode" gorm:"type:varchar(100);not null;index"`
	Quantity    float64       `json:"quantity" gorm:"type:decimal(12,3);not null;default:0"`
	Type        InventoryType `json:"type" gorm:"type:varchar(20);not null;default:'inventory';index"`
	Notes       *string       `json:"notes,omitempty" gorm:"type:text"`
	Location    *string       `json:"location,omitempty" gorm:"type:varchar(255)"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

// ConsolidatedInventory is the derived per-catalog-code view: one row per
// code with quantities summed per type. Never persisted.
type ConsolidatedInventory struct {
	CatalogCode string  `json:"catalogCode"`
	Inventory   float64 `json:"inventory"`
	Buy         float64 `json:"buy"`
	Sell        float64 `json:"sell"`
}

type CreateInventoryItemRequest struct {
	ID          *string        `json:"id,omitempty"`
	CatalogCode string         `json:"catalogCode" binding:"required,min=1,max=100"`
	Quantity    float64        `json:"quantity"`
	Type        *InventoryType `json:"type,omitempty"`
	Notes       *string        `json:"notes,omitempty"`
	Location    *string        `json:"location,omitempty"`
}

type UpdateInventoryItemRequest struct {
	CatalogCode string         `json:"catalogCode" binding:"required,min=1,max=100"`
	Quantity    float64        `json:"quantity"`
	Type        *InventoryType `json:"type,omitempty"`
	Notes       *string        `json:"notes,omitempty"`
	Location    *string        `json:"location,omitempty"`
}

// Response models

type InventoryItemResponse struct {
	Success bool           `json:"success"`
	Data    *InventoryItem `json:"data,omitempty"`
	Message *string        `json:"message,omitempty"`
}

type InventoryItemListResponse struct {
	Success    bool            `json:"success"`
	Data       []InventoryItem `json:"data"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
}

type ConsolidatedInventoryListResponse struct {
	Success bool                    `json:"success"`
	Data    []ConsolidatedInventory `json:"data"`
}

type TotalQuantityResponse struct {
	Success     bool    `json:"success"`
	CatalogCode string  `json:"catalogCode"`
	Type        string  `json:"type"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}
