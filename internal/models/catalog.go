package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// StringList type for PostgreSQL JSONB tag storage.
// Order, case and duplicates are preserved exactly as supplied.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// COE represents a coefficient-of-expansion glass compatibility class.
// Zero value means "unset".
type COE int

const (
	COEUnset COE = 0
	COE33    COE = 33
	COE90    COE = 90
	COE96    COE = 96
	COE104   COE = 104
)

// Valid reports whether c is one of the known COE classes.
func (c COE) Valid() bool {
	switch c {
	case COE33, COE90, COE96, COE104:
		return true
	}
	return false
}

// CatalogItem represents a glass product definition
type CatalogItem struct {
	ID           string     `json:"id" gorm:"type:varchar(64);primary_key"`
	Name         string     `json:"name" gorm:"type:varchar(255);not null"`
	Code         string     `json:"code" gorm:"type:varchar(100);not null;index"`
	Manufacturer string     `json:"manufacturer" gorm:"type:varchar(255);index"`
	Tags         StringList `json:"tags" gorm:"type:jsonb"`
	COE          COE        `json:"coe,omitempty" gorm:"type:int;default:0"`

	// Upstream catalog record fields
	StockType       *string `json:"stockType,omitempty" gorm:"type:varchar(50)"`
	ImageURL        *string `json:"imageUrl,omitempty" gorm:"column:image_url;type:varchar(512)"`
	ManufacturerURL *string `json:"manufacturerUrl,omitempty" gorm:"column:manufacturer_url;type:varchar(512)"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (CatalogItem) TableName() string {
	return "catalog_items"
}

// CreateCatalogItemRequest carries a raw product code; the service derives
// the stored full code from it and the manufacturer.
type CreateCatalogItemRequest struct {
	ID              *string  `json:"id,omitempty"`
	Name            string   `json:"name" binding:"required,min=1,max=255"`
	Code            string   `json:"code" binding:"required,min=1,max=100"`
	Manufacturer    string   `json:"manufacturer" binding:"required,min=1,max=255"`
	Tags            []string `json:"tags,omitempty"`
	COE             *COE     `json:"coe,omitempty"`
	StockType       *string  `json:"stockType,omitempty"`
	ImageURL        *string  `json:"imageUrl,omitempty"`
	ManufacturerURL *string  `json:"manufacturerUrl,omitempty"`
}

// UpdateCatalogItemRequest fully replaces the mutable fields of an item.
type UpdateCatalogItemRequest struct {
	Name            string   `json:"name" binding:"required,min=1,max=255"`
	Code            string   `json:"code" binding:"required,min=1,max=100"`
	Manufacturer    string   `json:"manufacturer" binding:"required,min=1,max=255"`
	Tags            []string `json:"tags,omitempty"`
	COE             *COE     `json:"coe,omitempty"`
	StockType       *string  `json:"stockType,omitempty"`
	ImageURL        *string  `json:"imageUrl,omitempty"`
	ManufacturerURL *string  `json:"manufacturerUrl,omitempty"`
}

// Response models

type CatalogItemResponse struct {
	Success bool         `json:"success"`
	Data    *CatalogItem `json:"data,omitempty"`
	Message *string      `json:"message,omitempty"`
}

type CatalogItemListResponse struct {
	Success    bool            `json:"success"`
	Data       []CatalogItem   `json:"data"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
}

type ErrorResponse struct {
	Success bool  `json:"success"`
	Error   Error `json:"error"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message *string     `json:"message,omitempty"`
}

// PaginationMeta represents pagination metadata
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}
