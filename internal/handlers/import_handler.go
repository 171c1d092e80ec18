package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"glass-catalog-service/internal/importer"
	"glass-catalog-service/internal/models"
	"glass-catalog-service/internal/services"
)

// ImportTemplateColumn defines a field in the import template
type ImportTemplateColumn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Type        string `json:"type"`
	Example     string `json:"example"`
}

// ImportTemplate defines the structure of an import template
type ImportTemplate struct {
	Entity     string                 `json:"entity"`
	Version    string                 `json:"version"`
	Columns    []ImportTemplateColumn `json:"columns"`
	SampleData []map[string]string    `json:"sampleData,omitempty"`
}

// CatalogImportTemplate returns the template for catalog records
func CatalogImportTemplate() ImportTemplate {
	return ImportTemplate{
		Entity:  "catalog",
		Version: "1.0",
		Columns: []ImportTemplateColumn{
			{Name: "code", Description: "Manufacturer product code", Required: true, Type: "string", Example: "RGR-001"},
			{Name: "name", Description: "Product name", Required: true, Type: "string", Example: "Ruby Red"},
			{Name: "manufacturer", Description: "Manufacturer name", Required: true, Type: "string", Example: "Bullseye Glass"},
			{Name: "tags", Description: "Tag list", Required: false, Type: "array", Example: `["rod", "opaque"]`},
			{Name: "coe", Description: "COE class (33, 90, 96, 104)", Required: false, Type: "number", Example: "90"},
			{Name: "stock_type", Description: "Stock form (rod, frit, sheet, ...)", Required: false, Type: "string", Example: "rod"},
			{Name: "image_url", Description: "Product image URL", Required: false, Type: "string", Example: "https://example.com/rgr-001.jpg"},
			{Name: "manufacturer_url", Description: "Manufacturer product page URL", Required: false, Type: "string", Example: "https://example.com/rgr-001"},
		},
		SampleData: []map[string]string{
			{"code": "RGR-001", "name": "Ruby Red", "manufacturer": "Bullseye Glass", "coe": "90", "stock_type": "rod"},
		},
	}
}

// ImportRowError represents an error for a specific record
type ImportRowError struct {
	Row     int    `json:"row"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ImportResult represents the result of an import operation
type ImportResult struct {
	Success      bool             `json:"success"`
	TotalRows    int              `json:"totalRows"`
	SuccessCount int              `json:"successCount"`
	FailedCount  int              `json:"failedCount"`
	Errors       []ImportRowError `json:"errors,omitempty"`
	CreatedIDs   []string         `json:"createdIds,omitempty"`
}

type ImportHandler struct {
	catalog *services.CatalogService
}

func NewImportHandler(catalog *services.CatalogService) *ImportHandler {
	return &ImportHandler{catalog: catalog}
}

// GetCatalogImportTemplate returns the catalog import template
// GET /api/v1/catalog/import/template
func (h *ImportHandler) GetCatalogImportTemplate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "template": CatalogImportTemplate()})
}

// ImportCatalog ingests a JSON catalog document. Each record is
// create-or-replace keyed by manufacturer and code, so re-importing an
// updated document refreshes existing items.
func (h *ImportHandler) ImportCatalog(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "FILE_REQUIRED",
				Message: "Upload a JSON file in the 'file' form field",
			},
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "READ_FAILED",
				Message: "Failed to read uploaded file",
			},
		})
		return
	}

	records, err := importer.Decode(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "INVALID_DOCUMENT",
				Message: err.Error(),
			},
		})
		return
	}

	result := ImportResult{TotalRows: len(records)}
	for i, record := range records {
		if err := record.Validate(); err != nil {
			result.Errors = append(result.Errors, ImportRowError{
				Row:     i + 1,
				Code:    "INVALID_RECORD",
				Message: err.Error(),
			})
			continue
		}

		// Stable id keyed by manufacturer+code keeps re-imports idempotent.
		recordID := fmt.Sprintf("%s-%s", strings.ToUpper(strings.TrimSpace(record.Manufacturer)), strings.TrimSpace(record.Code))
		req := models.CreateCatalogItemRequest{
			ID:              &recordID,
			Name:            record.Name,
			Code:            record.Code,
			Manufacturer:    record.Manufacturer,
			Tags:            record.Tags,
			StockType:       record.StockType,
			ImageURL:        record.ImageURL,
			ManufacturerURL: record.ManufacturerURL,
		}
		if record.COE.Valid() {
			reqCOE := record.COE
			req.COE = &reqCOE
		}

		item, err := h.catalog.CreateItem(c.Request.Context(), req)
		if err != nil {
			result.Errors = append(result.Errors, ImportRowError{
				Row:     i + 1,
				Code:    "CREATE_FAILED",
				Message: err.Error(),
			})
			continue
		}
		result.CreatedIDs = append(result.CreatedIDs, item.ID)
	}

	result.SuccessCount = len(result.CreatedIDs)
	result.FailedCount = len(result.Errors)
	result.Success = result.FailedCount == 0

	c.JSON(http.StatusOK, result)
}

// ExportCatalog writes the full catalog as an XLSX workbook.
func (h *ImportHandler) ExportCatalog(c *gin.Context) {
	items, err := h.catalog.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Catalog"
	index, err := f.NewSheet(sheet)
	if err != nil {
		respondError(c, err)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Code", "Name", "Manufacturer", "COE", "Tags", "Stock Type", "Image URL", "Manufacturer URL"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, item := range items {
		values := []interface{}{
			item.Code,
			item.Name,
			item.Manufacturer,
			int(item.COE),
			strings.Join(item.Tags, ", "),
			derefOrEmpty(item.StockType),
			derefOrEmpty(item.ImageURL),
			derefOrEmpty(item.ManufacturerURL),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="catalog.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		respondError(c, err)
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
