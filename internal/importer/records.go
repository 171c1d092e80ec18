// Package importer decodes catalog import documents. The upstream tooling
// emits snake_case keys while newer exports use camelCase; both forms are
// accepted for every optional field.
package importer

import (
	"encoding/json"
	"fmt"
	"strconv"

	"glass-catalog-service/internal/models"
)

// CatalogRecord is one decoded import record.
type CatalogRecord struct {
	Code            string
	Name            string
	Manufacturer    string
	Tags            []string
	COE             models.COE
	StockType       *string
	ImageURL        *string
	ManufacturerURL *string
}

type rawRecord map[string]json.RawMessage

func (r rawRecord) stringField(keys ...string) (string, bool) {
	for _, key := range keys {
		raw, ok := r[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, true
		}
	}
	return "", false
}

func (r rawRecord) stringListField(keys ...string) []string {
	for _, key := range keys {
		raw, ok := r[key]
		if !ok {
			continue
		}
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			return list
		}
	}
	return nil
}

// UnmarshalJSON accepts both key forms, e.g. stock_type and stockType.
func (c *CatalogRecord) UnmarshalJSON(data []byte) error {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Code, _ = raw.stringField("code")
	c.Name, _ = raw.stringField("name")
	c.Manufacturer, _ = raw.stringField("manufacturer")
	c.Tags = raw.stringListField("tags")

	if s, ok := raw.stringField("coe"); ok && s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			coe := models.COE(n)
			if coe.Valid() {
				c.COE = coe
			}
		}
	} else if rawCOE, ok := raw["coe"]; ok {
		var n int
		if err := json.Unmarshal(rawCOE, &n); err == nil {
			coe := models.COE(n)
			if coe.Valid() {
				c.COE = coe
			}
		}
	}

	if s, ok := raw.stringField("stock_type", "stockType"); ok && s != "" {
		c.StockType = &s
	}
	if s, ok := raw.stringField("image_url", "imageUrl"); ok && s != "" {
		c.ImageURL = &s
	}
	if s, ok := raw.stringField("manufacturer_url", "manufacturerUrl"); ok && s != "" {
		c.ManufacturerURL = &s
	}
	return nil
}

// Validate reports whether the record carries the required fields.
func (c *CatalogRecord) Validate() error {
	if c.Code == "" {
		return fmt.Errorf("missing required field: code")
	}
	if c.Name == "" {
		return fmt.Errorf("missing required field: name")
	}
	if c.Manufacturer == "" {
		return fmt.Errorf("missing required field: manufacturer")
	}
	return nil
}

// Decode parses an import document: either a bare JSON array of records or
// an object with an "items" array.
func Decode(data []byte) ([]CatalogRecord, error) {
	var records []CatalogRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var wrapped struct {
		Items []CatalogRecord `json:"items"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("invalid import document: %w", err)
	}
	return wrapped.Items, nil
}
