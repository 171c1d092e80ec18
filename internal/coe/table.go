// Package coe holds the static manufacturer registry: which COE glass
// classes each manufacturer produces. The table is read-only; the COE
// filter stage queries it to test membership.
package coe

import (
	"strings"

	"glass-catalog-service/internal/models"
)

// Manufacturer is one registry entry. Code is the short manufacturer code
// used in product codes; Name is the display name catalog records carry.
type Manufacturer struct {
	Code string
	Name string
	COEs []models.COE
}

var registry = []Manufacturer{
	{Code: "BB", Name: "Boro Batch", COEs: []models.COE{models.COE33}},
	{Code: "BE", Name: "Bullseye Glass", COEs: []models.COE{models.COE90}},
	{Code: "CIM", Name: "Creation is Messy", COEs: []models.COE{models.COE104}},
	{Code: "DS", Name: "Delphi Superior", COEs: []models.COE{models.COE90}},
	{Code: "DH", Name: "Double Helix", COEs: []models.COE{models.COE33}},
	{Code: "EF", Name: "Effetre/Vetrofond", COEs: []models.COE{models.COE104}},
	{Code: "GA", Name: "Glass Alchemy", COEs: []models.COE{models.COE33}},
	{Code: "GAF", Name: "Gaffer Glass", COEs: []models.COE{models.COE96}},
	{Code: "GRE", Name: "Greasy Glass", COEs: []models.COE{models.COE33}},
	{Code: "MA", Name: "Molten Aura Glass", COEs: []models.COE{models.COE33}},
	{Code: "MOM", Name: "Momka Glass", COEs: []models.COE{models.COE33}},
	{Code: "OC", Name: "Oceanside Glass", COEs: []models.COE{models.COE96}},
	{Code: "OR", Name: "Origin Glass", COEs: []models.COE{models.COE33}},
	{Code: "TAG", Name: "Trautman Art Glass", COEs: []models.COE{models.COE33}},
	{Code: "UST", Name: "UST Glass", COEs: []models.COE{models.COE33}},
	{Code: "WM", Name: "Wissmach Glass", COEs: []models.COE{models.COE90, models.COE96}},
	{Code: "YO", Name: "Youghiogheny", COEs: []models.COE{models.COE96}},
}

// byKey indexes registry entries by uppercased code and name.
var byKey = func() map[string]*Manufacturer {
	m := make(map[string]*Manufacturer, len(registry)*2)
	for i := range registry {
		e := &registry[i]
		m[strings.ToUpper(e.Code)] = e
		m[strings.ToUpper(e.Name)] = e
	}
	return m
}()

// Lookup finds a registry entry by manufacturer code or name,
// case-insensitively. Returns nil for unknown manufacturers.
func Lookup(manufacturer string) *Manufacturer {
	key := strings.ToUpper(strings.TrimSpace(manufacturer))
	if key == "" {
		return nil
	}
	return byKey[key]
}

// Supports reports whether the manufacturer is registered for the given
// COE class. Unknown or empty manufacturers support nothing.
func Supports(manufacturer string, c models.COE) bool {
	e := Lookup(manufacturer)
	if e == nil {
		return false
	}
	for _, have := range e.COEs {
		if have == c {
			return true
		}
	}
	return false
}

// Manufacturers returns a copy of the registry in declaration order.
func Manufacturers() []Manufacturer {
	out := make([]Manufacturer, len(registry))
	copy(out, registry)
	return out
}
