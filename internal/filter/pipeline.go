// Package filter implements the fixed four-stage result filter:
// COE, manufacturer enablement, tag selection, free-text search.
// Stages are pure; each narrows the previous stage's output and runs
// whenever its criterion is active.
package filter

import (
	"strings"

	"glass-catalog-service/internal/coe"
	"glass-catalog-service/internal/models"
)

// Subject is what a stage inspects on each item.
type Subject interface {
	FilterManufacturer() string
	FilterTags() []string
	// FilterText lists the fields free-text search matches against.
	FilterText() []string
}

// ManufacturerSelection is the enabled-manufacturer setting. A nil
// *ManufacturerSelection deactivates the stage entirely; an active
// selection drops items without a manufacturer even when AllowAll is set,
// because a missing manufacturer cannot be tested for membership.
type ManufacturerSelection struct {
	AllowAll bool
	Enabled  map[string]struct{}
}

// NewManufacturerSelection builds a selection over the given manufacturers.
func NewManufacturerSelection(manufacturers []string) *ManufacturerSelection {
	enabled := make(map[string]struct{}, len(manufacturers))
	for _, m := range manufacturers {
		enabled[strings.ToUpper(strings.TrimSpace(m))] = struct{}{}
	}
	return &ManufacturerSelection{Enabled: enabled}
}

// AllManufacturers is the allow-all selection. Still an active stage.
func AllManufacturers() *ManufacturerSelection {
	return &ManufacturerSelection{AllowAll: true, Enabled: map[string]struct{}{}}
}

func (s *ManufacturerSelection) allows(manufacturer string) bool {
	if s.AllowAll {
		return true
	}
	_, ok := s.Enabled[strings.ToUpper(strings.TrimSpace(manufacturer))]
	return ok
}

// Criteria holds one criterion per stage; the zero value passes everything.
type Criteria struct {
	COE           *models.COE
	Manufacturers *ManufacturerSelection
	Tags          []string
	Query         string
}

// Apply runs all four stages in order over items.
func Apply[S Subject](items []S, c Criteria) []S {
	items = coeStage(items, c.COE)
	items = manufacturerStage(items, c.Manufacturers)
	items = tagStage(items, c.Tags)
	return searchStage(items, c.Query)
}

// coeStage keeps items whose manufacturer is registered for the selected
// COE class. Items without a manufacturer are dropped while a COE filter
// is active.
func coeStage[S Subject](items []S, selected *models.COE) []S {
	if selected == nil {
		return items
	}

	kept := make([]S, 0, len(items))
	for _, item := range items {
		mfr := strings.TrimSpace(item.FilterManufacturer())
		if mfr == "" {
			continue
		}
		if coe.Supports(mfr, *selected) {
			kept = append(kept, item)
		}
	}
	return kept
}

func manufacturerStage[S Subject](items []S, sel *ManufacturerSelection) []S {
	if sel == nil {
		return items
	}

	kept := make([]S, 0, len(items))
	for _, item := range items {
		mfr := strings.TrimSpace(item.FilterManufacturer())
		if mfr == "" {
			continue
		}
		if sel.allows(mfr) {
			kept = append(kept, item)
		}
	}
	return kept
}

// tagStage keeps items sharing at least one tag with the selection
// (OR semantics, exact case-sensitive match). An empty selection means
// "no filter", not "no matches".
func tagStage[S Subject](items []S, selected []string) []S {
	if len(selected) == 0 {
		return items
	}

	want := make(map[string]struct{}, len(selected))
	for _, tag := range selected {
		want[tag] = struct{}{}
	}

	kept := make([]S, 0, len(items))
	for _, item := range items {
		for _, tag := range item.FilterTags() {
			if _, ok := want[tag]; ok {
				kept = append(kept, item)
				break
			}
		}
	}
	return kept
}

func searchStage[S Subject](items []S, query string) []S {
	if query == "" {
		return items
	}

	needle := strings.ToLower(query)
	kept := make([]S, 0, len(items))
	for _, item := range items {
		for _, field := range item.FilterText() {
			if strings.Contains(strings.ToLower(field), needle) {
				kept = append(kept, item)
				break
			}
		}
	}
	return kept
}
