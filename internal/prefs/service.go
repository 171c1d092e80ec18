package prefs

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"glass-catalog-service/internal/filter"
	"glass-catalog-service/internal/models"
	"glass-catalog-service/internal/units"
)

const (
	keyCOE           = "coe"
	keyManufacturers = "manufacturers"
	keyWeightUnit    = "weight_unit"
)

// Service caches preferences in memory after the first load and writes
// through to the store on every change. It is an explicitly injected
// dependency, not ambient global state, so tests can run isolated
// instances side by side.
type Service struct {
	store Store

	mu sync.Mutex

	coeLoaded bool
	coe       *models.COE

	mfrLoaded bool
	mfr       *filter.ManufacturerSelection

	unitLoaded bool
	unit       *units.Weight
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// manufacturerPref is the stored form of the manufacturer selection.
type manufacturerPref struct {
	AllowAll bool     `json:"allowAll"`
	Enabled  []string `json:"enabled"`
}

// COE returns the selected COE filter; nil means no COE filtering.
func (s *Service) COE(ctx context.Context) (*models.COE, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.coeLoaded {
		val, ok, err := s.store.Get(ctx, keyCOE)
		if err != nil {
			return nil, err
		}
		if ok {
			if n, convErr := strconv.Atoi(val); convErr == nil {
				c := models.COE(n)
				if c.Valid() {
					s.coe = &c
				}
			}
		}
		s.coeLoaded = true
	}
	return s.coe, nil
}

func (s *Service) SetCOE(ctx context.Context, c models.COE) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(ctx, keyCOE, strconv.Itoa(int(c))); err != nil {
		return err
	}
	s.coe = &c
	s.coeLoaded = true
	return nil
}

// ResetCOE restores the default of no COE filter.
func (s *Service) ResetCOE(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, keyCOE); err != nil {
		return err
	}
	s.coe = nil
	s.coeLoaded = true
	return nil
}

// Manufacturers returns the enabled-manufacturer selection; the default is
// all manufacturers enabled.
func (s *Service) Manufacturers(ctx context.Context) (*filter.ManufacturerSelection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mfrLoaded {
		val, ok, err := s.store.Get(ctx, keyManufacturers)
		if err != nil {
			return nil, err
		}
		if ok {
			var stored manufacturerPref
			if jsonErr := json.Unmarshal([]byte(val), &stored); jsonErr == nil {
				if stored.AllowAll {
					s.mfr = filter.AllManufacturers()
				} else {
					s.mfr = filter.NewManufacturerSelection(stored.Enabled)
				}
			}
		}
		if s.mfr == nil {
			s.mfr = filter.AllManufacturers()
		}
		s.mfrLoaded = true
	}
	return s.mfr, nil
}

// SetManufacturers restricts the selection to the given manufacturers.
func (s *Service) SetManufacturers(ctx context.Context, manufacturers []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(manufacturerPref{Enabled: manufacturers})
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, keyManufacturers, string(data)); err != nil {
		return err
	}
	s.mfr = filter.NewManufacturerSelection(manufacturers)
	s.mfrLoaded = true
	return nil
}

// ResetManufacturers restores the default of all manufacturers enabled.
func (s *Service) ResetManufacturers(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, keyManufacturers); err != nil {
		return err
	}
	s.mfr = filter.AllManufacturers()
	s.mfrLoaded = true
	return nil
}

// WeightUnit returns the preferred display unit; nil means no explicit
// preference.
func (s *Service) WeightUnit(ctx context.Context) (*units.Weight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unitLoaded {
		val, ok, err := s.store.Get(ctx, keyWeightUnit)
		if err != nil {
			return nil, err
		}
		if ok {
			if unit, valid := units.Parse(val); valid {
				s.unit = &unit
			}
		}
		s.unitLoaded = true
	}
	return s.unit, nil
}

func (s *Service) SetWeightUnit(ctx context.Context, unit units.Weight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(ctx, keyWeightUnit, string(unit)); err != nil {
		return err
	}
	s.unit = &unit
	s.unitLoaded = true
	return nil
}

func (s *Service) ResetWeightUnit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, keyWeightUnit); err != nil {
		return err
	}
	s.unit = nil
	s.unitLoaded = true
	return nil
}
