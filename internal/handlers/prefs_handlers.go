package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glass-catalog-service/internal/coe"
	"glass-catalog-service/internal/models"
	"glass-catalog-service/internal/prefs"
	"glass-catalog-service/internal/units"
)

// PrefsHandler exposes the stored filter preferences: COE selection,
// enabled manufacturers and weight unit.
type PrefsHandler struct {
	prefs *prefs.Service
}

func NewPrefsHandler(prefService *prefs.Service) *PrefsHandler {
	return &PrefsHandler{prefs: prefService}
}

type preferencesPayload struct {
	COE           *models.COE `json:"coe"`
	AllowAll      bool        `json:"allowAllManufacturers"`
	Manufacturers []string    `json:"manufacturers,omitempty"`
	WeightUnit    string      `json:"weightUnit"`
}

// GetPreferences returns the effective preference state.
func (h *PrefsHandler) GetPreferences(c *gin.Context) {
	ctx := c.Request.Context()

	selectedCOE, err := h.prefs.COE(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	selection, err := h.prefs.Manufacturers(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	unit, err := h.prefs.WeightUnit(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	payload := preferencesPayload{
		COE:        selectedCOE,
		AllowAll:   selection.AllowAll,
		WeightUnit: string(units.Resolve(unit, units.Pounds)),
	}
	if !selection.AllowAll {
		for m := range selection.Enabled {
			payload.Manufacturers = append(payload.Manufacturers, m)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: payload})
}

type setCOERequest struct {
	COE models.COE `json:"coe" binding:"required"`
}

// SetCOE selects the COE filter.
func (h *PrefsHandler) SetCOE(c *gin.Context) {
	var req setCOERequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if !req.COE.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: "coe must be one of 33, 90, 96, 104",
			},
		})
		return
	}

	if err := h.prefs.SetCOE(c.Request.Context(), req.COE); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: stringPtr("COE filter updated")})
}

// ResetCOE restores the default of no COE filter.
func (h *PrefsHandler) ResetCOE(c *gin.Context) {
	if err := h.prefs.ResetCOE(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: stringPtr("COE filter reset")})
}

type setManufacturersRequest struct {
	Manufacturers []string `json:"manufacturers" binding:"required,min=1"`
}

// SetManufacturers restricts the enabled-manufacturer set.
func (h *PrefsHandler) SetManufacturers(c *gin.Context) {
	var req setManufacturersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.prefs.SetManufacturers(c.Request.Context(), req.Manufacturers); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: stringPtr("Manufacturer filter updated")})
}

// ResetManufacturers restores the default of all manufacturers enabled.
func (h *PrefsHandler) ResetManufacturers(c *gin.Context) {
	if err := h.prefs.ResetManufacturers(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: stringPtr("Manufacturer filter reset")})
}

type setWeightUnitRequest struct {
	Unit string `json:"unit" binding:"required"`
}

// SetWeightUnit selects the preferred display unit.
func (h *PrefsHandler) SetWeightUnit(c *gin.Context) {
	var req setWeightUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	unit, ok := units.Parse(req.Unit)
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

	if err := h.prefs.SetWeightUnit(c.Request.Context(), unit); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: stringPtr("Weight unit updated")})
}

// ResetWeightUnit clears the stored unit preference; totals fall back to
// pounds.
func (h *PrefsHandler) ResetWeightUnit(c *gin.Context) {
	if err := h.prefs.ResetWeightUnit(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: stringPtr("Weight unit reset")})
}

// ListManufacturers returns the static manufacturer registry with the COE
// classes each produces.
func (h *PrefsHandler) ListManufacturers(c *gin.Context) {
	type entry struct {
		Code string       `json:"code"`
		Name string       `json:"name"`
		COEs []models.COE `json:"coes"`
	}

	registry := coe.Manufacturers()
	entries := make([]entry, len(registry))
	for i, m := range registry {
		entries[i] = entry{Code: m.Code, Name: m.Name, COEs: m.COEs}
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: entries})
}
