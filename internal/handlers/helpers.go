package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"glass-catalog-service/internal/codes"
	"glass-catalog-service/internal/models"
	"glass-catalog-service/internal/repository"
)

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// respondError maps service/repository errors onto the response envelope.
func respondError(c *gin.Context, err error) {
	var validationErr *codes.ValidationError
	switch {
	case repository.IsNotFound(err):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "NOT_FOUND",
				Message: "Record not found",
			},
		})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: validationErr.Error(),
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "INTERNAL_ERROR",
				Message: err.Error(),
			},
		})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		},
	})
}
