package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sweet-paradise/models"
)

// respondError maps the service error taxonomy onto HTTP statuses:
// validation and out-of-stock to 400, missing records to 404, anything
// else to 500. All failures are terminal to the request.
func respondError(c *gin.Context, err error) {
	var vErr *models.ValidationError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: vErr.Message})
	case errors.Is(err, models.ErrOutOfStock):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: models.ErrOutOfStock.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Internal server error", Error: err.Error()})
	}
}
