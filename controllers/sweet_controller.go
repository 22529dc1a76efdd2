package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sweet-paradise/models"
	"sweet-paradise/services"
)

type SweetController struct {
	sweetService *services.SweetService
}

func NewSweetController(sweetService *services.SweetService) *SweetController {
	return &SweetController{sweetService: sweetService}
}

// @Summary Get all sweets
// @Description List the full catalog
// @Tags Sweets
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /sweets [get]
func (ctrl *SweetController) GetAllSweets(c *gin.Context) {
	sweets, err := ctrl.sweetService.GetAllSweets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sweets retrieved successfully",
		Data:    sweets,
	})
}

// @Summary Search sweets
// @Description Case-insensitive substring search on name/category plus an inclusive price range
// @Tags Sweets
// @Security BearerAuth
// @Produce json
// @Param name query string false "Name substring"
// @Param category query string false "Category substring"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /sweets/search [get]
func (ctrl *SweetController) SearchSweets(c *gin.Context) {
	filter := models.SweetFilter{
		Name:     c.Query("name"),
		Category: c.Query("category"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(c, models.NewValidationError("minPrice must be a number"))
			return
		}
		filter.MinPrice = &value
	}
	if raw := c.Query("maxPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(c, models.NewValidationError("maxPrice must be a number"))
			return
		}
		filter.MaxPrice = &value
	}

	sweets, err := ctrl.sweetService.SearchSweets(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sweets retrieved successfully",
		Data:    sweets,
	})
}

// @Summary Get sweet by ID
// @Tags Sweets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sweet ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /sweets/{id} [get]
func (ctrl *SweetController) GetSweetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, models.NewValidationError("Invalid sweet ID"))
		return
	}

	sweet, err := ctrl.sweetService.GetSweetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sweet retrieved successfully",
		Data:    sweet,
	})
}

// @Summary Create sweet
// @Description Add a new sweet to the catalog (Admin)
// @Tags Sweets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sweet body models.CreateSweetRequest true "Sweet data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /sweets [post]
func (ctrl *SweetController) CreateSweet(c *gin.Context) {
	var req models.CreateSweetRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, models.NewValidationError("Name and category are required"))
		return
	}

	sweet, err := ctrl.sweetService.CreateSweet(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Sweet created successfully",
		Data:    sweet,
	})
}

// @Summary Update sweet
// @Description Partially update a sweet (Admin)
// @Tags Sweets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Sweet ID"
// @Param sweet body models.UpdateSweetRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /sweets/{id} [put]
func (ctrl *SweetController) UpdateSweet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, models.NewValidationError("Invalid sweet ID"))
		return
	}

	var req models.UpdateSweetRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, models.NewValidationError("Invalid request body"))
		return
	}

	sweet, err := ctrl.sweetService.UpdateSweet(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sweet updated successfully",
		Data:    sweet,
	})
}

// @Summary Delete sweet
// @Description Remove a sweet from the catalog (Admin)
// @Tags Sweets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sweet ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /sweets/{id} [delete]
func (ctrl *SweetController) DeleteSweet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, models.NewValidationError("Invalid sweet ID"))
		return
	}

	if err := ctrl.sweetService.DeleteSweet(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sweet removed",
	})
}

// @Summary Purchase sweet
// @Description Take one unit off the shelf if stock remains
// @Tags Sweets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sweet ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sweets/{id}/purchase [post]
func (ctrl *SweetController) PurchaseSweet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, models.NewValidationError("Invalid sweet ID"))
		return
	}

	sweet, err := ctrl.sweetService.PurchaseSweet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Purchase successful",
		Data:    sweet,
	})
}

// @Summary Restock sweet
// @Description Add stock to a sweet (Admin); defaults to 1 unit
// @Tags Sweets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Sweet ID"
// @Param restock body models.RestockRequest false "Restock amount"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /sweets/{id}/restock [post]
func (ctrl *SweetController) RestockSweet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, models.NewValidationError("Invalid sweet ID"))
		return
	}

	var req models.RestockRequest
	_ = c.ShouldBind(&req)

	sweet, err := ctrl.sweetService.RestockSweet(c.Request.Context(), id, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Restock successful",
		Data:    sweet,
	})
}
