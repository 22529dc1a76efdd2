package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sweet-paradise/delivery"
	"sweet-paradise/models"
	"sweet-paradise/services"
)

// IdempotencyHeader carries the client-generated per-checkout token that
// dedupes resubmitted order creations.
const IdempotencyHeader = "Idempotency-Key"

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

func (ctrl *OrderController) getPaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// @Summary Create order
// @Description Check out a cart snapshot; payment is simulated as instantly successful
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client-generated checkout token"
// @Param order body models.CreateOrderRequest true "Order data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	userID := c.GetInt("user_id")
	userEmail := c.GetString("user_email")

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.NewValidationError("Invalid request body"))
		return
	}

	order, created, err := ctrl.orderService.CreateOrder(
		c.Request.Context(), userID, userEmail, c.GetHeader(IdempotencyHeader), req,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	message := "Order created successfully"
	if !created {
		// Replayed idempotency key: the earlier order is the result.
		status = http.StatusOK
		message = "Order already created"
	}

	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    order,
	})
}

// @Summary Get my orders
// @Description Orders of the authenticated user, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders/myorders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetInt("user_id")

	orders, err := ctrl.orderService.ListOrdersForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}

// @Summary Get order by ID
// @Description Order details with the owning user's name and email
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, models.NewValidationError("Invalid order ID"))
		return
	}

	order, err := ctrl.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    order,
	})
}

// @Summary Get delivery status
// @Description Countdown toward the order's expected delivery time
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/status [get]
func (ctrl *OrderController) GetOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, models.NewValidationError("Invalid order ID"))
		return
	}

	order, err := ctrl.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Delivery status retrieved successfully",
		Data:    delivery.Status(time.Now(), order.ExpectedDeliveryAt),
	})
}

// @Summary Get all orders
// @Description All orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit := ctrl.getPaginationParams(c, 10)

	orders, total, err := ctrl.orderService.ListAllOrders(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	c.JSON(http.StatusOK, models.PaginatedResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}
