package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sweet-paradise/cart"
	"sweet-paradise/models"
	"sweet-paradise/services"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func cartView(store *cart.Store) gin.H {
	return gin.H{
		"cartItems":       store.Items,
		"shippingAddress": store.ShippingAddress,
		"paymentMethod":   store.PaymentMethod,
		"totalPrice":      store.TotalPrice(),
	}
}

// @Summary Get cart
// @Description Current cart session of the authenticated user
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	store, err := ctrl.cartService.GetCart(c.GetInt("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved successfully",
		Data:    cartView(store),
	})
}

// @Summary Add cart item
// @Description Add a sweet to the cart; re-adding the same product replaces its entry
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Cart item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.NewValidationError("Product, name and a quantity of at least 1 are required"))
		return
	}

	store, err := ctrl.cartService.AddItem(c.GetInt("user_id"), models.CartItem{
		Product: req.Product,
		Name:    req.Name,
		Image:   req.Image,
		Price:   req.Price,
		Qty:     req.Qty,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    cartView(store),
	})
}

// @Summary Remove cart item
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		respondError(c, models.NewValidationError("Invalid product ID"))
		return
	}

	store, err := ctrl.cartService.RemoveItem(c.GetInt("user_id"), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed from cart",
		Data:    cartView(store),
	})
}

// @Summary Save shipping address
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param address body models.ShippingAddress true "Shipping address"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/shipping [put]
func (ctrl *CartController) SaveShippingAddress(c *gin.Context) {
	var addr models.ShippingAddress
	if err := c.ShouldBindJSON(&addr); err != nil {
		respondError(c, models.NewValidationError("Invalid request body"))
		return
	}
	if addr.Address == "" || addr.City == "" || addr.PostalCode == "" || addr.Country == "" {
		respondError(c, models.NewValidationError("Address, city, postal code and country are required"))
		return
	}

	store, err := ctrl.cartService.SaveShippingAddress(c.GetInt("user_id"), addr)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Shipping address saved",
		Data:    cartView(store),
	})
}

// @Summary Save payment method
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payment body models.SavePaymentMethodRequest true "Payment method"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/payment [put]
func (ctrl *CartController) SavePaymentMethod(c *gin.Context) {
	var req models.SavePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.NewValidationError("Payment method is required"))
		return
	}

	store, err := ctrl.cartService.SavePaymentMethod(c.GetInt("user_id"), req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Payment method saved",
		Data:    cartView(store),
	})
}

// @Summary Clear cart
// @Description Empty the cart after checkout; shipping address and payment method are kept
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.cartService.ClearCart(c.GetInt("user_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared",
	})
}
