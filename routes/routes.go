package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sweet-paradise/config"
	"sweet-paradise/controllers"
	"sweet-paradise/middleware"
	"sweet-paradise/models"
	"sweet-paradise/repositories"
	"sweet-paradise/services"
)

func SetupRoutes(router *gin.Engine) {
	sweetService := services.NewSweetService(repositories.NewSweetRepository())

	var idempotency services.IdempotencyStore
	if config.RedisClient != nil {
		idempotency = repositories.NewIdempotencyRepository(config.RedisClient)
	} else {
		log.Println("Redis unavailable: order creation runs without idempotency dedup")
	}

	var mailer services.OrderMailer
	if emailService, err := models.NewEmailService(); err != nil {
		log.Println("Email service disabled:", err)
	} else {
		mailer = emailService
	}

	orderService := services.NewOrderService(repositories.NewOrderRepository(), repositories.NewUserRepository(), idempotency, mailer)
	cartService := services.NewCartService(config.RedisClient)

	sweetCtrl := controllers.NewSweetController(sweetService)
	orderCtrl := controllers.NewOrderController(orderService)
	cartCtrl := controllers.NewCartController(cartService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/sweets", sweetCtrl.GetAllSweets)
		auth.GET("/sweets/search", sweetCtrl.SearchSweets)
		auth.GET("/sweets/:id", sweetCtrl.GetSweetByID)
		auth.POST("/sweets/:id/purchase", sweetCtrl.PurchaseSweet)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.DELETE("/cart", cartCtrl.ClearCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)
		auth.PUT("/cart/shipping", cartCtrl.SaveShippingAddress)
		auth.PUT("/cart/payment", cartCtrl.SavePaymentMethod)

		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders/myorders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrderByID)
		auth.GET("/orders/:id/status", orderCtrl.GetOrderStatus)
	}

	admin := router.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/sweets", sweetCtrl.CreateSweet)
		admin.PUT("/sweets/:id", sweetCtrl.UpdateSweet)
		admin.DELETE("/sweets/:id", sweetCtrl.DeleteSweet)
		admin.POST("/sweets/:id/restock", sweetCtrl.RestockSweet)

		admin.GET("/admin/orders", orderCtrl.GetAllOrders)
	}
}
