package routes

import (
	"github.com/Meera-417/VastraKart/controllers"
	"github.com/gin-gonic/gin"
)

// initStorefrontRoutes wires the public routes the storefront pages call.
func initStorefrontRoutes(api *gin.RouterGroup) {
	// Catalog reads
	api.GET("/products", controllers.ListProducts)
	api.GET("/products/:id", controllers.GetProduct)
	api.GET("/search", controllers.SearchProducts)
	api.GET("/trending", controllers.ListTrendingProducts)
	api.GET("/categories", controllers.ListCategories)
	api.GET("/categories/:id", controllers.GetCategory)
	api.GET("/banners", controllers.ListBanners)

	// Checkout
	orders := api.Group("/orders")
	{
		orders.POST("", controllers.PlaceOrder)
		orders.GET("/user", controllers.ListUserOrders)
	}

	payment := api.Group("/payment")
	{
		payment.POST("/initiate", controllers.InitiateRazorpayPayment)
		payment.POST("/verify", controllers.VerifyRazorpayPayment)
	}
}
