package routes

import (
	"github.com/Meera-417/VastraKart/controllers"
	"github.com/Meera-417/VastraKart/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes wires the back office. Everything except login sits
// behind AdminAuthMiddleware.
func initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")
	admin.POST("/login", controllers.AdminLogin)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.GET("/dashboard", controllers.GetDashboardStats)

		protected.POST("/products", controllers.CreateProduct)
		protected.PUT("/products/:id", controllers.UpdateProduct)
		protected.DELETE("/products/:id", controllers.DeleteProduct)

		protected.POST("/categories", controllers.CreateCategory)
		protected.PUT("/categories/:id", controllers.UpdateCategory)
		protected.DELETE("/categories/:id", controllers.DeleteCategory)
		protected.POST("/categories/:id/subcategories", controllers.CreateSubcategory)
		protected.PUT("/subcategories/:id", controllers.UpdateSubcategory)
		protected.DELETE("/subcategories/:id", controllers.DeleteSubcategory)

		protected.POST("/banners", controllers.CreateBanner)
		protected.PUT("/banners/:id", controllers.UpdateBanner)
		protected.DELETE("/banners/:id", controllers.DeleteBanner)

		protected.GET("/orders", controllers.ListOrders)
		protected.GET("/orders/export", controllers.ExportOrders)
		protected.GET("/orders/:id", controllers.GetOrder)
		protected.PUT("/orders/:id/status", controllers.UpdateOrderStatus)
		protected.GET("/orders/:id/invoice", controllers.DownloadInvoice)
	}
}
