package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/nohsangwoo/smart-wholesale-platform-sub001/controllers/order"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/middleware"
)

// SetupAdminRoutes registers the API-key-protected admin endpoints. The admin
// login itself lives with the other auth routes.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(d.Orders))
		}
	}
}
