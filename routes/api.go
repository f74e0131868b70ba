package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	analysisControllers "github.com/nohsangwoo/smart-wholesale-platform-sub001/controllers/analysis"
	quoteControllers "github.com/nohsangwoo/smart-wholesale-platform-sub001/controllers/quote"
	vendorControllers "github.com/nohsangwoo/smart-wholesale-platform-sub001/controllers/vendor"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/middleware"
)

// SetupAPIRoutes registers the analysis pipeline, the quote generator and the
// vendor catalog reads.
func SetupAPIRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")
	{
		// Analysis emulates a slow upstream AI call
		api.POST("/analyze", middleware.Latency(2*time.Second), analysisControllers.AnalyzeHandler(d.Searches))
		api.POST("/quotes", middleware.Latency(500*time.Millisecond), quoteControllers.GenerateQuotesHandler())
	}

	vendors := r.Group("/vendors")
	{
		vendors.GET("", vendorControllers.GetVendors())
		vendors.GET("/:id", vendorControllers.GetVendorByID())
	}
}
