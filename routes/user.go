package routes

import (
	"github.com/gin-gonic/gin"

	searchControllers "github.com/nohsangwoo/smart-wholesale-platform-sub001/controllers/search"
	shareControllers "github.com/nohsangwoo/smart-wholesale-platform-sub001/controllers/share"
	wishlistControllers "github.com/nohsangwoo/smart-wholesale-platform-sub001/controllers/wishlist"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("", wishlistControllers.GetWishlist(d.Wishlist))
			wishlistGroup.POST("", wishlistControllers.AddToWishlist(d.Wishlist))
			wishlistGroup.DELETE("/:id", wishlistControllers.RemoveFromWishlist(d.Wishlist))
			wishlistGroup.DELETE("", wishlistControllers.ClearWishlist(d.Wishlist))
		}

		// ──────────────── Share History ────────────────
		sharedGroup := userGroup.Group("/shared")
		{
			sharedGroup.GET("", shareControllers.GetSharedItems(d.Shared))
			sharedGroup.POST("", shareControllers.AddSharedItem(d.Shared))
			sharedGroup.DELETE("/:id", shareControllers.RemoveSharedItem(d.Shared))
			sharedGroup.DELETE("", shareControllers.ClearSharedItems(d.Shared))
		}

		// ──────────────── Recent Searches ────────────────
		searchGroup := userGroup.Group("/searches")
		{
			searchGroup.GET("", searchControllers.GetRecentSearches(d.Searches))
			searchGroup.POST("", searchControllers.AddRecentSearch(d.Searches))
			searchGroup.DELETE("", searchControllers.ClearRecentSearches(d.Searches))
		}
	}
}
