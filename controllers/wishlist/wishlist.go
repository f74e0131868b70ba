package wishlistControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/collections"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/models"
)

type WishlistAddRequest struct {
	models.ProductSnapshot
}

// GET /user/wishlist
func GetWishlist(w *collections.Wishlist) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "items": w.Items()})
	}
}

// POST /user/wishlist
func AddToWishlist(w *collections.Wishlist) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WishlistAddRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "product id is required"})
			return
		}
		added := w.Add(req.ProductSnapshot)
		c.JSON(http.StatusOK, gin.H{"success": true, "added": added})
	}
}

// DELETE /user/wishlist/:id
func RemoveFromWishlist(w *collections.Wishlist) gin.HandlerFunc {
	return func(c *gin.Context) {
		removed := w.Remove(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"success": true, "removed": removed})
	}
}

// DELETE /user/wishlist
func ClearWishlist(w *collections.Wishlist) gin.HandlerFunc {
	return func(c *gin.Context) {
		w.Clear()
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
