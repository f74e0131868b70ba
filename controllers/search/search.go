package searchControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/collections"
)

type SearchTermRequest struct {
	Term string `json:"term" binding:"required"`
}

// GET /user/searches
func GetRecentSearches(r *collections.RecentSearches) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "terms": r.Terms()})
	}
}

// POST /user/searches
func AddRecentSearch(r *collections.RecentSearches) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SearchTermRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "term is required"})
			return
		}
		r.Add(req.Term)
		c.JSON(http.StatusOK, gin.H{"success": true, "terms": r.Terms()})
	}
}

// DELETE /user/searches
func ClearRecentSearches(r *collections.RecentSearches) gin.HandlerFunc {
	return func(c *gin.Context) {
		r.Clear()
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
