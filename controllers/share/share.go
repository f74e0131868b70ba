package shareControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/collections"
)

type ShareRequest struct {
	Title    string `json:"title" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Platform string `json:"platform"`
}

// GET /user/shared
func GetSharedItems(sh *collections.SharedItems) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "items": sh.Items()})
	}
}

// POST /user/shared — always records a fresh entry; id and timestamp are
// assigned server-side.
func AddSharedItem(sh *collections.SharedItems) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ShareRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "title and url are required"})
			return
		}
		item := sh.Add(req.Title, req.URL, req.Platform)
		c.JSON(http.StatusCreated, gin.H{"success": true, "item": item})
	}
}

// DELETE /user/shared/:id
func RemoveSharedItem(sh *collections.SharedItems) gin.HandlerFunc {
	return func(c *gin.Context) {
		removed := sh.Remove(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"success": true, "removed": removed})
	}
}

// DELETE /user/shared
func ClearSharedItems(sh *collections.SharedItems) gin.HandlerFunc {
	return func(c *gin.Context) {
		sh.Clear()
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
