package analysisControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/collections"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/pricing"
)

type AnalyzeRequest struct {
	URL string `json:"url"`
}

// POST /api/analyze
func AnalyzeHandler(searches *collections.RecentSearches) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "상품 URL을 입력해 주세요."})
			return
		}

		product, err := pricing.Analyze(req.URL)
		if err != nil {
			if errors.Is(err, pricing.ErrMissingInput) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "상품 URL을 입력해 주세요."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "분석에 실패했습니다. 다시 시도해 주세요."})
			return
		}

		searches.Add(req.URL)
		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}
