package analysisControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/collections"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/models"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/store"
)

func analyze(t *testing.T, searches *collections.RecentSearches, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/analyze", AnalyzeHandler(searches))

	req, err := http.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpoint(t *testing.T) {
	searches := collections.NewRecentSearches(store.NewMemory())
	const u = "https://item.taobao.com/item.htm?id=7213344521"

	w := analyze(t, searches, `{"url":"`+u+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Product models.ProductSnapshot `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Taobao", resp.Product.Platform)
	assert.Equal(t, u, resp.Product.OriginalURL)
	assert.Positive(t, resp.Product.EstimatedPrice)

	// The analyzed URL lands in the recent-search history.
	assert.Equal(t, []string{u}, searches.Terms())
}

func TestAnalyzeEndpointMissingURL(t *testing.T) {
	searches := collections.NewRecentSearches(store.NewMemory())

	w := analyze(t, searches, `{"url":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	assert.Empty(t, searches.Terms(), "failed analyses are not recorded")
}
