package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/mockdata"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/models"
)

func newRouter(book *mockdata.OrderBook) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders", GetAllOrdersHandler(book))
	r.GET("/orders/:orderID", GetOrderByIDHandler(book))
	r.POST("/orders", CreateOrderHandler(book))
	r.PUT("/orders/:orderID/status", UpdateOrderStatusHandler(book))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetAllOrders(t *testing.T) {
	r := newRouter(mockdata.NewOrderBook())

	w := doJSON(t, r, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Orders  []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Orders, 3)
}

func TestGetOrderByID(t *testing.T) {
	book := mockdata.NewOrderBook()
	r := newRouter(book)

	w := doJSON(t, r, http.MethodGet, "/orders/"+book.DefaultID(), "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool         `json:"success"`
		Order   models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, book.DefaultID(), resp.Order.ID)
	assert.NotEmpty(t, resp.Order.History)
}

func TestGetOrderByIDNotFound(t *testing.T) {
	r := newRouter(mockdata.NewOrderBook())

	w := doJSON(t, r, http.MethodGet, "/orders/unknown-id", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

// Order creation never mints an id: the response is always the known default
// mock order.
func TestCreateOrderCoercesToDefault(t *testing.T) {
	book := mockdata.NewOrderBook()
	r := newRouter(book)

	body := `{"productUrl":"https://item.taobao.com/item.htm?id=1","recipient":"김테스트","phone":"010-1234-5678","address":"서울특별시 강남구"}`
	w := doJSON(t, r, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool         `json:"success"`
		Order   models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, book.DefaultID(), resp.Order.ID)
}

func TestCreateOrderMissingFields(t *testing.T) {
	r := newRouter(mockdata.NewOrderBook())

	w := doJSON(t, r, http.MethodPost, "/orders", `{"recipient":"김테스트"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	book := mockdata.NewOrderBook()
	r := newRouter(book)

	before, _ := book.Get(book.DefaultID())

	body := `{"status":"delivered","description":"배송 완료"}`
	w := doJSON(t, r, http.MethodPut, "/orders/"+book.DefaultID()+"/status", body)
	require.Equal(t, http.StatusOK, w.Code)

	after, ok := book.Get(book.DefaultID())
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusDelivered, after.Status)
	assert.Len(t, after.History, len(before.History)+1)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	book := mockdata.NewOrderBook()
	r := newRouter(book)

	w := doJSON(t, r, http.MethodPut, "/orders/"+book.DefaultID()+"/status", `{"status":"teleported"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
