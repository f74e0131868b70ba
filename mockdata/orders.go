package mockdata

import (
	"sync"
	"time"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/models"
)

// OrderBook holds the mock order set. Reads hand out copies; status updates
// mutate in place under the lock. There is no backing server of record, so
// state lives for the process lifetime only.
type OrderBook struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewOrderBook() *OrderBook {
	return &OrderBook{orders: seedOrders()}
}

// List returns all orders, newest first.
func (b *OrderBook) List() []models.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Order, len(b.orders))
	copy(out, b.orders)
	return out
}

// Get returns the order with the given id.
func (b *OrderBook) Get(id string) (models.Order, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, o := range b.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// DefaultID is the id every order-creation request resolves to. The mock
// backend never mints new ids; creation coerces to this known-valid order.
func (b *OrderBook) DefaultID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.orders[0].ID
}

// UpdateStatus moves the order to status and appends a history event.
func (b *OrderBook) UpdateStatus(id string, status models.OrderStatus, description string) (models.Order, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].ID != id {
			continue
		}
		b.orders[i].Status = status
		b.orders[i].History = append(b.orders[i].History, models.OrderEvent{
			Status:      status,
			Timestamp:   time.Now(),
			Description: description,
		})
		return b.orders[i], true
	}
	return models.Order{}, false
}

func seedOrders() []models.Order {
	base := time.Now().AddDate(0, 0, -14)
	return []models.Order{
		{
			ID:        "ORD-20250810-001",
			Status:    models.OrderStatusShipping,
			OrderDate: base,
			Product: models.ProductSnapshot{
				ID: "prod-001", Title: "무선 블루투스 이어폰", Platform: "Taobao",
				OriginalPrice: 45000, EstimatedPrice: 59400, Fees: 2250, Tax: 3600,
				ShippingCost: 18000, ImageURL: "/images/products/earbuds.jpg",
				OriginalURL: "https://item.taobao.com/item.htm?id=7213344521",
			},
			Shipping: models.ShippingInfo{
				Recipient: "김테스트", Phone: "010-1234-5678",
				Address: "서울특별시 강남구 테헤란로 123", Carrier: "CJ대한통운",
				TrackingNumber: "588812349071",
			},
			History: []models.OrderEvent{
				{Status: models.OrderStatusPending, Timestamp: base, Description: "구매대행 요청 접수"},
				{Status: models.OrderStatusQuoted, Timestamp: base.AddDate(0, 0, 1), Description: "견적 6건 도착"},
				{Status: models.OrderStatusPaid, Timestamp: base.AddDate(0, 0, 2), Description: "결제 완료"},
				{Status: models.OrderStatusPurchasing, Timestamp: base.AddDate(0, 0, 3), Description: "현지 구매 진행"},
				{Status: models.OrderStatusShipping, Timestamp: base.AddDate(0, 0, 6), Description: "국제 배송 출발"},
			},
		},
		{
			ID:        "ORD-20250802-002",
			Status:    models.OrderStatusDelivered,
			OrderDate: base.AddDate(0, 0, -8),
			Product: models.ProductSnapshot{
				ID: "prod-005", Title: "접이식 노트북 거치대", Platform: "Alibaba",
				OriginalPrice: 33000, EstimatedPrice: 43230, Fees: 1650, Tax: 2640,
				ShippingCost: 21000, ImageURL: "/images/products/laptop-stand.jpg",
				OriginalURL: "https://www.alibaba.com/product-detail/1600334455.html",
			},
			Shipping: models.ShippingInfo{
				Recipient: "김테스트", Phone: "010-1234-5678",
				Address: "서울특별시 강남구 테헤란로 123", Carrier: "한진택배",
				TrackingNumber: "420339184402",
			},
			History: []models.OrderEvent{
				{Status: models.OrderStatusPending, Timestamp: base.AddDate(0, 0, -8), Description: "구매대행 요청 접수"},
				{Status: models.OrderStatusPaid, Timestamp: base.AddDate(0, 0, -7), Description: "결제 완료"},
				{Status: models.OrderStatusDelivered, Timestamp: base.AddDate(0, 0, -1), Description: "배송 완료"},
			},
		},
		{
			ID:        "ORD-20250725-003",
			Status:    models.OrderStatusPending,
			OrderDate: base.AddDate(0, 0, -2),
			Product: models.ProductSnapshot{
				ID: "prod-003", Title: "휴대용 미니 가습기", Platform: "1688",
				OriginalPrice: 28000, EstimatedPrice: 37240, Fees: 1400, Tax: 2240,
				ShippingCost: 16000, ImageURL: "/images/products/humidifier.jpg",
				OriginalURL: "https://detail.1688.com/offer/712998812.html",
			},
			Shipping: models.ShippingInfo{
				Recipient: "김테스트", Phone: "010-1234-5678",
				Address: "서울특별시 강남구 테헤란로 123",
			},
			History: []models.OrderEvent{
				{Status: models.OrderStatusPending, Timestamp: base.AddDate(0, 0, -2), Description: "구매대행 요청 접수"},
			},
		},
	}
}
