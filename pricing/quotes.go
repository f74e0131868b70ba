package pricing

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/mockdata"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/models"
)

// ErrInvalidQuoteArgs is returned when the order id is empty or the price is
// not a positive finite number.
var ErrInvalidQuoteArgs = errors.New("orderId and a positive productPrice are required")

var quoteDescriptions = []string{
	"검수 후 안전하게 포장하여 발송해 드립니다.",
	"빠른 구매 진행, 당일 현지 발주 가능합니다.",
	"정품 여부 확인 후 구매를 진행합니다.",
	"대량 주문 시 추가 할인 협의 가능합니다.",
	"파손 위험 상품은 에어캡 2중 포장으로 발송합니다.",
}

// GenerateQuotes returns one randomized bid per catalog vendor. No two calls
// are required to agree, unlike Analyze.
func GenerateQuotes(orderID string, productPrice float64) ([]models.VendorQuote, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidQuoteArgs
	}
	if productPrice <= 0 || math.IsInf(productPrice, 0) || math.IsNaN(productPrice) {
		return nil, ErrInvalidQuoteArgs
	}

	quotes := make([]models.VendorQuote, 0, len(mockdata.Vendors))
	for _, v := range mockdata.Vendors {
		price := roundTo(productPrice*uniform(0.8, 1.2), 1000)
		otherFees := 0
		if v.Premium {
			otherFees = (1 + rand.Intn(5)) * 1000
		}
		quotes = append(quotes, models.VendorQuote{
			VendorID:              v.ID,
			OrderID:               orderID,
			Price:                 price,
			EstimatedDeliveryDays: 5 + rand.Intn(11),
			Description:           quoteDescriptions[rand.Intn(len(quoteDescriptions))],
			AdditionalFees: models.AdditionalFees{
				ServiceFee:  roundTo(float64(price)*uniform(0.05, 0.10), 100),
				ShippingFee: roundTo(uniform(10000, 30000), 1000),
				TaxFee:      roundTo(float64(price)*uniform(0.08, 0.12), 100),
				OtherFees:   otherFees,
			},
			CreatedAt: time.Now().Add(-time.Duration(rand.Intn(25)) * time.Hour),
		})
	}
	return quotes, nil
}

func uniform(lo, hi float64) float64 {
	return lo + rand.Float64()*(hi-lo)
}

func roundTo(v float64, unit int) int {
	return int(math.Round(v/float64(unit))) * unit
}
