package mockdata

import "github.com/nohsangwoo/smart-wholesale-platform-sub001/models"

// PlaceholderImage is substituted whenever a catalog entry has no usable
// local image path.
const PlaceholderImage = "/images/placeholder.png"

// Products is the base catalog the analysis pipeline selects from.
// Prices are in KRW.
var Products = []models.CatalogProduct{
	{ID: "prod-001", Title: "무선 블루투스 이어폰", OriginalPrice: 45000, ImageURL: "/images/products/earbuds.jpg"},
	{ID: "prod-002", Title: "스마트 워치 밴드", OriginalPrice: 12000, ImageURL: "/images/products/watch-band.jpg"},
	{ID: "prod-003", Title: "휴대용 미니 가습기", OriginalPrice: 28000, ImageURL: "/images/products/humidifier.jpg"},
	{ID: "prod-004", Title: "LED 무드등", OriginalPrice: 19000, ImageURL: "/images/products/mood-lamp.jpg"},
	{ID: "prod-005", Title: "접이식 노트북 거치대", OriginalPrice: 33000, ImageURL: "/images/products/laptop-stand.jpg"},
	{ID: "prod-006", Title: "대용량 보조배터리 20000mAh", OriginalPrice: 52000, ImageURL: "/images/products/power-bank.jpg"},
	{ID: "prod-007", Title: "캠핑용 랜턴", OriginalPrice: 24000, ImageURL: "https://cdn.example.com/lantern.jpg"},
	{ID: "prod-008", Title: "무선 충전 패드", OriginalPrice: 16000, ImageURL: ""},
}
