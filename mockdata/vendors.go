package mockdata

import "github.com/nohsangwoo/smart-wholesale-platform-sub001/models"

// Vendors is the read-only purchasing-agent catalog. Quote generation emits
// exactly one bid per entry.
var Vendors = []models.Vendor{
	{
		ID: "vendor-001", Name: "글로벌 익스프레스", Rating: 4.8, ReviewCount: 1243,
		Verified: true, Premium: true, ResponseTime: "평균 30분", SuccessRate: 99,
		CompletedOrders: 5821, Tags: []string{"빠른배송", "정품보장"},
	},
	{
		ID: "vendor-002", Name: "차이나 다이렉트", Rating: 4.6, ReviewCount: 987,
		Verified: true, Premium: false, ResponseTime: "평균 1시간", SuccessRate: 97,
		CompletedOrders: 4102, Tags: []string{"최저가", "대량구매"},
	},
	{
		ID: "vendor-003", Name: "타오바오 마스터", Rating: 4.9, ReviewCount: 2156,
		Verified: true, Premium: true, ResponseTime: "평균 15분", SuccessRate: 99,
		CompletedOrders: 8930, Tags: []string{"프리미엄", "검수강화"},
	},
	{
		ID: "vendor-004", Name: "알리 셀렉트", Rating: 4.3, ReviewCount: 521,
		Verified: false, Premium: false, ResponseTime: "평균 3시간", SuccessRate: 94,
		CompletedOrders: 1754, Tags: []string{"신규할인"},
	},
	{
		ID: "vendor-005", Name: "1688 프로", Rating: 4.7, ReviewCount: 1532,
		Verified: true, Premium: false, ResponseTime: "평균 45분", SuccessRate: 98,
		CompletedOrders: 6217, Tags: []string{"도매전문", "B2B"},
	},
	{
		ID: "vendor-006", Name: "스피드 바이", Rating: 4.5, ReviewCount: 803,
		Verified: true, Premium: true, ResponseTime: "평균 20분", SuccessRate: 96,
		CompletedOrders: 3489, Tags: []string{"항공특송", "긴급구매"},
	},
}

// VendorByID returns the catalog entry for id, or nil when absent.
func VendorByID(id string) *models.Vendor {
	for i := range Vendors {
		if Vendors[i].ID == id {
			return &Vendors[i]
		}
	}
	return nil
}
