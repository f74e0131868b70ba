package models

import "time"

// Vendor is read-only reference data describing a purchasing agent.
type Vendor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	Verified        bool     `json:"verified"`
	Premium         bool     `json:"premium"`
	ResponseTime    string   `json:"responseTime"`
	SuccessRate     int      `json:"successRate"`
	CompletedOrders int      `json:"completedOrders"`
	Tags            []string `json:"tags"`
}

// AdditionalFees breaks a quote's surcharges out per category.
type AdditionalFees struct {
	ServiceFee  int `json:"serviceFee"`
	ShippingFee int `json:"shippingFee"`
	TaxFee      int `json:"taxFee"`
	OtherFees   int `json:"otherFees"`
}

// VendorQuote is generated fresh per request and never persisted.
type VendorQuote struct {
	VendorID              string         `json:"vendorId"`
	OrderID               string         `json:"orderId"`
	Price                 int            `json:"price"`
	EstimatedDeliveryDays int            `json:"estimatedDeliveryDays"`
	Description           string         `json:"description"`
	AdditionalFees        AdditionalFees `json:"additionalFees"`
	CreatedAt             time.Time      `json:"createdAt"`
}
