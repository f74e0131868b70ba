package models

import "time"

type OrderStatus string

const (
	// Order statuses (brokered purchase flow)
	OrderStatusPending    OrderStatus = "pending"    // Request received, awaiting quotes
	OrderStatusQuoted     OrderStatus = "quoted"     // Vendor quotes available
	OrderStatusPaid       OrderStatus = "paid"       // Buyer paid the winning quote
	OrderStatusPurchasing OrderStatus = "purchasing" // Vendor buying from the source site
	OrderStatusShipping   OrderStatus = "shipping"   // In international transit
	OrderStatusDelivered  OrderStatus = "delivered"  // Buyer received the item
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before purchase
)

type Order struct {
	ID        string          `json:"id"`
	Status    OrderStatus     `json:"status"`
	OrderDate time.Time       `json:"orderDate"`
	Product   ProductSnapshot `json:"product"`
	Shipping  ShippingInfo    `json:"shipping"`
	History   []OrderEvent    `json:"history"`
}

type ShippingInfo struct {
	Recipient      string `json:"recipient"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Carrier        string `json:"carrier,omitempty"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
}

type OrderEvent struct {
	Status      OrderStatus `json:"status"`
	Timestamp   time.Time   `json:"timestamp"`
	Description string      `json:"description"`
}
