package models

// ProductSnapshot is the immutable record produced by the analysis pipeline
// (or picked from the catalog). ID is stable per catalog entry and doubles as
// the wishlist dedup key.
type ProductSnapshot struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Platform       string `json:"platform"`
	OriginalPrice  int    `json:"originalPrice"`
	EstimatedPrice int    `json:"estimatedPrice"`
	Fees           int    `json:"fees"`
	Tax            int    `json:"tax"`
	ShippingCost   int    `json:"shippingCost"`
	ImageURL       string `json:"imageUrl"`
	OriginalURL    string `json:"originalUrl"`
}

// CatalogProduct is a base product the pipeline selects from before pricing.
type CatalogProduct struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	OriginalPrice int    `json:"originalPrice"`
	ImageURL      string `json:"imageUrl"`
}
