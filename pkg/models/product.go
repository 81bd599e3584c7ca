package models

// Product is a wholesale listing. The catalog seeds these once at startup
// and they are immutable afterwards; Stock is informational only and is
// never decremented by checkout.
type Product struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	PriceCents     int64  `json:"price_cents"`
	MinOrderQty    int    `json:"min_order_qty"`
	Stock          int    `json:"stock"`
	ImageURL       string `json:"image_url"`
	WholesalerID   string `json:"wholesaler_id"`
	WholesalerName string `json:"wholesaler_name"`
}
