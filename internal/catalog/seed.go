package catalog

import "github.com/tusharoffice40/Whole-X/pkg/models"

// Categories lists the storefront's featured categories.
var Categories = []string{
	"Clothing",
	"Electronics",
	"Home & Kitchen",
	"Health & Beauty",
	"Industrial Tools",
	"Food & Beverage",
}

// seedProducts is the compiled-in catalog. Prices are unit prices in
// cents; stock is informational and never decremented.
var seedProducts = []models.Product{
	{
		ID:             "1",
		Name:           "Premium Cotton Plain T-Shirts",
		Description:    "High-quality 180 GSM cotton t-shirts suitable for printing and resale. Available in various colors.",
		Category:       "Clothing",
		PriceCents:     450,
		MinOrderQty:    50,
		Stock:          2500,
		ImageURL:       "https://picsum.photos/seed/clothing1/400/400",
		WholesalerID:   "w1",
		WholesalerName: "Apparel Hub Global",
	},
	{
		ID:             "2",
		Name:           "Wireless Bluetooth Earbuds Pro",
		Description:    "Noise-cancelling wireless earbuds with 24-hour battery life. Perfect for tech retailers.",
		Category:       "Electronics",
		PriceCents:     1200,
		MinOrderQty:    20,
		Stock:          500,
		ImageURL:       "https://picsum.photos/seed/tech1/400/400",
		WholesalerID:   "w2",
		WholesalerName: "NextGen Electronics",
	},
	{
		ID:             "3",
		Name:           "Stainless Steel Water Bottles (1L)",
		Description:    "Eco-friendly double-walled vacuum insulated bottles. Bulk packaging available.",
		Category:       "Home & Kitchen",
		PriceCents:     680,
		MinOrderQty:    100,
		Stock:          1200,
		ImageURL:       "https://picsum.photos/seed/home1/400/400",
		WholesalerID:   "w3",
		WholesalerName: "EcoLifestyle Wholesalers",
	},
	{
		ID:             "4",
		Name:           "Organic Lavender Essential Oil",
		Description:    "100% pure therapeutic grade essential oil. Bulk 500ml containers.",
		Category:       "Health & Beauty",
		PriceCents:     1500,
		MinOrderQty:    10,
		Stock:          150,
		ImageURL:       "https://picsum.photos/seed/beauty1/400/400",
		WholesalerID:   "w4",
		WholesalerName: "Natura Oils Co.",
	},
	{
		ID:             "5",
		Name:           "Heavy Duty LED Work Lights",
		Description:    "IP65 waterproof rechargeable work lights for industrial use.",
		Category:       "Industrial Tools",
		PriceCents:     2500,
		MinOrderQty:    15,
		Stock:          300,
		ImageURL:       "https://picsum.photos/seed/tools1/400/400",
		WholesalerID:   "w5",
		WholesalerName: "Industrial Giants",
	},
	{
		ID:             "6",
		Name:           "Roasted Arabica Coffee Beans",
		Description:    "Medium roast fair-trade Arabica beans. 5kg bulk bags.",
		Category:       "Food & Beverage",
		PriceCents:     4200,
		MinOrderQty:    5,
		Stock:          100,
		ImageURL:       "https://picsum.photos/seed/coffee1/400/400",
		WholesalerID:   "w6",
		WholesalerName: "Global Beans Importers",
	},
}
