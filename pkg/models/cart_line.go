package models

// CartLine is one product entry in the cart. Invariant: Quantity is never
// below Product.MinOrderQty; every write clamps up to the minimum.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
}

// SubtotalCents is the line price at the current quantity.
func (l CartLine) SubtotalCents() int64 {
	return l.Product.PriceCents * int64(l.Quantity)
}

// CartTotalCents sums line subtotals over the given cart lines.
func CartTotalCents(lines []CartLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.SubtotalCents()
	}
	return total
}
