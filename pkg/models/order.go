package models

import (
	"time"

	"github.com/tusharoffice40/Whole-X/pkg/enums"
)

// Order is the immutable snapshot produced by checkout. TotalCents is
// computed once from the cart at checkout time and never recomputed.
type Order struct {
	ID           string            `json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	Lines        []CartLine        `json:"lines"`
	TotalCents   int64             `json:"total_cents"`
	Status       enums.OrderStatus `json:"status"`
	WholesalerID string            `json:"wholesaler_id"`
	BuyerID      string            `json:"buyer_id"`
}
