package orders

import (
	"crypto/rand"
	"time"

	"github.com/tusharoffice40/Whole-X/pkg/enums"
	"github.com/tusharoffice40/Whole-X/pkg/models"
	"github.com/tusharoffice40/Whole-X/pkg/session"
)

// placeholderBuyerID stands in for a real account; the storefront has no
// authentication and every order carries the same buyer label.
const placeholderBuyerID = "user_123"

const (
	orderRefAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	orderRefLength   = 9
)

// Result reports what checkout did. Performed is false when the cart was
// empty and no order was created.
type Result struct {
	Performed bool          `json:"performed"`
	Order     *models.Order `json:"order,omitempty"`
}

// Service converts carts into immutable order snapshots and exposes the
// session's order history.
type Service interface {
	Checkout(sess *session.Session) Result
	History(sess *session.Session) []models.Order
}

type service struct {
	now func() time.Time
}

// NewService builds the order builder. The clock defaults to time.Now.
func NewService() Service {
	return &service{now: time.Now}
}

// Checkout freezes the current cart into an order, prepends it to the
// history, clears the cart, and navigates the session to the order
// history view. An empty cart is a silent no-op: no order, no navigation.
func (s *service) Checkout(sess *session.Session) Result {
	var result Result
	sess.Update(func(st *session.State) {
		if len(st.Cart) == 0 {
			return
		}

		lines := append([]models.CartLine(nil), st.Cart...)
		order := models.Order{
			ID:         newOrderRef(),
			CreatedAt:  s.now(),
			Lines:      lines,
			TotalCents: models.CartTotalCents(lines),
			Status:     enums.OrderStatusPending,
			// A cart spanning multiple wholesalers still yields one
			// order tagged with the first line's wholesaler.
			WholesalerID: lines[0].Product.WholesalerID,
			BuyerID:      placeholderBuyerID,
		}

		st.Orders = append([]models.Order{order}, st.Orders...)
		st.Cart = nil
		st.Page = enums.PageOrders

		result = Result{Performed: true, Order: &order}
	})
	return result
}

// History returns the newest-first order snapshot for the session.
func (s *service) History(sess *session.Session) []models.Order {
	return sess.Snapshot().Orders
}

// newOrderRef mints a short uppercase order token.
func newOrderRef() string {
	buf := make([]byte, orderRefLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i, b := range buf {
		buf[i] = orderRefAlphabet[int(b)%len(orderRefAlphabet)]
	}
	return string(buf)
}
