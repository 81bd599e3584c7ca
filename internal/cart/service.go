package cart

import (
	"github.com/tusharoffice40/Whole-X/internal/catalog"
	pkgerrors "github.com/tusharoffice40/Whole-X/pkg/errors"
	"github.com/tusharoffice40/Whole-X/pkg/models"
	"github.com/tusharoffice40/Whole-X/pkg/session"
)

// Snapshot is the cart view returned to callers: the current lines plus
// the derived total.
type Snapshot struct {
	Lines      []models.CartLine `json:"lines"`
	TotalCents int64             `json:"total_cents"`
}

// Service applies cart state transitions against a session. All
// operations are total: apart from rejecting unknown product ids at the
// API boundary they never fail.
type Service interface {
	Add(sess *session.Session, productID string) (Snapshot, error)
	Remove(sess *session.Session, productID string) Snapshot
	UpdateQuantity(sess *session.Session, productID string, requestedQty int) Snapshot
	Get(sess *session.Session) Snapshot
}

type service struct {
	catalog catalog.Service
}

// NewService builds the cart reducer over the given catalog.
func NewService(catalogSvc catalog.Service) (Service, error) {
	if catalogSvc == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog service required")
	}
	return &service{catalog: catalogSvc}, nil
}

// Add merges the product into the cart: an existing line grows by the
// product's minimum order quantity, a new line starts at it. There is no
// stock check.
func (s *service) Add(sess *session.Session, productID string) (Snapshot, error) {
	product, err := s.catalog.Get(productID)
	if err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	sess.Update(func(st *session.State) {
		st.Cart = applyAdd(st.Cart, product)
		snap = snapshotOf(st.Cart)
	})
	return snap, nil
}

// Remove deletes the matching line. Removing a line that does not exist
// is a no-op.
func (s *service) Remove(sess *session.Session, productID string) Snapshot {
	var snap Snapshot
	sess.Update(func(st *session.State) {
		st.Cart = applyRemove(st.Cart, productID)
		snap = snapshotOf(st.Cart)
	})
	return snap
}

// UpdateQuantity sets the line quantity, clamped up to the product's
// minimum order quantity. Negative input is treated as zero before
// clamping. Updating a line that does not exist is a no-op.
func (s *service) UpdateQuantity(sess *session.Session, productID string, requestedQty int) Snapshot {
	var snap Snapshot
	sess.Update(func(st *session.State) {
		st.Cart = applyUpdateQuantity(st.Cart, productID, requestedQty)
		snap = snapshotOf(st.Cart)
	})
	return snap
}

func (s *service) Get(sess *session.Session) Snapshot {
	return snapshotOf(sess.Snapshot().Cart)
}

func snapshotOf(lines []models.CartLine) Snapshot {
	return Snapshot{
		Lines:      append([]models.CartLine(nil), lines...),
		TotalCents: models.CartTotalCents(lines),
	}
}

func applyAdd(lines []models.CartLine, product models.Product) []models.CartLine {
	for i := range lines {
		if lines[i].ProductID == product.ID {
			lines[i].Quantity += product.MinOrderQty
			return lines
		}
	}
	return append(lines, models.CartLine{
		ProductID: product.ID,
		Product:   product,
		Quantity:  product.MinOrderQty,
	})
}

func applyRemove(lines []models.CartLine, productID string) []models.CartLine {
	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	return kept
}

func applyUpdateQuantity(lines []models.CartLine, productID string, requestedQty int) []models.CartLine {
	if requestedQty < 0 {
		requestedQty = 0
	}
	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}
		qty := requestedQty
		if qty < lines[i].Product.MinOrderQty {
			qty = lines[i].Product.MinOrderQty
		}
		lines[i].Quantity = qty
		return lines
	}
	return lines
}
