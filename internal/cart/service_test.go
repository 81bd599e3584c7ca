package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tusharoffice40/Whole-X/internal/catalog"
	pkgerrors "github.com/tusharoffice40/Whole-X/pkg/errors"
	"github.com/tusharoffice40/Whole-X/pkg/models"
	"github.com/tusharoffice40/Whole-X/pkg/session"
)

type stubCatalog struct {
	products map[string]models.Product
}

func (s *stubCatalog) List() []models.Product {
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out
}

func (s *stubCatalog) Search(query, category string) []models.Product {
	return s.List()
}

func (s *stubCatalog) Get(id string) (models.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return models.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (s *stubCatalog) Categories() []string {
	return nil
}

func (s *stubCatalog) GenerateDescription(ctx context.Context, title, category string) string {
	return ""
}

var _ catalog.Service = (*stubCatalog)(nil)

func tshirt() models.Product {
	return models.Product{
		ID:           "1",
		Name:         "Premium Cotton Plain T-Shirts",
		PriceCents:   450,
		MinOrderQty:  50,
		WholesalerID: "w1",
	}
}

func earbuds() models.Product {
	return models.Product{
		ID:           "2",
		Name:         "Wireless Bluetooth Earbuds Pro",
		PriceCents:   1200,
		MinOrderQty:  20,
		WholesalerID: "w2",
	}
}

func newFixture(t *testing.T) (Service, *session.Session) {
	t.Helper()
	svc, err := NewService(&stubCatalog{products: map[string]models.Product{
		"1": tshirt(),
		"2": earbuds(),
	}})
	require.NoError(t, err)
	return svc, session.NewManager().Issue()
}

func TestAddNewLineStartsAtMinOrderQty(t *testing.T) {
	svc, sess := newFixture(t)

	snap, err := svc.Add(sess, "1")
	require.NoError(t, err)
	require.Len(t, snap.Lines, 1)
	require.Equal(t, 50, snap.Lines[0].Quantity)
	require.Equal(t, int64(450*50), snap.TotalCents)
}

func TestAddTwiceDoublesMinOrderQty(t *testing.T) {
	svc, sess := newFixture(t)

	_, err := svc.Add(sess, "1")
	require.NoError(t, err)
	snap, err := svc.Add(sess, "1")
	require.NoError(t, err)

	require.Len(t, snap.Lines, 1, "add must merge by product id")
	require.Equal(t, 100, snap.Lines[0].Quantity)
}

func TestAddUnknownProduct(t *testing.T) {
	svc, sess := newFixture(t)

	_, err := svc.Add(sess, "missing")
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
	require.Empty(t, svc.Get(sess).Lines)
}

func TestUpdateQuantityClampsToMinimum(t *testing.T) {
	svc, sess := newFixture(t)
	_, err := svc.Add(sess, "1")
	require.NoError(t, err)

	for _, requested := range []int{0, -5, 49} {
		snap := svc.UpdateQuantity(sess, "1", requested)
		require.Equal(t, 50, snap.Lines[0].Quantity, "requested %d must clamp to the minimum", requested)
	}
}

func TestUpdateQuantityAboveMinimum(t *testing.T) {
	svc, sess := newFixture(t)
	_, err := svc.Add(sess, "1")
	require.NoError(t, err)

	snap := svc.UpdateQuantity(sess, "1", 75)
	require.Equal(t, 75, snap.Lines[0].Quantity)
}

func TestUpdateQuantityMissingLineIsNoOp(t *testing.T) {
	svc, sess := newFixture(t)
	_, err := svc.Add(sess, "1")
	require.NoError(t, err)

	snap := svc.UpdateQuantity(sess, "2", 500)
	require.Len(t, snap.Lines, 1)
	require.Equal(t, "1", snap.Lines[0].ProductID)
}

func TestRemoveMissingLineIsNoOp(t *testing.T) {
	svc, sess := newFixture(t)
	_, err := svc.Add(sess, "1")
	require.NoError(t, err)

	snap := svc.Remove(sess, "missing")
	require.Len(t, snap.Lines, 1)
}

func TestRemoveDeletesLine(t *testing.T) {
	svc, sess := newFixture(t)
	_, err := svc.Add(sess, "1")
	require.NoError(t, err)
	_, err = svc.Add(sess, "2")
	require.NoError(t, err)

	snap := svc.Remove(sess, "1")
	require.Len(t, snap.Lines, 1)
	require.Equal(t, "2", snap.Lines[0].ProductID)
}

func TestTotalSumsLineSubtotals(t *testing.T) {
	svc, sess := newFixture(t)
	_, err := svc.Add(sess, "1")
	require.NoError(t, err)
	_, err = svc.Add(sess, "2")
	require.NoError(t, err)

	snap := svc.Get(sess)
	require.Equal(t, int64(450*50+1200*20), snap.TotalCents)
}
