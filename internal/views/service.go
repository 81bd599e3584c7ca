package views

import (
	"github.com/tusharoffice40/Whole-X/internal/catalog"
	pkgerrors "github.com/tusharoffice40/Whole-X/pkg/errors"
	"github.com/tusharoffice40/Whole-X/pkg/enums"
	"github.com/tusharoffice40/Whole-X/pkg/models"
	"github.com/tusharoffice40/Whole-X/pkg/session"
)

// View is the rendered payload for the session's current page. Exactly
// one of the page sections is populated.
type View struct {
	Page          enums.Page         `json:"page"`
	Home          *HomeView          `json:"home,omitempty"`
	Products      *ProductsView      `json:"products,omitempty"`
	ProductDetail *ProductDetailView `json:"product_detail,omitempty"`
	Cart          *CartView          `json:"cart,omitempty"`
	Orders        *OrdersView        `json:"orders,omitempty"`
	Dashboard     *DashboardView     `json:"dashboard,omitempty"`
}

type HomeView struct {
	Categories []string `json:"categories"`
}

type ProductsView struct {
	Products []models.Product `json:"products"`
}

// ProductDetailView renders empty when no product is selected; that is an
// empty result, not an error.
type ProductDetailView struct {
	Product *models.Product `json:"product,omitempty"`
}

type CartView struct {
	Lines      []models.CartLine `json:"lines"`
	TotalCents int64             `json:"total_cents"`
}

type OrdersView struct {
	Orders []models.Order `json:"orders"`
}

// DashboardView branches presentation by role: wholesalers see an
// inventory management view, everyone else sees order history. This is
// view selection only, not an access-control decision.
type DashboardView struct {
	Role      enums.Role       `json:"role"`
	Inventory []models.Product `json:"inventory,omitempty"`
	Orders    []models.Order   `json:"orders,omitempty"`
}

// Service is the view router: it applies explicit navigation requests and
// derives the displayed page from session state.
type Service interface {
	Navigate(sess *session.Session, page enums.Page, productID string) error
	Render(sess *session.Session, query, category string) View
}

type service struct {
	catalog catalog.Service
}

// NewService builds the view router over the given catalog.
func NewService(catalogSvc catalog.Service) (Service, error) {
	if catalogSvc == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog service required")
	}
	return &service{catalog: catalogSvc}, nil
}

// Navigate transitions to the requested page. There are no guards and no
// redirects; any page is reachable from any page. A product id may be
// supplied to set the selection; an id the catalog does not know leaves
// the selection unchanged.
func (s *service) Navigate(sess *session.Session, page enums.Page, productID string) error {
	if !page.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown page")
	}

	var selected *models.Product
	if productID != "" {
		if product, err := s.catalog.Get(productID); err == nil {
			selected = &product
		}
	}

	sess.Update(func(st *session.State) {
		st.Page = page
		if selected != nil {
			st.SelectedProductID = selected.ID
		}
	})
	return nil
}

// Render derives the current page's payload from session state. query and
// category only affect the products page.
func (s *service) Render(sess *session.Session, query, category string) View {
	st := sess.Snapshot()
	view := View{Page: st.Page}

	switch st.Page {
	case enums.PageHome:
		view.Home = &HomeView{Categories: s.catalog.Categories()}
	case enums.PageProducts:
		view.Products = &ProductsView{Products: s.catalog.Search(query, category)}
	case enums.PageProductDetail:
		detail := &ProductDetailView{}
		if st.SelectedProductID != "" {
			if product, err := s.catalog.Get(st.SelectedProductID); err == nil {
				detail.Product = &product
			}
		}
		view.ProductDetail = detail
	case enums.PageCart:
		view.Cart = &CartView{
			Lines:      st.Cart,
			TotalCents: models.CartTotalCents(st.Cart),
		}
	case enums.PageOrders:
		view.Orders = &OrdersView{Orders: st.Orders}
	case enums.PageDashboard:
		dashboard := &DashboardView{Role: st.Role}
		if st.Role == enums.RoleWholesaler {
			dashboard.Inventory = s.catalog.List()
		} else {
			dashboard.Orders = st.Orders
		}
		view.Dashboard = dashboard
	}

	return view
}
