package enums

import "fmt"

// Page identifies one of the storefront views. The initial page for a
// fresh session is PageHome.
type Page string

const (
	PageHome          Page = "home"
	PageProducts      Page = "products"
	PageProductDetail Page = "product-detail"
	PageCart          Page = "cart"
	PageOrders        Page = "orders"
	PageDashboard     Page = "dashboard"
)

var validPages = []Page{
	PageHome,
	PageProducts,
	PageProductDetail,
	PageCart,
	PageOrders,
	PageDashboard,
}

// String implements fmt.Stringer.
func (p Page) String() string {
	return string(p)
}

// IsValid reports whether the value is a known Page.
func (p Page) IsValid() bool {
	for _, candidate := range validPages {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePage converts raw input into a Page.
func ParsePage(value string) (Page, error) {
	for _, candidate := range validPages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid page %q", value)
}
