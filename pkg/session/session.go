package session

import (
	"sync"

	"github.com/tusharoffice40/Whole-X/pkg/enums"
	"github.com/tusharoffice40/Whole-X/pkg/models"
)

// State is the explicit application state owned by one storefront session:
// the cart, the order history, the ambient role label, the current page and
// product selection, and the advisory chat transcript. Nothing here
// survives process teardown.
type State struct {
	Role              enums.Role           `json:"role"`
	Page              enums.Page           `json:"page"`
	SelectedProductID string               `json:"selected_product_id,omitempty"`
	Cart              []models.CartLine    `json:"cart"`
	Orders            []models.Order       `json:"orders"`
	Transcript        []models.ChatMessage `json:"transcript"`

	// AdvisorBusy mirrors the disabled state of the chat send control
	// while a generation call is outstanding. It is a UI affordance,
	// not a lock; the adapter never sequences on it.
	AdvisorBusy bool `json:"advisor_busy"`
}

func newState() State {
	return State{
		Role: enums.RoleBuyer,
		Page: enums.PageHome,
	}
}

// Session serializes all operations against one State. Per-session
// operations run to completion before the next one is applied.
type Session struct {
	id string

	mu    sync.Mutex
	state State
}

// ID returns the opaque session token.
func (s *Session) ID() string {
	return s.id
}

// Update applies fn to the session state under the session lock. fn must
// not block on the network; callers that need a remote round trip snapshot
// before and update after.
func (s *Session) Update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// Snapshot returns a copy of the session state. Slice contents are copied
// so callers cannot mutate the live state through the snapshot.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Cart = append([]models.CartLine(nil), s.state.Cart...)
	snap.Orders = append([]models.Order(nil), s.state.Orders...)
	snap.Transcript = append([]models.ChatMessage(nil), s.state.Transcript...)
	return snap
}
