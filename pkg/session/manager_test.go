package session

import (
	"sync"
	"testing"

	"github.com/tusharoffice40/Whole-X/pkg/enums"
	"github.com/tusharoffice40/Whole-X/pkg/models"
)

func TestIssueAndLookup(t *testing.T) {
	m := NewManager()
	sess := m.Issue()

	if sess.ID() == "" {
		t.Fatal("expected non-empty session id")
	}

	found, ok := m.Lookup(sess.ID())
	if !ok || found != sess {
		t.Fatal("expected lookup to return the issued session")
	}
}

func TestLookupUnknownToken(t *testing.T) {
	m := NewManager()
	if _, ok := m.Lookup("nope"); ok {
		t.Fatal("expected lookup miss for unknown token")
	}
	if _, ok := m.Lookup(""); ok {
		t.Fatal("expected lookup miss for blank token")
	}
}

func TestResolveMintsWhenUnknown(t *testing.T) {
	m := NewManager()
	first := m.Resolve("")
	second := m.Resolve(first.ID())
	third := m.Resolve("stale-token")

	if first != second {
		t.Fatal("expected resolve to return the existing session for a known token")
	}
	if third == first {
		t.Fatal("expected resolve to mint a new session for an unknown token")
	}
	if m.Count() != 2 {
		t.Fatalf("expected 2 sessions, got %d", m.Count())
	}
}

func TestFreshSessionDefaults(t *testing.T) {
	st := NewManager().Issue().Snapshot()

	if st.Role != enums.RoleBuyer {
		t.Fatalf("expected default role BUYER, got %s", st.Role)
	}
	if st.Page != enums.PageHome {
		t.Fatalf("expected initial page home, got %s", st.Page)
	}
	if len(st.Cart) != 0 || len(st.Orders) != 0 || len(st.Transcript) != 0 {
		t.Fatal("expected empty cart, orders, and transcript")
	}
}

func TestSnapshotIsolatedFromLiveState(t *testing.T) {
	sess := NewManager().Issue()
	sess.Update(func(st *State) {
		st.Cart = []models.CartLine{{ProductID: "1", Quantity: 50}}
	})

	snap := sess.Snapshot()
	snap.Cart[0].Quantity = 999

	if got := sess.Snapshot().Cart[0].Quantity; got != 50 {
		t.Fatalf("snapshot mutation leaked into live state: %d", got)
	}
}

func TestUpdateSerializesConcurrentWriters(t *testing.T) {
	sess := NewManager().Issue()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess.Update(func(st *State) {
				st.Transcript = append(st.Transcript, models.ChatMessage{Text: "x"})
			})
		}()
	}
	wg.Wait()

	if got := len(sess.Snapshot().Transcript); got != 50 {
		t.Fatalf("expected 50 transcript entries, got %d", got)
	}
}
