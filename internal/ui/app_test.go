package ui

import (
	"testing"

	"github.com/ytraddan/storefront/internal/catalog"
	"github.com/ytraddan/storefront/internal/fakestore"
)

func TestNew_WatchArmedBeforeFirstSnapshot(t *testing.T) {
	store := catalog.NewStore()
	m := New(Options{Store: store})

	store.Hydrate([]fakestore.Product{{ID: 1, Title: "Hat"}})

	select {
	case <-m.changes:
	default:
		t.Fatal("hydrate after New left no pending watch signal")
	}
}

func TestNew_NeverMissesConcurrentHydrate(t *testing.T) {
	// The initial fetch runs on its own goroutine while New is constructing
	// the model. Whatever the interleaving, a completed Hydrate must be
	// visible: either the first snapshot already carries it, or the watch
	// channel holds a pending signal telling the UI to re-snapshot.
	for i := 0; i < 2000; i++ {
		store := catalog.NewStore()
		store.BeginFetch()

		done := make(chan struct{})
		go func() {
			store.Hydrate([]fakestore.Product{{ID: 1, Title: "Hat"}})
			close(done)
		}()

		m := New(Options{Store: store})
		<-done

		if m.snapshot.Phase == catalog.PhaseLoaded {
			continue
		}
		select {
		case <-m.changes:
		default:
			t.Fatalf("iteration %d: snapshot phase=%v and no watch signal pending", i, m.snapshot.Phase)
		}
	}
}
