package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytraddan/storefront/internal/fakestore"
)

// fakeAPI satisfies fakestore.API with per-call programmable failures.
type fakeAPI struct {
	products  []fakestore.Product
	fetchErr  error
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeAPI) FetchProducts(context.Context) ([]fakestore.Product, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.products, nil
}

func (f *fakeAPI) FetchProduct(_ context.Context, id int) (*fakestore.Product, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

func (f *fakeAPI) CreateProduct(_ context.Context, draft fakestore.Draft) (*fakestore.Product, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p := draft.Apply(len(f.products)+1, fakestore.Rating{})
	return &p, nil
}

func (f *fakeAPI) UpdateProduct(context.Context, int, fakestore.Draft) error {
	return f.updateErr
}

func (f *fakeAPI) DeleteProduct(context.Context, int) error {
	return f.deleteErr
}

func newTestCoordinator(api *fakeAPI) (*Coordinator, *Store) {
	store := NewStore()
	return NewCoordinator(store, api, zerolog.Nop()), store
}

// waitFor polls until the condition holds, failing the test after a second.
// Settlement runs on a background goroutine, so tests that need its outcome
// have to wait for it.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached within deadline")
}

func TestCoordinator_FetchLifecycle(t *testing.T) {
	api := &fakeAPI{fetchErr: errors.New("api GET /products: HTTP 500")}
	coord, store := newTestCoordinator(api)

	if err := coord.FetchAll(context.Background()); err == nil {
		t.Fatal("FetchAll() = nil, want error")
	}
	snap := store.Snapshot()
	if snap.Phase != PhaseFailed || snap.FetchErr == "" {
		t.Fatalf("after failed fetch: phase=%v err=%q", snap.Phase, snap.FetchErr)
	}

	// The only recovery path is another fetch.
	api.fetchErr = nil
	api.products = []fakestore.Product{{ID: 1, Title: "Hat"}}
	if err := coord.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll() retry error: %v", err)
	}
	snap = store.Snapshot()
	if snap.Phase != PhaseLoaded || snap.FetchErr != "" || len(snap.Products) != 1 {
		t.Fatalf("after retry: phase=%v err=%q products=%d", snap.Phase, snap.FetchErr, len(snap.Products))
	}
}

func TestCoordinator_CreateIsOptimistic(t *testing.T) {
	coord, store := newTestCoordinator(&fakeAPI{})

	cmd, err := coord.Create(context.Background(), fakestore.Draft{Title: "Lamp", Price: 12})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Visible immediately, at the front, with a zero rating.
	snap := store.Snapshot()
	if len(snap.Products) != 1 || snap.Products[0].ID != cmd.ID {
		t.Fatalf("products after create = %v", snap.Products)
	}
	if snap.Products[0].Rating != (fakestore.Rating{}) {
		t.Fatalf("Rating = %+v, want zero", snap.Products[0].Rating)
	}
}

func TestCoordinator_CreateRollsBackWhenOffline(t *testing.T) {
	api := &fakeAPI{createErr: errors.New("connection refused")}
	coord, store := newTestCoordinator(api)

	cmd, err := coord.Create(context.Background(), fakestore.Draft{Title: "Lamp", Price: 12})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if _, ok := store.Get(cmd.ID); !ok {
		t.Fatal("optimistic product not visible before settlement")
	}

	waitFor(t, func() bool {
		_, ok := store.Get(cmd.ID)
		return !ok
	})

	select {
	case ev := <-coord.Events():
		if ev.Kind != MutationCreate || ev.ID != cmd.ID || ev.Err == nil {
			t.Fatalf("event = %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no rollback event emitted")
	}
}

func TestCoordinator_CreateRejectsInvalidDraft(t *testing.T) {
	coord, store := newTestCoordinator(&fakeAPI{})

	if _, err := coord.Create(context.Background(), fakestore.Draft{Title: "  ", Price: 5}); err == nil {
		t.Fatal("Create() accepted a blank title")
	}
	if _, err := coord.Create(context.Background(), fakestore.Draft{Title: "Lamp", Price: -1}); err == nil {
		t.Fatal("Create() accepted a negative price")
	}
	if n := len(store.Snapshot().Products); n != 0 {
		t.Fatalf("store has %d products after rejected creates", n)
	}
}

func TestCoordinator_UpdateRollsBackToPriorAttributes(t *testing.T) {
	api := &fakeAPI{updateErr: errors.New("api PUT /products/7: HTTP 500")}
	coord, store := newTestCoordinator(api)
	store.Hydrate([]fakestore.Product{{
		ID: 7, Title: "Shoe", Price: 40, Category: "clothing",
		Rating: fakestore.Rating{Rate: 4, Count: 9},
	}})

	_, err := coord.Update(context.Background(), 7, fakestore.Draft{Title: "Boot", Price: 55, Category: "clothing"})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if p, _ := store.Get(7); p.Title != "Boot" || p.Price != 55 {
		t.Fatalf("optimistic update not applied: %+v", p)
	}

	waitFor(t, func() bool {
		p, _ := store.Get(7)
		return p.Title == "Shoe"
	})
	p, _ := store.Get(7)
	if p.Price != 40 || p.Rating != (fakestore.Rating{Rate: 4, Count: 9}) {
		t.Fatalf("rollback restored %+v", p)
	}
}

func TestCoordinator_UpdateUnknownID(t *testing.T) {
	coord, _ := newTestCoordinator(&fakeAPI{})

	_, err := coord.Update(context.Background(), 42, fakestore.Draft{Title: "Lamp"})
	if !IsNotFound(err) {
		t.Fatalf("Update(42) error = %v, want NotFoundError", err)
	}
}

func TestCoordinator_DeleteUndoRestoresExactProduct(t *testing.T) {
	coord, store := newTestCoordinator(&fakeAPI{})
	shoe := fakestore.Product{
		ID: 7, Title: "Shoe", Price: 40, Category: "clothing",
		Rating: fakestore.Rating{Rate: 4, Count: 9},
	}
	store.Hydrate([]fakestore.Product{shoe, {ID: 8, Title: "Hat"}})

	cmd, err := coord.Delete(context.Background(), 7)
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, ok := store.Get(7); ok {
		t.Fatal("product still present after delete")
	}

	// Undo is a pure local compensation: the exact prior value comes back,
	// id and rating included, no matter what the API said.
	if err := cmd.Compensate(); err != nil {
		t.Fatalf("Compensate() error: %v", err)
	}
	got, ok := store.Get(7)
	if !ok || got != shoe {
		t.Fatalf("after undo: %+v, want %+v", got, shoe)
	}
}

func TestCoordinator_NextIDMonotonic(t *testing.T) {
	coord, _ := newTestCoordinator(&fakeAPI{})

	prev := 0
	for i := 0; i < 100; i++ {
		id := coord.nextID()
		if id <= prev {
			t.Fatalf("nextID() = %d after %d", id, prev)
		}
		prev = id
	}
}
