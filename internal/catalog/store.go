package catalog

import (
	"sync"

	"github.com/ytraddan/storefront/internal/fakestore"
)

// Phase is the fetch lifecycle state of the product collection.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

// String returns a short lowercase label for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Snapshot is an immutable view of the store at a point in time.
type Snapshot struct {
	Products  []fakestore.Product
	Favorites map[int]bool
	Phase     Phase
	FetchErr  string // set only when Phase is PhaseFailed
	Version   uint64
}

// IsFavorite reports whether the id is marked favorite. Stale ids (favorites
// whose product was deleted) still answer true here; joins against Products
// filter them out.
func (s Snapshot) IsFavorite(id int) bool {
	return s.Favorites[id]
}

// Store holds the authoritative product collection, the favorites set and the
// fetch lifecycle phase. The zero value is not usable; construct with NewStore.
type Store struct {
	mu        sync.RWMutex
	products  []fakestore.Product
	favorites map[int]bool
	phase     Phase
	fetchErr  string
	version   uint64
	watchers  []chan struct{}
}

// NewStore constructs an empty store in PhaseIdle.
func NewStore() *Store {
	return &Store{
		favorites: make(map[int]bool),
	}
}

// Watch returns a channel that receives a coalesced signal after every
// mutation. The send never blocks; a slow reader sees at least one pending
// signal for any burst of mutations.
//
// There is no unsubscribe: a registered channel is signalled for the life of
// the store. Watch is meant for a small, fixed set of long-lived subscribers
// (the UI loop), not for per-request use.
func (s *Store) Watch() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan struct{}, 1)
	s.watchers = append(s.watchers, ch)
	return ch
}

// Hydrate replaces the product collection wholesale and moves the lifecycle
// to PhaseLoaded. Used once per successful fetch.
func (s *Store) Hydrate(products []fakestore.Product) {
	s.mu.Lock()
	s.products = cloneProducts(products)
	s.phase = PhaseLoaded
	s.fetchErr = ""
	s.bump()
	s.mu.Unlock()
}

// BeginFetch moves the lifecycle to PhaseLoading, clearing any previous
// fetch error. Valid from any phase; a refetch is just another BeginFetch.
func (s *Store) BeginFetch() {
	s.mu.Lock()
	s.phase = PhaseLoading
	s.fetchErr = ""
	s.bump()
	s.mu.Unlock()
}

// Fail moves the lifecycle to PhaseFailed carrying the given message.
func (s *Store) Fail(msg string) {
	s.mu.Lock()
	s.phase = PhaseFailed
	s.fetchErr = msg
	s.bump()
	s.mu.Unlock()
}

// Insert adds the product to the front of the collection so locally created
// items render most-recent-first. Inserting an id already present is a
// programming error and returns DuplicateIDError.
func (s *Store) Insert(p fakestore.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(p.ID) >= 0 {
		return &DuplicateIDError{ID: p.ID}
	}
	s.products = append([]fakestore.Product{p}, s.products...)
	s.bump()
	return nil
}

// Replace merges the draft into the product with that id, preserving its ID
// and Rating. Returns NotFoundError when the id is absent.
func (s *Store) Replace(id int, draft fakestore.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return &NotFoundError{ID: id}
	}
	s.products[idx] = draft.Apply(id, s.products[idx].Rating)
	s.bump()
	return nil
}

// Remove deletes the product and drops its id from the favorites set.
// Removing an absent id is a no-op, not an error.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.favorites, id)
	idx := s.indexOf(id)
	if idx >= 0 {
		s.products = append(s.products[:idx], s.products[idx+1:]...)
	}
	s.bump()
}

// Refresh applies a server-fetched product verbatim. Unlike Replace it also
// takes the server's Rating, the one sanctioned way a rating changes after
// creation. Absent ids are inserted at the front.
func (s *Store) Refresh(p fakestore.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(p.ID)
	if idx < 0 {
		s.products = append([]fakestore.Product{p}, s.products...)
	} else {
		s.products[idx] = p
	}
	s.bump()
}

// ToggleFavorite flips the id's membership in the favorites set. The id need
// not reference an existing product.
func (s *Store) ToggleFavorite(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.favorites[id] {
		delete(s.favorites, id)
	} else {
		s.favorites[id] = true
	}
	s.bump()
}

// Get returns a copy of the product with the given id.
func (s *Store) Get(id int) (fakestore.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fakestore.Product{}, false
	}
	return s.products[idx], true
}

// Snapshot returns a copy of the current state. The returned slices and maps
// are independent of the store's.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favorites := make(map[int]bool, len(s.favorites))
	for id := range s.favorites {
		favorites[id] = true
	}
	return Snapshot{
		Products:  cloneProducts(s.products),
		Favorites: favorites,
		Phase:     s.phase,
		FetchErr:  s.fetchErr,
		Version:   s.version,
	}
}

// indexOf returns the position of id in products, or -1. Caller holds the lock.
func (s *Store) indexOf(id int) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// bump advances the version and signals watchers. Caller holds the lock.
func (s *Store) bump() {
	s.version++
	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func cloneProducts(items []fakestore.Product) []fakestore.Product {
	if len(items) == 0 {
		return nil
	}
	dup := make([]fakestore.Product, len(items))
	copy(dup, items)
	return dup
}
