package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytraddan/storefront/internal/fakestore"
)

// MutationKind identifies the kind of an optimistic mutation.
type MutationKind int

const (
	MutationCreate MutationKind = iota
	MutationUpdate
	MutationDelete
)

// String returns a past-tense label for notices.
func (k MutationKind) String() string {
	switch k {
	case MutationCreate:
		return "created"
	case MutationUpdate:
		return "updated"
	case MutationDelete:
		return "deleted"
	default:
		return "mutated"
	}
}

// Command is a reversible mutation. Apply performs the optimistic local
// write; Compensate restores the captured prior state exactly. Undo is just
// Compensate and never touches the remote API.
type Command struct {
	Kind  MutationKind
	ID    int
	Title string

	apply      func() error
	compensate func() error
}

// Apply performs the local write. The coordinator calls it once before
// returning the command; calling it again is a contract violation.
func (c *Command) Apply() error { return c.apply() }

// Compensate reverses the local write.
func (c *Command) Compensate() error { return c.compensate() }

// Event reports an asynchronous mutation outcome. Err is non-nil when the
// API call failed; by the time the event is observable the optimistic write
// has already been rolled back.
type Event struct {
	Kind  MutationKind
	ID    int
	Title string
	Err   error
}

// Coordinator orchestrates optimistic create, update and delete mutations
// against the store and the remote API, and drives the fetch lifecycle.
// Local writes are applied synchronously; the corresponding network call runs
// in the background and a failure rolls the write back and emits an Event.
type Coordinator struct {
	store  *Store
	api    fakestore.API
	log    zerolog.Logger
	events chan Event

	mu     sync.Mutex
	lastID int64
}

// NewCoordinator wires a coordinator to the store and API client.
func NewCoordinator(store *Store, api fakestore.API, log zerolog.Logger) *Coordinator {
	return &Coordinator{
		store:  store,
		api:    api,
		log:    log,
		events: make(chan Event, 16),
	}
}

// Events returns the channel carrying asynchronous mutation outcomes.
func (c *Coordinator) Events() <-chan Event {
	return c.events
}

// FetchAll loads the product collection. It transitions the lifecycle to
// loading, then to loaded on success or failed on error. There is no
// automatic retry; calling FetchAll again is the only recovery path.
func (c *Coordinator) FetchAll(ctx context.Context) error {
	c.store.BeginFetch()
	products, err := c.api.FetchProducts(ctx)
	if err != nil {
		c.store.Fail(err.Error())
		c.log.Error().Err(err).Msg("fetch products failed")
		return err
	}
	c.store.Hydrate(products)
	c.log.Info().Int("count", len(products)).Msg("catalog hydrated")
	return nil
}

// FetchOne refreshes a single product from the API, the direct detail-view
// hydration path. Server state wins, Rating included.
func (c *Coordinator) FetchOne(ctx context.Context, id int) error {
	p, err := c.api.FetchProduct(ctx, id)
	if err != nil {
		c.log.Error().Err(err).Int("id", id).Msg("fetch product failed")
		return err
	}
	c.store.Refresh(*p)
	return nil
}

// Create inserts a provisional product with a client-assigned id and a zero
// rating, then posts it to the API in the background. On API failure the
// provisional product is removed again.
func (c *Coordinator) Create(ctx context.Context, draft fakestore.Draft) (*Command, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	id := c.nextID()
	product := draft.Apply(id, fakestore.Rating{})
	cmd := &Command{
		Kind:  MutationCreate,
		ID:    id,
		Title: draft.Title,
		apply: func() error {
			return c.store.Insert(product)
		},
		compensate: func() error {
			c.store.Remove(id)
			return nil
		},
	}
	if err := cmd.Apply(); err != nil {
		return nil, err
	}

	go c.settle(cmd, func() error {
		_, err := c.api.CreateProduct(ctx, draft)
		return err
	})
	return cmd, nil
}

// Update captures the prior product, replaces its attributes (rating
// preserved), and puts the change to the API in the background. On API
// failure the prior attributes are restored.
func (c *Coordinator) Update(ctx context.Context, id int, draft fakestore.Draft) (*Command, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	prior, ok := c.store.Get(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}

	cmd := &Command{
		Kind:  MutationUpdate,
		ID:    id,
		Title: draft.Title,
		apply: func() error {
			return c.store.Replace(id, draft)
		},
		compensate: func() error {
			return c.store.Replace(id, fakestore.DraftOf(prior))
		},
	}
	if err := cmd.Apply(); err != nil {
		return nil, err
	}

	go c.settle(cmd, func() error {
		return c.api.UpdateProduct(ctx, id, draft)
	})
	return cmd, nil
}

// Delete captures the full prior product, removes it, and issues the API
// delete in the background. Compensate re-inserts the captured value
// verbatim, original id and rating included, so undo restores exact state
// regardless of the API outcome.
func (c *Coordinator) Delete(ctx context.Context, id int) (*Command, error) {
	prior, ok := c.store.Get(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}

	cmd := &Command{
		Kind:  MutationDelete,
		ID:    id,
		Title: prior.Title,
		apply: func() error {
			c.store.Remove(id)
			return nil
		},
		compensate: func() error {
			return c.store.Insert(prior)
		},
	}
	if err := cmd.Apply(); err != nil {
		return nil, err
	}

	go c.settle(cmd, func() error {
		return c.api.DeleteProduct(ctx, id)
	})
	return cmd, nil
}

// settle runs the background API call for an applied command. On failure it
// rolls the optimistic write back and emits an Event; the rollback happens
// before the event so observers never see the stale write after being told
// about it.
func (c *Coordinator) settle(cmd *Command, call func() error) {
	err := call()
	if err == nil {
		c.log.Debug().Stringer("kind", cmd.Kind).Int("id", cmd.ID).Msg("mutation committed")
		return
	}

	if rbErr := cmd.Compensate(); rbErr != nil {
		c.log.Error().Err(rbErr).Stringer("kind", cmd.Kind).Int("id", cmd.ID).Msg("rollback failed")
	}
	c.log.Warn().Err(err).Stringer("kind", cmd.Kind).Int("id", cmd.ID).Msg("mutation rolled back")

	select {
	case c.events <- Event{Kind: cmd.Kind, ID: cmd.ID, Title: cmd.Title, Err: err}:
	default:
		c.log.Warn().Int("id", cmd.ID).Msg("event channel full, outcome dropped")
	}
}

// nextID hands out client-side ids: the current millisecond timestamp, bumped
// past the previous id so rapid creates within one tick never collide.
func (c *Coordinator) nextID() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return int(id)
}
