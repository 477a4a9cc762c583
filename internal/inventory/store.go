package inventory

import (
	"context"
	"log"
	"sync"

	"github.com/rogerio-castellano/pubstock/internal/metrics"
	"github.com/rogerio-castellano/pubstock/internal/models"
	"github.com/rogerio-castellano/pubstock/internal/notify"
	"github.com/rogerio-castellano/pubstock/internal/repo"
)

// Snapshot is a copy of the store state at one point in time.
type Snapshot struct {
	Products []models.Product `json:"products"`
	Loading  bool             `json:"loading"`
	Error    string           `json:"error,omitempty"`
}

// Store mirrors the remote product collection in memory.
//
// Every mutation calls the repository first and only touches the local
// sequence once that call succeeded. Mutations are serialized, so local
// updates are applied in the order the remote calls completed.
type Store struct {
	repo     repo.ProductRepository
	notifier notify.Notifier

	writeMu sync.Mutex

	mu       sync.RWMutex
	products []models.Product
	loading  bool
	loadErr  string
}

func NewStore(r repo.ProductRepository, n notify.Notifier) *Store {
	if n == nil {
		n = notify.Discard{}
	}
	return &Store{
		repo:     r,
		notifier: n,
		products: []models.Product{},
	}
}

// Load replaces the local sequence with the remote one. On failure the
// previous sequence is kept and the load error is set until the next
// successful load.
func (s *Store) Load(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	products, err := s.repo.List(ctx)
	if err != nil {
		rerr := &RemoteError{Op: OpLoad, Err: err}
		s.mu.Lock()
		s.loadErr = rerr.Message()
		s.mu.Unlock()
		s.fail(ctx, rerr, notify.New(notify.KindLoadFailed))
		return rerr
	}
	if products == nil {
		products = []models.Product{}
	}

	s.mu.Lock()
	s.products = products
	s.loadErr = ""
	s.mu.Unlock()

	s.changed()
	s.notifier.Notify(ctx, notify.New(notify.KindLoaded))
	return nil
}

// Create inserts a product and prepends the stored record.
func (s *Store) Create(ctx context.Context, in models.ProductInput) (models.Product, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	created, err := s.repo.Insert(ctx, in)
	if err != nil {
		rerr := &RemoteError{Op: OpAdd, Err: err}
		s.fail(ctx, rerr, notify.New(notify.KindAddFailed))
		return models.Product{}, rerr
	}

	s.mu.Lock()
	s.products = append([]models.Product{created}, s.products...)
	s.mu.Unlock()

	s.changed()
	s.notifier.Notify(ctx, notify.ForProduct(notify.KindProductAdded, created.ID))
	return created, nil
}

// Update overwrites the editable fields of product id.
func (s *Store) Update(ctx context.Context, id int, in models.ProductInput) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.repo.Update(ctx, id, in); err != nil {
		rerr := &RemoteError{Op: OpUpdate, Err: err}
		s.fail(ctx, rerr, notify.ForProduct(notify.KindUpdateFailed, id))
		return rerr
	}

	s.mu.Lock()
	for i, p := range s.products {
		if p.ID == id {
			s.products[i] = p.Apply(in)
		}
	}
	s.mu.Unlock()

	s.changed()
	s.notifier.Notify(ctx, notify.ForProduct(notify.KindProductUpdated, id))
	return nil
}

// Delete removes product id. The caller must have obtained the user's
// confirmation; without it nothing is sent to the repository.
func (s *Store) Delete(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		rerr := &RemoteError{Op: OpDelete, Err: err}
		s.fail(ctx, rerr, notify.ForProduct(notify.KindDeleteFailed, id))
		return rerr
	}

	s.mu.Lock()
	kept := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.mu.Unlock()

	s.changed()
	s.notifier.Notify(ctx, notify.ForProduct(notify.KindProductDeleted, id))
	return nil
}

// Products returns a copy of the local sequence.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the local record with the given id.
func (s *Store) Get(id int) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Filtered applies c to the local sequence.
func (s *Store) Filtered(c Criteria) []models.Product {
	return Filter(s.Products(), c)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return Snapshot{Products: out, Loading: s.loading, Error: s.loadErr}
}

// Notify forwards an event to the store's notifier.
func (s *Store) Notify(ctx context.Context, e notify.Event) {
	s.notifier.Notify(ctx, e)
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) fail(ctx context.Context, err *RemoteError, e notify.Event) {
	log.Printf("inventory: %v", err)
	metrics.RecordRemoteFailure(string(err.Op))
	s.notifier.Notify(ctx, e)
}

func (s *Store) changed() {
	s.mu.RLock()
	total := len(s.products)
	low := len(LowStock(s.products))
	s.mu.RUnlock()
	metrics.SetInventory(total, low)
}
