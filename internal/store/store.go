// Package store holds the client's view of all customer data and UI state.
// It is the single owner of the in-memory collection, the bounded undo
// buffer and the filter/sort/pagination parameters; every persistent
// mutation goes through the injected remote service client and the
// collection only ever reflects server-confirmed results.
package store

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"crmdesk/internal/client"
	"crmdesk/internal/crm"
	"crmdesk/internal/pipeline"
)

// UndoBufferSize caps the deleted-customer buffer. Older snapshots are
// evicted silently once the cap is exceeded.
const UndoBufferSize = 5

const defaultPageSize = 10

// Store is the stateful orchestrator for a single client session.
type Store struct {
	service client.CustomerService
	logger  *slog.Logger
	themes  ThemeStore

	// opMu serializes mutating operations end to end, including the
	// network call, so overlapping mutations cannot interleave partial
	// updates to the collection.
	opMu sync.Mutex

	// mu guards the fields below for readers.
	mu        sync.RWMutex
	customers []crm.Customer
	deleted   []crm.DeletedCustomer

	searchTerm  string
	sortOption  crm.SortOption
	currentPage int
	pageSize    int
	darkMode    bool

	selectedID string
	editingID  string
	formOpen   bool

	inFlight atomic.Bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger substitutes the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithThemeStore substitutes the theme persistence backend.
func WithThemeStore(themes ThemeStore) Option {
	return func(s *Store) { s.themes = themes }
}

// WithPageSize overrides the default page size.
func WithPageSize(size int) Option {
	return func(s *Store) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// New creates a store bound to the given remote service client. The theme
// preference is read from the theme store at construction.
func New(service client.CustomerService, opts ...Option) *Store {
	s := &Store{
		service:     service,
		logger:      slog.Default(),
		themes:      NoopThemeStore{},
		sortOption:  crm.SortOption{By: crm.SortByDate, Order: crm.OrderDesc},
		currentPage: 1,
		pageSize:    defaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.darkMode = s.themes.Load() == crm.ThemeDark
	return s
}

// InFlight reports whether a mutation is currently running. It is a UI
// hint; mutual exclusion is enforced internally regardless.
func (s *Store) InFlight() bool {
	return s.inFlight.Load()
}

func (s *Store) beginOp() func() {
	s.opMu.Lock()
	s.inFlight.Store(true)
	return func() {
		s.inFlight.Store(false)
		s.opMu.Unlock()
	}
}

// Load replaces the entire collection with the server's current listing.
// On failure the collection is left unchanged.
func (s *Store) Load(ctx context.Context) error {
	defer s.beginOp()()

	customers, err := s.service.List(ctx)
	if err != nil {
		s.logger.Error("failed to load customers", "error", err)
		return err
	}

	s.mu.Lock()
	s.customers = customers
	s.mu.Unlock()

	s.logger.Info("customers loaded", "count", len(customers))
	return nil
}

// Add submits the form data for creation and prepends the server-confirmed
// record. On failure, including a duplicate email, the collection is
// unchanged and the error is propagated.
func (s *Store) Add(ctx context.Context, data crm.FormData) (crm.Customer, error) {
	defer s.beginOp()()

	created, err := s.service.Create(ctx, data)
	if err != nil {
		s.logger.Error("failed to add customer", "error", err)
		return crm.Customer{}, err
	}

	s.mu.Lock()
	s.customers = append([]crm.Customer{created}, s.customers...)
	s.mu.Unlock()

	s.logger.Info("customer added", "id", created.ID)
	return created, nil
}

// Update submits partial field changes for the identified record and
// replaces the matching record's fields in place, preserving its position.
// On failure the collection is unchanged.
func (s *Store) Update(ctx context.Context, id string, data crm.FormData) (crm.Customer, error) {
	defer s.beginOp()()

	updated, err := s.service.Update(ctx, id, data)
	if err != nil {
		s.logger.Error("failed to update customer", "id", id, "error", err)
		return crm.Customer{}, err
	}

	s.mu.Lock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers[i].FullName = updated.FullName
			s.customers[i].Email = updated.Email
			s.customers[i].PhoneNumber = updated.PhoneNumber
			s.customers[i].Address = updated.Address
			break
		}
	}
	s.mu.Unlock()

	s.logger.Info("customer updated", "id", id)
	return updated, nil
}

// Delete removes the identified record and pushes a timestamped snapshot
// onto the front of the undo buffer, truncating it to UndoBufferSize. An
// unknown identifier is a no-op; on failure the collection is unchanged and
// no undo entry is created.
func (s *Store) Delete(ctx context.Context, id string) error {
	defer s.beginOp()()

	s.mu.RLock()
	snapshot, found := findByID(s.customers, id)
	s.mu.RUnlock()
	if !found {
		return nil
	}

	if err := s.service.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete customer", "id", id, "error", err)
		return err
	}

	s.mu.Lock()
	s.customers = removeByID(s.customers, id)
	s.deleted = append([]crm.DeletedCustomer{{Customer: snapshot, DeletedAt: now()}}, s.deleted...)
	if len(s.deleted) > UndoBufferSize {
		s.deleted = s.deleted[:UndoBufferSize]
	}
	s.mu.Unlock()

	s.logger.Info("customer deleted", "id", id, "undo_entries", s.UndoCount())
	return nil
}

// Undo pops the most recent deletion and re-submits its field values as a
// new creation; the restored record carries a new identifier and creation
// timestamp. An empty buffer is a no-op. The popped entry is not restored
// to the buffer when the re-creation fails.
func (s *Store) Undo(ctx context.Context) (crm.Customer, error) {
	defer s.beginOp()()

	s.mu.Lock()
	if len(s.deleted) == 0 {
		s.mu.Unlock()
		return crm.Customer{}, nil
	}
	last := s.deleted[0]
	s.deleted = s.deleted[1:]
	s.mu.Unlock()

	restored, err := s.service.Create(ctx, last.FormData())
	if err != nil {
		s.logger.Error("failed to restore customer", "error", err)
		return crm.Customer{}, err
	}

	s.mu.Lock()
	s.customers = append([]crm.Customer{restored}, s.customers...)
	s.mu.Unlock()

	s.logger.Info("customer restored", "id", restored.ID, "previous_id", last.ID)
	return restored, nil
}

// ImportResult reports the outcome of a bulk import.
type ImportResult struct {
	Imported int
	Failed   int
}

// Import submits every record as an independent creation, concurrently, and
// prepends the successes to the collection in input order. Failures are
// counted but not detailed per record.
func (s *Store) Import(ctx context.Context, records []crm.FormData) (ImportResult, error) {
	defer s.beginOp()()

	type outcome struct {
		customer crm.Customer
		err      error
	}

	outcomes := make([]outcome, len(records))
	var wg sync.WaitGroup
	for i, data := range records {
		wg.Add(1)
		go func(i int, data crm.FormData) {
			defer wg.Done()
			c, err := s.service.Create(ctx, data)
			outcomes[i] = outcome{customer: c, err: err}
		}(i, data)
	}
	wg.Wait()

	var result ImportResult
	created := make([]crm.Customer, 0, len(records))
	for _, o := range outcomes {
		if o.err != nil {
			result.Failed++
			continue
		}
		result.Imported++
		created = append(created, o.customer)
	}

	s.mu.Lock()
	s.customers = append(created, s.customers...)
	s.mu.Unlock()

	s.logger.Info("customers imported", "imported", result.Imported, "failed", result.Failed)
	return result, nil
}

// Reorder replaces the in-memory ordering with the caller-supplied one.
// Purely local; a reload from the server resets to server order.
func (s *Store) Reorder(customers []crm.Customer) {
	s.mu.Lock()
	s.customers = customers
	s.mu.Unlock()
}

// Get returns the identified record from the in-memory collection.
func (s *Store) Get(id string) (crm.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.customers, id)
}

// Customers returns a snapshot of the collection in its current order.
func (s *Store) Customers() []crm.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]crm.Customer, len(s.customers))
	copy(snapshot, s.customers)
	return snapshot
}

// Deleted returns a snapshot of the undo buffer, most recent first.
func (s *Store) Deleted() []crm.DeletedCustomer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]crm.DeletedCustomer, len(s.deleted))
	copy(snapshot, s.deleted)
	return snapshot
}

// UndoCount returns the number of recoverable deletions.
func (s *Store) UndoCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.deleted)
}

// Visible applies the transformation pipeline (filter, sort, paginate) to
// the collection using the store's current UI parameters.
func (s *Store) Visible() pipeline.Page {
	s.mu.RLock()
	customers := s.customers
	term := s.searchTerm
	opt := s.sortOption
	page := s.currentPage
	size := s.pageSize
	s.mu.RUnlock()

	return pipeline.Paginate(pipeline.Sort(pipeline.Search(customers, term), opt), page, size)
}

func findByID(customers []crm.Customer, id string) (crm.Customer, bool) {
	for _, c := range customers {
		if c.ID == id {
			return c, true
		}
	}
	return crm.Customer{}, false
}

func removeByID(customers []crm.Customer, id string) []crm.Customer {
	kept := make([]crm.Customer, 0, len(customers))
	for _, c := range customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return kept
}
