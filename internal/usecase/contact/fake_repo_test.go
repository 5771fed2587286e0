package contact

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/BruksfildServices01/tutor-contacts/internal/audit"
	"github.com/BruksfildServices01/tutor-contacts/internal/domain/appointment"
	domain "github.com/BruksfildServices01/tutor-contacts/internal/domain/contact"
)

// memoryRepo stores Params snapshots so callers never share domain values
// with the store.
type memoryRepo struct {
	mu     sync.Mutex
	txMu   sync.Mutex
	nextID uint
	rows   map[uint]storedContact

	// afterList runs once, after the next ListContacts has read the rows.
	afterList func()
}

type storedContact struct {
	userID uint
	params domain.Params
}

var _ domain.Repository = (*memoryRepo)(nil)

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: make(map[uint]storedContact)}
}

func (r *memoryRepo) ids() []uint {
	ids := make([]uint, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (r *memoryRepo) Atomic(_ context.Context, _ uint, fn func(tx domain.Repository) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.mu.Lock()
	snapshot := make(map[uint]storedContact, len(r.rows))
	for id, row := range r.rows {
		snapshot[id] = row
	}
	nextID := r.nextID
	r.mu.Unlock()

	if err := fn(r); err != nil {
		r.mu.Lock()
		r.rows, r.nextID = snapshot, nextID
		r.mu.Unlock()
		return err
	}
	return nil
}

func (r *memoryRepo) ListContacts(_ context.Context, userID uint, query string) ([]*domain.Contact, error) {
	out, err := r.listContacts(userID, query)

	r.mu.Lock()
	hook := r.afterList
	r.afterList = nil
	r.mu.Unlock()
	if hook != nil {
		hook()
	}
	return out, err
}

func (r *memoryRepo) listContacts(userID uint, query string) ([]*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	query = strings.ToLower(query)
	var out []*domain.Contact
	for _, id := range r.ids() {
		row := r.rows[id]
		if row.userID != userID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(row.params.Name), query) {
			continue
		}
		c, err := domain.New(row.params)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *memoryRepo) GetContact(_ context.Context, userID, contactID uint) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[contactID]
	if !ok || row.userID != userID {
		return nil, domain.ErrNotFound
	}
	return domain.New(row.params)
}

func (r *memoryRepo) CreateContact(_ context.Context, userID uint, c *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	c.ID = r.nextID
	r.rows[c.ID] = storedContact{userID: userID, params: c.Params()}
	return nil
}

func (r *memoryRepo) UpdateContact(_ context.Context, userID uint, c *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[c.ID]
	if !ok || row.userID != userID {
		return domain.ErrNotFound
	}
	r.rows[c.ID] = storedContact{userID: userID, params: c.Params()}
	return nil
}

func (r *memoryRepo) DeleteContact(_ context.Context, userID, contactID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[contactID]
	if !ok || row.userID != userID {
		return domain.ErrNotFound
	}
	delete(r.rows, contactID)
	return nil
}

func (r *memoryRepo) SetAvatarKey(_ context.Context, userID, contactID uint, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[contactID]
	if !ok || row.userID != userID {
		return domain.ErrNotFound
	}
	row.params.AvatarKey = key
	r.rows[contactID] = row
	return nil
}

func (r *memoryRepo) ListOtherAppointments(_ context.Context, userID, contactID uint) ([]appointment.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []appointment.Appointment
	for _, id := range r.ids() {
		row := r.rows[id]
		if row.userID != userID || id == contactID {
			continue
		}
		out = append(out, row.params.Appointments...)
	}
	return out, nil
}

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}

func (a *recordingAuditor) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.events))
	for i, ev := range a.events {
		out[i] = ev.Action
	}
	return out
}

// countingCache is an in-process ListingCache that counts invalidations.
type countingCache struct {
	mu            sync.Mutex
	entries       map[string][]byte
	versions      map[uint]int64
	hits          int
	invalidations int
}

func newCountingCache() *countingCache {
	return &countingCache{
		entries:  make(map[string][]byte),
		versions: make(map[uint]int64),
	}
}

func (c *countingCache) Version(_ context.Context, userID uint) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[userID], nil
}

func (c *countingCache) Get(_ context.Context, userID uint, ver int64, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[cacheKey(userID, ver, key)]
	if ok {
		c.hits++
	}
	return data, ok, nil
}

func (c *countingCache) Set(_ context.Context, userID uint, ver int64, key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(userID, ver, key)] = data
	return nil
}

func (c *countingCache) Invalidate(_ context.Context, userID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[userID]++
	c.invalidations++
	return nil
}

func cacheKey(userID uint, ver int64, key string) string {
	return fmt.Sprintf("%d:%d:%s", userID, ver, key)
}

type harness struct {
	repo  *memoryRepo
	audit *recordingAuditor
	cache *countingCache
	deps  Deps
}

func newHarness() *harness {
	h := &harness{
		repo:  newMemoryRepo(),
		audit: &recordingAuditor{},
		cache: newCountingCache(),
	}
	h.deps = Deps{Repo: h.repo, Audit: h.audit, Cache: h.cache}
	return h
}

func ptr[T any](v T) *T { return &v }
