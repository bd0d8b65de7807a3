// Package session keeps each visitor's in-progress forms and issued receipts
// in memory, keyed by a random session ID carried in a cookie.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/govservices/portal/internal/forms"
	"github.com/govservices/portal/internal/receipt"
	"github.com/govservices/portal/internal/workflow"
)

const cleanupInterval = 1 * time.Minute

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

// State is one visitor's form state. Lock it while reading or changing the
// workflows or receipts.
type State struct {
	mu       sync.Mutex
	lastSeen time.Time

	passport *workflow.Workflow[forms.Passport]
	license  *workflow.Workflow[forms.License]
	contact  *workflow.Workflow[forms.Contact]
	receipts map[string]receipt.Receipt
}

func newState(now time.Time) *State {
	return &State{
		lastSeen: now,
		receipts: make(map[string]receipt.Receipt),
	}
}

// Lock acquires exclusive access to the state.
func (s *State) Lock() { s.mu.Lock() }

// Unlock releases the state.
func (s *State) Unlock() { s.mu.Unlock() }

// Passport returns the passport workflow, starting a new one if none is in
// progress or the previous one was submitted.
func (s *State) Passport() *workflow.Workflow[forms.Passport] {
	if s.passport == nil || s.passport.Submitted() {
		s.passport = workflow.New(forms.PassportForm)
	}
	return s.passport
}

// License returns the license workflow, starting a new one when needed.
func (s *State) License() *workflow.Workflow[forms.License] {
	if s.license == nil || s.license.Submitted() {
		s.license = workflow.New(forms.LicenseForm)
	}
	return s.license
}

// Contact returns the contact workflow, starting a new one when needed.
func (s *State) Contact() *workflow.Workflow[forms.Contact] {
	if s.contact == nil || s.contact.Submitted() {
		s.contact = workflow.New(forms.ContactForm)
	}
	return s.contact
}

// SaveReceipt records the latest receipt issued for its service.
func (s *State) SaveReceipt(r receipt.Receipt) {
	s.receipts[r.Service] = r
}

// Receipt returns the latest receipt issued in this session for service.
func (s *State) Receipt(service string) (receipt.Receipt, bool) {
	r, ok := s.receipts[service]
	return r, ok
}

// Store holds the sessions of all visitors.
type Store struct {
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]*State
	now      func() time.Time
	onChange func(active int)
}

// NewStore creates a store whose sessions expire after ttl without access.
func NewStore(ttl time.Duration) (*Store, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", ttl)
	}
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*State),
		now:      time.Now,
		onChange: func(int) {},
	}, nil
}

// OnChange registers a callback receiving the number of live sessions after
// every create or cleanup.
func (st *Store) OnChange(fn func(active int)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.onChange = fn
}

// Create starts a new session and returns its ID.
func (st *Store) Create() (string, *State) {
	id := uuid.NewString()
	state := newState(st.now())

	st.mu.Lock()
	st.sessions[id] = state
	active := len(st.sessions)
	onChange := st.onChange
	st.mu.Unlock()

	onChange(active)
	return id, state
}

// Get returns the session with the given ID and refreshes its expiry.
func (st *Store) Get(id string) (*State, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	now := st.now()

	st.mu.RLock()
	state, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	if now.Sub(state.lastSeen) > st.ttl {
		return nil, ErrNotFound
	}
	state.lastSeen = now
	return state, nil
}

// Len returns the number of sessions held, expired ones included until the
// next cleanup.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Run removes expired sessions every minute until ctx is cancelled.
func (st *Store) Run(ctx context.Context) error {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := st.Cleanup(); removed > 0 {
				slog.Debug("expired sessions removed", "count", removed)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// Cleanup removes expired sessions and returns how many were removed.
func (st *Store) Cleanup() int {
	now := st.now()

	st.mu.Lock()
	removed := 0
	for id, state := range st.sessions {
		state.mu.Lock()
		expired := now.Sub(state.lastSeen) > st.ttl
		state.mu.Unlock()
		if expired {
			delete(st.sessions, id)
			removed++
		}
	}
	active := len(st.sessions)
	onChange := st.onChange
	st.mu.Unlock()

	if removed > 0 {
		onChange(active)
	}
	return removed
}
