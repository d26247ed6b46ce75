package repository

import (
	"errors"
	"strconv"
	"sync"

	"github.com/Nick-the-BinaryTree/allergy-albert/internal/model"
)

// ErrNotFound is returned when a user or event id has no record
var ErrNotFound = errors.New("record not found")

// DefaultEventIDBase is the first event id handed out by a fresh store
const DefaultEventIDBase = 1000

// Store holds every user and event for the lifetime of the process.
// All reads return copies; mutations go through the store's methods so the
// lock covers the whole find-then-mutate sequence.
type Store struct {
	mu     sync.RWMutex
	users  []*model.User
	events []*model.Event
	count  int
}

// Snapshot is a point-in-time copy of the store, used by the debug command
type Snapshot struct {
	Users  []*model.User  `json:"users"`
	Events []*model.Event `json:"events"`
	Count  int            `json:"count"`
}

// NewStore creates an empty store whose first event id is base
func NewStore(base int) *Store {
	return &Store{count: base}
}

// Seed adds the demo user and event the bot ships with
func (s *Store) Seed() {
	name := "My Cat's Birthday Party"
	page := "http://google.com"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, &model.User{ID: "123", Allergies: []string{"nuts", "fish"}})
	s.events = append(s.events, &model.Event{
		ID:             "123",
		HostID:         "123",
		Name:           &name,
		Page:           &page,
		TotalAllergies: []string{"nuts", "fish", "strawberries"},
	})
}

func (s *Store) userIndex(id string) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) eventIndex(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// FindUser returns a copy of the user with the given id
func (s *Store) FindUser(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.userIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	return s.users[i].Clone(), nil
}

// FindEvent returns a copy of the event with the given id
func (s *Store) FindEvent(id string) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.eventIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	return s.events[i].Clone(), nil
}

// CreateEvent allocates the next free id and stores a new event for hostID.
// Ids are never reused, even after the event is deleted.
func (s *Store) CreateEvent(hostID string) *model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	// seeded records can sit inside the counter's range
	for s.eventIndex(strconv.Itoa(s.count)) >= 0 {
		s.count++
	}

	event := &model.Event{
		ID:     strconv.Itoa(s.count),
		HostID: hostID,
	}
	s.events = append(s.events, event)
	s.count++

	return event.Clone()
}

// UpdateEvent runs fn against the stored event while holding the write lock.
// If fn returns an error nothing it did is rolled back; fn must validate
// before mutating.
func (s *Store) UpdateEvent(id string, fn func(event *model.Event) error) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	if err := fn(s.events[i]); err != nil {
		return nil, err
	}
	return s.events[i].Clone(), nil
}

// DeleteEvent removes the event with the given id
func (s *Store) DeleteEvent(id string) error {
	_, err := s.DeleteEventIf(id, nil)
	return err
}

// DeleteEventIf removes the event when check passes. check sees the stored
// event under the write lock; a nil check always passes.
func (s *Store) DeleteEventIf(id string, check func(event *model.Event) error) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	removed := s.events[i]
	if check != nil {
		if err := check(removed); err != nil {
			return nil, err
		}
	}
	s.events = append(s.events[:i], s.events[i+1:]...)
	return removed, nil
}

// UpsertUser replaces the user's allergy list, creating the user if needed
func (s *Store) UpsertUser(id string, allergies []string) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := append([]string(nil), allergies...)
	if i := s.userIndex(id); i >= 0 {
		s.users[i].Allergies = list
		return s.users[i].Clone()
	}

	user := &model.User{ID: id, Allergies: list}
	s.users = append(s.users, user)
	return user.Clone()
}

// DeleteUser removes the user if present. Deleting a missing user is not an error.
func (s *Store) DeleteUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.userIndex(id); i >= 0 {
		s.users = append(s.users[:i], s.users[i+1:]...)
	}
}

// Snapshot copies the whole store
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Users:  make([]*model.User, 0, len(s.users)),
		Events: make([]*model.Event, 0, len(s.events)),
		Count:  s.count,
	}
	for _, u := range s.users {
		snap.Users = append(snap.Users, u.Clone())
	}
	for _, e := range s.events {
		snap.Events = append(snap.Events, e.Clone())
	}
	return snap
}
