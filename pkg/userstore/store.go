// Package userstore provides the in-memory demo user store backing the
// reference handlers. The store is an injected dependency, never a package
// global; a RWMutex keeps the read-modify-write cycles safe should the
// transport ever dispatch concurrently.
package userstore

import "sync"

// User is a demo user record.
type User struct {
	ID    int
	Name  string
	Email string
}

// Store is a mutex-guarded in-memory user list.
type Store struct {
	mu     sync.RWMutex
	users  []User
	nextID int
}

// NewStore creates a store seeded with the three demo users.
func NewStore() *Store {
	return &Store{
		users: []User{
			{ID: 1, Name: "Alice", Email: "alice@example.com"},
			{ID: 2, Name: "Bob", Email: "bob@example.com"},
			{ID: 3, Name: "Charlie", Email: "charlie@example.com"},
		},
		nextID: 4,
	}
}

// List returns a copy of all users.
func (s *Store) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// Get returns the user with the given ID.
func (s *Store) Get(id int) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Create adds a user and returns it with its assigned ID.
func (s *Store) Create(name, email string) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := User{ID: s.nextID, Name: name, Email: email}
	s.nextID++
	s.users = append(s.users, u)
	return u
}

// Delete removes the user with the given ID, reporting whether it existed.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of stored users.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
