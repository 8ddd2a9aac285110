package repository

import (
	"fmt"
	"sync"

	"collectibles-auction/internal/auctionerrors"
	model "collectibles-auction/internal/models"
)

// UserStore is a concurrency-safe in-memory store for registered users.
// It also keeps the reverse index from bidder name to the items that
// bidder has bid on, fed by the bidding service on every accepted bid.
type UserStore struct {
	mu         sync.RWMutex
	users      map[string]model.User // key: userID
	bidderItem map[string][]string   // key: bidderName -> itemIDs bid on, first-bid order
}

// NewUserStore creates an empty user store
func NewUserStore() *UserStore {
	return &UserStore{
		users:      make(map[string]model.User),
		bidderItem: make(map[string][]string),
	}
}

// Get returns the user with the given id
func (s *UserStore) Get(userID string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return model.User{}, auctionerrors.NewFieldError(auctionerrors.ErrNotFound,
			"userId", fmt.Sprintf("user %s not found", userID))
	}
	return user, nil
}

// List returns all users
func (s *UserStore) List() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users
}

// Create stores a new user; the id must not be taken
func (s *UserStore) Create(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.UserID]; ok {
		return auctionerrors.NewFieldError(auctionerrors.ErrDuplicateKey,
			"userId", fmt.Sprintf("user ID %s already exists", user.UserID))
	}
	s.users[user.UserID] = user
	return nil
}

// Update replaces an existing user
func (s *UserStore) Update(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.UserID]; !ok {
		return auctionerrors.NewFieldError(auctionerrors.ErrNotFound,
			"userId", fmt.Sprintf("user %s not found", user.UserID))
	}
	s.users[user.UserID] = user
	return nil
}

// Delete removes a user by id
func (s *UserStore) Delete(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return auctionerrors.NewFieldError(auctionerrors.ErrNotFound,
			"userId", fmt.Sprintf("user %s not found", userID))
	}
	delete(s.users, userID)
	return nil
}

// Exists reports whether a user with the given id is stored
func (s *UserStore) Exists(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID]
	return ok
}

// RecordBid remembers that a bidder has bid on an item. Repeat bids on the
// same item keep a single entry.
func (s *UserStore) RecordBid(bidderName, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.bidderItem[bidderName] {
		if id == itemID {
			return
		}
	}
	s.bidderItem[bidderName] = append(s.bidderItem[bidderName], itemID)
}

// ItemsBidBy returns the ids of items the bidder has bid on
func (s *UserStore) ItemsBidBy(bidderName string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.bidderItem[bidderName]...)
}
