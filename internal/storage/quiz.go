package storage

import (
	"sync"
)

// QuizStorage provides in-memory storage for per-user quiz state.
type QuizStorage[T any] struct {
	mu    sync.RWMutex
	items map[int64]T
}

// NewQuizStorage creates a new QuizStorage.
func NewQuizStorage[T any]() *QuizStorage[T] {
	return &QuizStorage[T]{
		items: make(map[int64]T),
	}
}

// Store saves the quiz state of a user.
func (s *QuizStorage[T]) Store(userID int64, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[userID] = item
}

// Get retrieves the quiz state of a user.
func (s *QuizStorage[T]) Get(userID int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[userID]
	return item, ok
}

// Delete removes the quiz state of a user.
func (s *QuizStorage[T]) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, userID)
}

// Len returns the number of stored users.
func (s *QuizStorage[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
